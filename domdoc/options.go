package domdoc

import (
	"go.uber.org/zap"

	"github.com/tsawler/fla/container"
	"github.com/tsawler/fla/logging"
	"github.com/tsawler/fla/metrics"
)

// Options configures a load.
type Options struct {
	// EntryName is the container entry holding the document XML.
	EntryName string
	// Concurrency bounds how many shapes are decoded at once. Values below
	// 2 decode sequentially. The result does not depend on it.
	Concurrency int
	// Logger receives a debug line per omitted construct. Nil discards.
	Logger *zap.Logger
	// Metrics, when set, records loads, omissions and decoded edges.
	Metrics *metrics.Metrics
}

// DefaultOptions returns the default load options.
func DefaultOptions() Options {
	return Options{
		EntryName:   container.DefaultEntry,
		Concurrency: 1,
		Logger:      logging.Nop(),
	}
}

// normalize fills zero fields with their defaults.
func (o Options) normalize() Options {
	if o.EntryName == "" {
		o.EntryName = container.DefaultEntry
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	o.Logger = logging.OrNop(o.Logger)
	return o
}
