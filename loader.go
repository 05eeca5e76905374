package fla

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tsawler/fla/domdoc"
	"github.com/tsawler/fla/format"
	"github.com/tsawler/fla/logging"
	"github.com/tsawler/fla/metrics"
	"github.com/tsawler/fla/model"
)

// Loader provides a fluent interface for loading FLA documents.
// Each configuration method returns a new Loader instance, making it
// safe for concurrent use and allowing method chaining.
type Loader struct {
	// Source: a path, or an in-memory archive
	filename string
	reader   io.ReaderAt
	size     int64

	options domdoc.Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Loader. Options hold no slices, so a value
// copy is enough.
func (l *Loader) clone() *Loader {
	c := *l
	return &c
}

// Logger sets the logger receiving omission and load lines.
func (l *Loader) Logger(logger *zap.Logger) *Loader {
	c := l.clone()
	c.options.Logger = logging.OrNop(logger)
	return c
}

// Metrics sets the Prometheus metrics the load records into.
func (l *Loader) Metrics(m *metrics.Metrics) *Loader {
	c := l.clone()
	c.options.Metrics = m
	return c
}

// Concurrency bounds how many shapes are decoded at once. The document is
// identical for every value.
func (l *Loader) Concurrency(n int) *Loader {
	c := l.clone()
	if n < 1 && c.err == nil {
		c.err = fmt.Errorf("fla: concurrency must be at least 1, got %d", n)
	}
	c.options.Concurrency = n
	return c
}

// EntryName overrides the container entry holding the document XML.
func (l *Loader) EntryName(name string) *Loader {
	c := l.clone()
	c.options.EntryName = name
	return c
}

// WithConfig applies cfg. A Log section builds a new logger; a failure to
// build it is reported by the terminal operation.
func (l *Loader) WithConfig(cfg Config) *Loader {
	c := l.clone()
	if err := cfg.Validate(); err != nil {
		if c.err == nil {
			c.err = err
		}
		return c
	}

	if cfg.EntryName != "" {
		c.options.EntryName = cfg.EntryName
	}
	if cfg.Concurrency > 0 {
		c.options.Concurrency = cfg.Concurrency
	}
	if cfg.Log != nil {
		logger, err := logging.NewLogger(*cfg.Log)
		if err != nil {
			if c.err == nil {
				c.err = fmt.Errorf("fla: building logger: %w", err)
			}
			return c
		}
		c.options.Logger = logger
	}
	return c
}

// Format reports the container format of the source without loading it.
// The container must hold the configured entry to be recognized.
func (l *Loader) Format() (format.Format, error) {
	if l.err != nil {
		return format.Unknown, l.err
	}
	if l.reader != nil {
		return format.DetectFromReaderEntry(l.reader, l.size, l.options.EntryName)
	}
	return format.DetectPathEntry(l.filename, l.options.EntryName)
}

// Document loads the document and returns it with the warnings for every
// construct left out of the model. On error the document and warnings are
// nil.
//
// Example:
//
//	doc, warnings, err := fla.Open("movie.fla").Document()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tl := range doc.Timelines {
//	    fmt.Println(tl.Name, len(tl.Layers))
//	}
func (l *Loader) Document() (*model.Document, []Warning, error) {
	if l.err != nil {
		return nil, nil, l.err
	}
	if l.reader != nil {
		return domdoc.LoadReader(l.reader, l.size, l.options)
	}
	if l.filename == "" {
		return nil, nil, fmt.Errorf("fla: no filename specified")
	}
	return domdoc.Load(l.filename, l.options)
}
