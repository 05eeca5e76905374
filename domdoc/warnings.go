package domdoc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/fla/metrics"
)

// WarningKind classifies a construct omitted from the model.
type WarningKind string

const (
	// SkippedElement is a frame element other than a shape.
	SkippedElement WarningKind = "element"
	// SkippedFillStyle is a fill style with no recognized variant.
	SkippedFillStyle WarningKind = "fill_style"
	// SkippedStrokeStyle is a stroke style with no recognized variant.
	SkippedStrokeStyle WarningKind = "stroke_style"
	// SkippedStrokeFill is a stroke fill other than a solid color.
	SkippedStrokeFill WarningKind = "stroke_fill"
	// SkippedEdge is an edge without a descriptor attribute.
	SkippedEdge WarningKind = "edge"
	// SkippedSegment is a descriptor segment that is not a straight line.
	SkippedSegment WarningKind = "segment"
)

// Warning records well-formed input that the loader left out of the model.
type Warning struct {
	Kind WarningKind
	// Path locates the element, e.g. "DOMDocument/timelines/DOMTimeline[0]".
	Path    string
	Message string
	// Count is the number of omitted items the warning stands for.
	Count int
}

func (w Warning) String() string {
	if w.Count > 1 {
		return fmt.Sprintf("%s: %s (%d)", w.Path, w.Message, w.Count)
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// collector gathers the warnings of one unit of work and reports each to the
// logger and metrics as it is added.
type collector struct {
	log      *zap.Logger
	metrics  *metrics.Metrics
	warnings []Warning
}

func (c *collector) skip(kind WarningKind, path, message string, count int) {
	c.warnings = append(c.warnings, Warning{Kind: kind, Path: path, Message: message, Count: count})
	for i := 0; i < count; i++ {
		c.metrics.RecordSkip(string(kind))
	}
	c.log.Debug("skipped",
		zap.String("kind", string(kind)),
		zap.String("path", path),
		zap.String("reason", message),
		zap.Int("count", count),
	)
}
