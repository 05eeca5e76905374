package model

// EdgeKind identifies an edge variant.
type EdgeKind int

const (
	EdgeKindStraight EdgeKind = iota
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeKindStraight:
		return "Straight"
	default:
		return "Unknown"
	}
}

// NoStyle is the style index of an edge side without a style.
const NoStyle = -1

// Edge is one drawable segment of a shape outline.
type Edge interface {
	EdgeKind() EdgeKind
	// Styles returns the left fill, right fill and stroke indices.
	Styles() (fill0, fill1, stroke int)
}

// StraightEdge is a line segment from PointA to PointB.
type StraightEdge struct {
	FillStyle0  int
	FillStyle1  int
	StrokeStyle int
	PointA      Point
	PointB      Point
}

func (e *StraightEdge) EdgeKind() EdgeKind { return EdgeKindStraight }
func (e *StraightEdge) Styles() (int, int, int) {
	return e.FillStyle0, e.FillStyle1, e.StrokeStyle
}
