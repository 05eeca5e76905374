package model

// ElementType represents the type of frame element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeShape
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeShape:
		return "Shape"
	default:
		return "Unknown"
	}
}

// Element is the interface for all frame elements
type Element interface {
	Type() ElementType
}

// Shape is a vector shape: a style table and the edges that reference it.
type Shape struct {
	// Fills are sorted ascending by index.
	Fills []FillStyle
	// Strokes keep document order.
	Strokes []StrokeStyle
	// Edges keep document order.
	Edges []Edge
}

func (s *Shape) Type() ElementType { return ElementTypeShape }

// Fill returns the fill style with the given table index. Index -1 and
// indices missing from the table report false.
func (s *Shape) Fill(index int) (FillStyle, bool) {
	if index < 0 {
		return nil, false
	}
	for _, f := range s.Fills {
		if f.StyleIndex() == index {
			return f, true
		}
	}
	return nil, false
}

// Stroke returns the stroke style with the given table index. Index -1 and
// indices missing from the table report false.
func (s *Shape) Stroke(index int) (StrokeStyle, bool) {
	if index < 0 {
		return nil, false
	}
	for _, st := range s.Strokes {
		if st.StyleIndex() == index {
			return st, true
		}
	}
	return nil, false
}

// StraightEdges returns the shape's straight edges in document order.
func (s *Shape) StraightEdges() []*StraightEdge {
	var out []*StraightEdge
	for _, e := range s.Edges {
		if se, ok := e.(*StraightEdge); ok {
			out = append(out, se)
		}
	}
	return out
}

// Bounds returns the bounding rectangle of the shape's edges in twips.
// A shape without edges has an empty rectangle.
func (s *Shape) Bounds() Rect {
	var r Rect
	first := true
	for _, e := range s.StraightEdges() {
		for _, p := range [2]Point{e.PointA, e.PointB} {
			if first {
				r = Rect{Min: p, Max: p}
				first = false
				continue
			}
			r = r.Add(p)
		}
	}
	return r
}
