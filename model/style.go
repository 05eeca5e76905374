package model

import "image/color"

// FillKind identifies a fill style variant.
type FillKind int

const (
	FillKindSolid FillKind = iota
	FillKindLinearGradient
	FillKindRadialGradient
)

func (k FillKind) String() string {
	switch k {
	case FillKindSolid:
		return "SolidColor"
	case FillKindLinearGradient:
		return "LinearGradient"
	case FillKindRadialGradient:
		return "RadialGradient"
	default:
		return "Unknown"
	}
}

// FillStyle is an entry of a shape's fill table.
type FillStyle interface {
	StyleIndex() int
	FillKind() FillKind
}

// SolidColor fills with a single color.
type SolidColor struct {
	Index int
	Color string
	Alpha float64
}

func (s *SolidColor) StyleIndex() int    { return s.Index }
func (s *SolidColor) FillKind() FillKind { return FillKindSolid }

// NRGBA returns the color with Alpha applied.
func (s *SolidColor) NRGBA() (color.NRGBA, error) {
	c, err := ParseColor(s.Color)
	if err != nil {
		return color.NRGBA{}, err
	}
	c.A = alphaByte(s.Alpha)
	return c, nil
}

// GradientEntry is one color stop. Ratio is in [0, 1].
type GradientEntry struct {
	Color string
	Alpha float64
	Ratio float64
}

// Gradient holds the fields shared by linear and radial gradients.
type Gradient struct {
	Index        int
	Matrix       Matrix
	SpreadMethod string
	// Entries keep document order; they are not sorted by ratio.
	Entries []GradientEntry
}

// LinearGradient fills along the gradient's x axis.
type LinearGradient struct {
	Gradient
}

func (g *LinearGradient) StyleIndex() int    { return g.Index }
func (g *LinearGradient) FillKind() FillKind { return FillKindLinearGradient }

// RadialGradient fills outward from the gradient's origin.
type RadialGradient struct {
	Gradient
	FocalPointRatio float64
}

func (g *RadialGradient) StyleIndex() int    { return g.Index }
func (g *RadialGradient) FillKind() FillKind { return FillKindRadialGradient }

// StrokeKind identifies a stroke style variant.
type StrokeKind int

const (
	StrokeKindSolid StrokeKind = iota
)

func (k StrokeKind) String() string {
	switch k {
	case StrokeKindSolid:
		return "SolidStroke"
	default:
		return "Unknown"
	}
}

// StrokeStyle is an entry of a shape's stroke table.
type StrokeStyle interface {
	StyleIndex() int
	StrokeKind() StrokeKind
}

// SolidStroke is a solid line style.
type SolidStroke struct {
	Index      int
	ScaleMode  string
	Joints     string
	Caps       string
	MiterLimit int
	Weight     float64
	// Fill is nil when the stroke carries no solid fill.
	Fill *SolidColor
}

func (s *SolidStroke) StyleIndex() int        { return s.Index }
func (s *SolidStroke) StrokeKind() StrokeKind { return StrokeKindSolid }
