package model

import (
	"sort"

	"github.com/google/uuid"
)

// Document is a loaded FLA document.
type Document struct {
	// Path is the file the document was loaded from, empty for in-memory loads.
	Path string

	Width           int
	Height          int
	BackgroundColor string
	FrameRate       int
	CurrentTimeline int

	CreatorInfo  string
	Platform     string
	VersionInfo  string
	MajorVersion int
	BuildNumber  int
	FileTypeGUID string
	FileGUID     string

	ViewAngle3D       float64
	VanishingPoint3DX float64
	VanishingPoint3DY float64

	RulerUnitType string
	NextSceneID   int
	PlayOptions   PlayOptions

	// Timelines are the document's scenes in document order.
	Timelines []*Timeline
}

// PlayOptions holds the document's playback flags.
type PlayOptions struct {
	Loop         bool
	Pages        bool
	FrameActions bool
}

// Timeline returns the first timeline with the given name, or nil.
func (d *Document) Timeline(name string) *Timeline {
	for _, t := range d.Timelines {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Current returns the timeline selected by the 1-based CurrentTimeline, or
// nil when it is out of range.
func (d *Document) Current() *Timeline {
	if d.CurrentTimeline < 1 || d.CurrentTimeline > len(d.Timelines) {
		return nil
	}
	return d.Timelines[d.CurrentTimeline-1]
}

// FileUUID parses FileGUID.
func (d *Document) FileUUID() (uuid.UUID, error) {
	return uuid.Parse(d.FileGUID)
}

// FileTypeUUID parses FileTypeGUID.
func (d *Document) FileTypeUUID() (uuid.UUID, error) {
	return uuid.Parse(d.FileTypeGUID)
}

// Timeline is a scene: a named stack of layers.
type Timeline struct {
	Name              string
	LayerDepthEnabled bool
	Layers            []*Layer
}

// Layer is one layer of a timeline.
type Layer struct {
	Name       string
	Color      string
	Current    bool
	IsSelected bool
	AutoNamed  bool

	// Frames are sorted ascending by Index.
	Frames []*Frame
}

// FrameByIndex returns the frame whose Index is exactly index.
func (l *Layer) FrameByIndex(index int) (*Frame, bool) {
	i := sort.Search(len(l.Frames), func(i int) bool { return l.Frames[i].Index >= index })
	if i < len(l.Frames) && l.Frames[i].Index == index {
		return l.Frames[i], true
	}
	return nil, false
}

// KeyframeAt returns the frame displayed at frame number n: the last frame
// starting at or before n whose span still covers n.
func (l *Layer) KeyframeAt(n int) (*Frame, bool) {
	i := sort.Search(len(l.Frames), func(i int) bool { return l.Frames[i].Index > n })
	if i == 0 {
		return nil, false
	}
	f := l.Frames[i-1]
	if n >= f.Index+f.Span() {
		return nil, false
	}
	return f, true
}

// Frame is a keyframe and the elements it displays.
type Frame struct {
	Index    int
	Duration int
	// KeyMode is the producer's key mode code, kept opaque.
	KeyMode int
	Name    string

	// Elements keep document order.
	Elements []Element
}

// Span returns the number of frames covered, at least 1.
func (f *Frame) Span() int {
	if f.Duration < 1 {
		return 1
	}
	return f.Duration
}

// Shapes returns the frame's shape elements in document order.
func (f *Frame) Shapes() []*Shape {
	var shapes []*Shape
	for _, e := range f.Elements {
		if s, ok := e.(*Shape); ok {
			shapes = append(shapes, s)
		}
	}
	return shapes
}
