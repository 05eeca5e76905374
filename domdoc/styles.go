package domdoc

import (
	"fmt"

	"github.com/tsawler/fla/model"
	"github.com/tsawler/fla/xmltree"
)

// Default colors of a SolidColor without a color attribute.
const (
	shapeFillColor  = "#ffffff"
	strokeFillColor = "#000000"
)

// fillClass is the outcome of probing a FillStyle node.
type fillClass int

const (
	fillAbsent fillClass = iota
	fillSolid
	fillLinear
	fillRadial
)

// classifyFill selects the fill variant by the first child present, in
// priority order SolidColor, LinearGradient, RadialGradient. A gradient
// child is present when the lookup succeeds, even if it has no stops.
func (l *loader) classifyFill(n *xmltree.Node) (fillClass, *xmltree.Node) {
	if c := n.Find(l.ns, "SolidColor"); c != nil {
		return fillSolid, c
	}
	if c := n.Find(l.ns, "LinearGradient"); c != nil {
		return fillLinear, c
	}
	if c := n.Find(l.ns, "RadialGradient"); c != nil {
		return fillRadial, c
	}
	return fillAbsent, nil
}

// resolveFill builds the fill style of a FillStyle node. It returns nil
// without error when the node holds no recognized variant.
func (l *loader) resolveFill(n *xmltree.Node, path string) (model.FillStyle, error) {
	class, variant := l.classifyFill(n)
	if class == fillAbsent {
		return nil, nil
	}

	a := newAttrReader(n, path, styleDefaults)
	index := a.Int("index")
	if err := a.Err(); err != nil {
		return nil, err
	}

	switch class {
	case fillSolid:
		return l.solidColor(index, variant, path+"/SolidColor", shapeFillColor)
	case fillLinear:
		g, err := l.gradient(index, variant, path+"/LinearGradient", linearGradientDefaults)
		if err != nil {
			return nil, err
		}
		return &model.LinearGradient{Gradient: g}, nil
	default:
		gpath := path + "/RadialGradient"
		g, err := l.gradient(index, variant, gpath, radialGradientDefaults)
		if err != nil {
			return nil, err
		}
		a := newAttrReader(variant, gpath, radialGradientDefaults)
		focal := a.Float("focalPointRatio")
		if err := a.Err(); err != nil {
			return nil, err
		}
		return &model.RadialGradient{Gradient: g, FocalPointRatio: focal}, nil
	}
}

// solidColor reads a SolidColor node. defaultColor applies when the node
// has no color attribute.
func (l *loader) solidColor(index int, n *xmltree.Node, path, defaultColor string) (*model.SolidColor, error) {
	a := newAttrReader(n, path, solidColorDefaults(defaultColor))
	s := &model.SolidColor{
		Index: index,
		Color: a.String("color"),
		Alpha: a.Float("alpha"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *loader) gradient(index int, n *xmltree.Node, path string, d defaults) (model.Gradient, error) {
	a := newAttrReader(n, path, d)
	g := model.Gradient{
		Index:        index,
		SpreadMethod: a.String("spreadMethod"),
	}
	if err := a.Err(); err != nil {
		return model.Gradient{}, err
	}

	m, err := l.matrix(n, path)
	if err != nil {
		return model.Gradient{}, err
	}
	g.Matrix = m

	for i, e := range n.FindAll(l.ns, "GradientEntry") {
		a := newAttrReader(e, fmt.Sprintf("%s/GradientEntry[%d]", path, i), gradientEntryDefaults)
		entry := model.GradientEntry{
			Color: a.String("color"),
			Alpha: a.Float("alpha"),
			Ratio: a.Float("ratio"),
		}
		if err := a.Err(); err != nil {
			return model.Gradient{}, err
		}
		g.Entries = append(g.Entries, entry)
	}

	return g, nil
}

// matrix reads the matrix/Matrix child of n. Each absent field, and the
// whole matrix when absent, is zero.
func (l *loader) matrix(n *xmltree.Node, path string) (model.Matrix, error) {
	m := n.Find(l.ns, "matrix").Find(l.ns, "Matrix")
	if m == nil {
		return model.Matrix{}, nil
	}

	a := newAttrReader(m, path+"/matrix/Matrix", matrixDefaults)
	out := model.Matrix{
		A:  a.Float("a"),
		B:  a.Float("b"),
		C:  a.Float("c"),
		D:  a.Float("d"),
		TX: a.Float("tx"),
		TY: a.Float("ty"),
	}
	if err := a.Err(); err != nil {
		return model.Matrix{}, err
	}
	return out, nil
}

// resolveStroke builds the stroke style of a StrokeStyle node. It returns
// nil without error when the node holds no SolidStroke.
func (l *loader) resolveStroke(n *xmltree.Node, path string, c *collector) (model.StrokeStyle, error) {
	solid := n.Find(l.ns, "SolidStroke")
	if solid == nil {
		return nil, nil
	}

	a := newAttrReader(n, path, styleDefaults)
	index := a.Int("index")
	if err := a.Err(); err != nil {
		return nil, err
	}

	spath := path + "/SolidStroke"
	a = newAttrReader(solid, spath, solidStrokeDefaults)
	s := &model.SolidStroke{
		Index:      index,
		ScaleMode:  a.String("scaleMode"),
		Joints:     a.String("joints"),
		Caps:       a.String("caps"),
		MiterLimit: a.Int("miterLimit"),
		Weight:     a.Float("weight"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}

	// Producers nest the fill in SolidStroke; older readers looked for it
	// directly under StrokeStyle.
	fill, fpath := solid.Find(l.ns, "fill"), spath+"/fill"
	if fill == nil {
		fill, fpath = n.Find(l.ns, "fill"), path+"/fill"
	}
	if fill == nil {
		return s, nil
	}

	color := fill.Find(l.ns, "SolidColor")
	if color == nil {
		c.skip(SkippedStrokeFill, fpath, "stroke fill is not a solid color: "+firstChildName(fill), 1)
		return s, nil
	}
	sc, err := l.solidColor(index, color, fpath+"/SolidColor", strokeFillColor)
	if err != nil {
		return nil, err
	}
	s.Fill = sc
	return s, nil
}

// firstChildName names the first child of n for warning messages.
func firstChildName(n *xmltree.Node) string {
	if !n.HasChildren() {
		return "no content"
	}
	return n.Children[0].Name.Local
}
