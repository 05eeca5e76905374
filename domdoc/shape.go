package domdoc

import (
	"fmt"
	"sort"

	"github.com/tsawler/fla/edges"
	"github.com/tsawler/fla/model"
	"github.com/tsawler/fla/xmltree"
)

// buildShape builds a shape from a DOMShape node: fills sorted by index,
// strokes and edges in document order.
func (l *loader) buildShape(n *xmltree.Node, path string, c *collector) (*model.Shape, error) {
	shape := &model.Shape{}

	if fills := n.Find(l.ns, "fills"); fills != nil {
		for i, fn := range fills.FindAll(l.ns, "FillStyle") {
			fpath := fmt.Sprintf("%s/fills/FillStyle[%d]", path, i)
			fill, err := l.resolveFill(fn, fpath)
			if err != nil {
				return nil, err
			}
			if fill == nil {
				c.skip(SkippedFillStyle, fpath, "unrecognized fill style: "+firstChildName(fn), 1)
				continue
			}
			shape.Fills = append(shape.Fills, fill)
		}
		sort.SliceStable(shape.Fills, func(i, j int) bool {
			return shape.Fills[i].StyleIndex() < shape.Fills[j].StyleIndex()
		})
	}

	if strokes := n.Find(l.ns, "strokes"); strokes != nil {
		for i, sn := range strokes.FindAll(l.ns, "StrokeStyle") {
			spath := fmt.Sprintf("%s/strokes/StrokeStyle[%d]", path, i)
			stroke, err := l.resolveStroke(sn, spath, c)
			if err != nil {
				return nil, err
			}
			if stroke == nil {
				c.skip(SkippedStrokeStyle, spath, "unrecognized stroke style: "+firstChildName(sn), 1)
				continue
			}
			shape.Strokes = append(shape.Strokes, stroke)
		}
	}

	if en := n.Find(l.ns, "edges"); en != nil {
		for i, e := range en.FindAll(l.ns, "Edge") {
			epath := fmt.Sprintf("%s/edges/Edge[%d]", path, i)
			decoded, err := l.decodeEdge(e, epath, c)
			if err != nil {
				return nil, err
			}
			shape.Edges = append(shape.Edges, decoded...)
		}
	}

	l.metrics.RecordShape(len(shape.Edges))
	return shape, nil
}

// decodeEdge decodes the straight segments of an Edge node. Edges without
// an edges descriptor, such as those described only by cubics, yield none.
func (l *loader) decodeEdge(n *xmltree.Node, path string, c *collector) ([]model.Edge, error) {
	desc, ok := n.Attr("edges")
	if !ok {
		c.skip(SkippedEdge, path, "edge has no descriptor", 1)
		return nil, nil
	}

	a := newAttrReader(n, path, edgeDefaults)
	fill0 := a.Int("fillStyle0")
	fill1 := a.Int("fillStyle1")
	stroke := a.Int("strokeStyle")
	if err := a.Err(); err != nil {
		return nil, err
	}

	out, res := edges.Straight(desc, fill0, fill1, stroke)
	if res.Curves > 0 {
		c.skip(SkippedSegment, path, "curve segments not decoded", res.Curves)
	}
	if res.Unrecognized > 0 {
		c.skip(SkippedSegment, path, "unrecognized segments", res.Unrecognized)
	}
	return out, nil
}
