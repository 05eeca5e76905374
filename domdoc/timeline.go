package domdoc

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/fla/model"
	"github.com/tsawler/fla/xmltree"
)

// shapeJob is a shape waiting to be built into its frame's element slot.
type shapeJob struct {
	node  *xmltree.Node
	path  string
	frame *model.Frame
	slot  int
	warn  collector
	err   error
}

// assembler builds the timeline hierarchy. Frame structure is assembled
// first; shapes are queued and built afterwards so they can be decoded
// concurrently.
type assembler struct {
	*loader
	jobs []*shapeJob
}

func (as *assembler) timelines(root *xmltree.Node, path string) ([]*model.Timeline, error) {
	tn := root.Find(as.ns, "timelines")
	if tn == nil {
		return nil, nil
	}

	out := make([]*model.Timeline, 0, len(tn.Children))
	for i, n := range tn.Children {
		t, err := as.timeline(n, fmt.Sprintf("%s/timelines/%s[%d]", path, n.Name.Local, i))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (as *assembler) timeline(n *xmltree.Node, path string) (*model.Timeline, error) {
	a := newAttrReader(n, path, timelineDefaults)
	t := &model.Timeline{
		Name:              a.String("name"),
		LayerDepthEnabled: a.Bool("layerDepthEnabled"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}

	if ln := n.Find(as.ns, "layers"); ln != nil {
		t.Layers = make([]*model.Layer, 0, len(ln.Children))
		for i, c := range ln.Children {
			layer, err := as.layer(c, fmt.Sprintf("%s/layers/%s[%d]", path, c.Name.Local, i))
			if err != nil {
				return nil, err
			}
			t.Layers = append(t.Layers, layer)
		}
	}
	return t, nil
}

func (as *assembler) layer(n *xmltree.Node, path string) (*model.Layer, error) {
	a := newAttrReader(n, path, layerDefaults)
	layer := &model.Layer{
		Name:       a.String("name"),
		Color:      a.String("color"),
		Current:    a.Bool("current"),
		IsSelected: a.Bool("isSelected"),
		AutoNamed:  a.Bool("autoNamed"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}

	if fn := n.Find(as.ns, "frames"); fn != nil {
		layer.Frames = make([]*model.Frame, 0, len(fn.Children))
		for i, c := range fn.Children {
			frame, err := as.frame(c, fmt.Sprintf("%s/frames/%s[%d]", path, c.Name.Local, i))
			if err != nil {
				return nil, err
			}
			layer.Frames = append(layer.Frames, frame)
		}
		// Stable so duplicate indices keep document order.
		sort.SliceStable(layer.Frames, func(i, j int) bool {
			return layer.Frames[i].Index < layer.Frames[j].Index
		})
	}
	return layer, nil
}

func (as *assembler) frame(n *xmltree.Node, path string) (*model.Frame, error) {
	a := newAttrReader(n, path, frameDefaults)
	frame := &model.Frame{
		Index:    a.Int("index"),
		Duration: a.Int("duration"),
		KeyMode:  a.Int("keyMode"),
		Name:     a.String("name"),
	}
	if err := a.Err(); err != nil {
		return nil, err
	}

	en := n.Find(as.ns, "elements")
	if en == nil {
		return frame, nil
	}

	for i, e := range en.Children {
		epath := fmt.Sprintf("%s/elements/%s[%d]", path, e.Name.Local, i)
		if e.Name.Space != as.ns || e.Name.Local != "DOMShape" {
			as.warn.skip(SkippedElement, epath, "unsupported element "+e.Name.Local, 1)
			continue
		}
		as.jobs = append(as.jobs, &shapeJob{
			node:  e,
			path:  epath,
			frame: frame,
			slot:  len(frame.Elements),
			warn:  collector{log: as.log, metrics: as.metrics},
		})
		frame.Elements = append(frame.Elements, nil)
	}
	return frame, nil
}

// buildShapes runs the queued shape jobs, at most Concurrency at a time,
// and reports the first failure in document order.
func (as *assembler) buildShapes() error {
	if as.opts.Concurrency <= 1 {
		for _, job := range as.jobs {
			if err := as.runJob(job); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(as.opts.Concurrency)
	for _, job := range as.jobs {
		job := job
		g.Go(func() error {
			return as.runJob(job)
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}
	for _, job := range as.jobs {
		if job.err != nil {
			return job.err
		}
	}
	return nil
}

func (as *assembler) runJob(job *shapeJob) error {
	shape, err := as.buildShape(job.node, job.path, &job.warn)
	if err != nil {
		job.err = err
		return err
	}
	job.frame.Elements[job.slot] = shape
	return nil
}

// warnings returns structural warnings followed by shape warnings, both in
// document order.
func (as *assembler) warnings() []Warning {
	out := append([]Warning(nil), as.warn.warnings...)
	for _, job := range as.jobs {
		out = append(out, job.warn.warnings...)
	}
	return out
}
