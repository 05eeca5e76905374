package domdoc

import (
	"fmt"
	"strconv"

	"github.com/tsawler/fla/xmltree"
)

// defaults maps attribute names to the value used when the attribute is
// absent. Attributes missing from an entity's table are required.
type defaults map[string]string

var (
	documentDefaults = defaults{
		"backgroundColor": "#ffffff",
		"rulerUnitType":   "points",
	}
	timelineDefaults = defaults{}
	layerDefaults    = defaults{
		"autoNamed": "true",
	}
	frameDefaults = defaults{
		"duration": "1",
		"name":     "",
	}
	edgeDefaults = defaults{
		"fillStyle0":  "-1",
		"fillStyle1":  "-1",
		"strokeStyle": "-1",
	}
	styleDefaults  = defaults{}
	matrixDefaults = defaults{
		"a":  "0",
		"b":  "0",
		"c":  "0",
		"d":  "0",
		"tx": "0",
		"ty": "0",
	}
	linearGradientDefaults = defaults{
		"spreadMethod": "pad",
	}
	radialGradientDefaults = defaults{
		"spreadMethod":    "pad",
		"focalPointRatio": "0",
	}
	gradientEntryDefaults = defaults{
		"alpha": "1",
	}
	solidStrokeDefaults = defaults{
		"scaleMode":  "normal",
		"joints":     "miter",
		"caps":       "round",
		"miterLimit": "3",
		"weight":     "1",
	}
)

// solidColorDefaults returns the table for a SolidColor node. The color
// default depends on where the color is used.
func solidColorDefaults(color string) defaults {
	return defaults{
		"color": color,
		"alpha": "1",
	}
}

// attrReader reads typed attributes of one element through its defaults
// table. The first failure is kept and every later read returns a zero
// value; check Err once after reading.
type attrReader struct {
	node     *xmltree.Node
	path     string
	defaults defaults
	err      error
}

func newAttrReader(n *xmltree.Node, path string, d defaults) *attrReader {
	return &attrReader{node: n, path: path, defaults: d}
}

// Err returns the first failure, a *FormatError.
func (a *attrReader) Err() error {
	return a.err
}

func (a *attrReader) fail(name string, err error) {
	if a.err == nil {
		a.err = &FormatError{Element: a.path, Attr: name, Err: err}
	}
}

func (a *attrReader) raw(name string) (string, bool) {
	if a.err != nil {
		return "", false
	}
	if v, ok := a.node.Attr(name); ok {
		return v, true
	}
	if v, ok := a.defaults[name]; ok {
		return v, true
	}
	a.fail(name, ErrMissingAttribute)
	return "", false
}

func (a *attrReader) String(name string) string {
	v, _ := a.raw(name)
	return v
}

func (a *attrReader) Int(name string) int {
	v, ok := a.raw(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		a.fail(name, fmt.Errorf("%w: %v", ErrInvalidAttribute, err))
		return 0
	}
	return n
}

func (a *attrReader) Float(name string) float64 {
	v, ok := a.raw(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		a.fail(name, fmt.Errorf("%w: %v", ErrInvalidAttribute, err))
		return 0
	}
	return f
}

func (a *attrReader) Bool(name string) bool {
	v, ok := a.raw(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		a.fail(name, fmt.Errorf("%w: %v", ErrInvalidAttribute, err))
		return false
	}
	return b
}
