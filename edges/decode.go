// Package edges decodes the edge descriptor attribute of XFL shapes.
//
// A descriptor holds one or more segments separated by '!'. Each segment
// starts with a move-to coordinate followed by drawing commands; a straight
// line is written "x1 y1|x2 y2" in twips. Curve commands ('[' quadratic,
// '/' and '\' cubic) are recognized but not decoded.
package edges

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/fla/model"
)

// segmentSeparator delimits segments within a descriptor.
const segmentSeparator = "!"

// straightPattern matches a straight line anywhere within a segment.
var straightPattern = regexp.MustCompile(`(-?\d+) (-?\d+)\|(-?\d+) (-?\d+)`)

// Segment is a decoded straight line.
type Segment struct {
	A, B model.Point
}

// Result is the outcome of decoding one descriptor.
type Result struct {
	// Segments are the straight lines in descriptor order.
	Segments []Segment
	// Curves counts segments holding curve commands.
	Curves int
	// Unrecognized counts other non-empty segments that did not decode.
	Unrecognized int
}

// Decode splits desc into segments and decodes every straight line.
// Empty segments are discarded.
func Decode(desc string) Result {
	var res Result
	for _, part := range strings.Split(desc, segmentSeparator) {
		if part == "" {
			continue
		}
		seg, ok := decodeStraight(part)
		switch {
		case ok:
			res.Segments = append(res.Segments, seg)
		case isCurve(part):
			res.Curves++
		default:
			res.Unrecognized++
		}
	}
	return res
}

func decodeStraight(part string) (Segment, bool) {
	m := straightPattern.FindStringSubmatch(part)
	if m == nil {
		return Segment{}, false
	}

	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Segment{}, false
		}
		v[i] = n
	}

	return Segment{
		A: model.Point{X: v[0], Y: v[1]},
		B: model.Point{X: v[2], Y: v[3]},
	}, true
}

func isCurve(part string) bool {
	return strings.ContainsAny(part, `[]/\`)
}

// Straight decodes desc into straight edges carrying the given style
// indices.
func Straight(desc string, fill0, fill1, stroke int) ([]model.Edge, Result) {
	res := Decode(desc)
	out := make([]model.Edge, 0, len(res.Segments))
	for _, s := range res.Segments {
		out = append(out, &model.StraightEdge{
			FillStyle0:  fill0,
			FillStyle1:  fill1,
			StrokeStyle: stroke,
			PointA:      s.A,
			PointB:      s.B,
		})
	}
	return out, res
}
