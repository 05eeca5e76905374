// Package model provides the in-memory object graph of a loaded FLA document.
//
// The graph is built once by the loader and is read-only afterwards. A
// [Document] owns its [Timeline] values, each timeline owns its [Layer]
// values, and each layer owns its [Frame] values:
//
//	doc.Timelines[i].Layers[j].Frames[k].Elements
//
// # Ordering
//
// Timelines, layers and frame elements keep document order. Frames are
// sorted ascending by [Frame.Index]; a layer's frames are therefore addressed
// by position, and [Layer.FrameByIndex] or [Layer.KeyframeAt] search them.
//
// # Elements
//
// All frame content implements the [Element] interface. The only concrete
// type is [Shape]; other element kinds are omitted by the loader.
//
// # Styles and edges
//
// A shape carries a style table: fills sorted by index ([SolidColor],
// [LinearGradient], [RadialGradient]) and strokes in document order
// ([SolidStroke]). Each [Edge] references the table through its fill and
// stroke indices, where -1 means no style.
//
// # Geometry
//
// Edge coordinates are integer twips (1/20 point), see [Point]. Gradient
// transforms are [Matrix] values; a matrix absent from the source is all
// zeros, not the identity.
package model
