// Package sketch implements a declarative 2-D scene builder.
//
// A scene is assembled as an ordered sequence of items: shapes (lines,
// rectangles, squares) and state changes (fill color, coordinate translation).
// Every builder call returns a new [Document] value; the original is never
// mutated, so partially built scenes can be shared and branched freely.
//
// At render time the document is replayed in insertion order against a
// [Backend]. Fill and translate items are not attributes of individual shapes:
// their effect is positional, applying to every shape added after them. This
// makes interleavings like "three shapes, change fill, two more shapes" render
// exactly as written.
//
//	doc := sketch.New(sketch.WithTitle("Demo"))
//	doc = doc.AddLine(sketch.Point{X: 0, Y: 0}, sketch.Point{X: 100, Y: 100})
//	doc = doc.SetFill(sketch.RGB(200, 120, 0))
//	doc, err := doc.AddRect(sketch.Point{X: 40, Y: 40}, 30, 30)
//	if err != nil {
//	    // non-positive dimensions are rejected before insertion
//	}
//	err = sketch.Render(doc, backend)
//
// Backends live outside this package; see pkg/backend/raster for file export
// and pkg/backend/window for an interactive viewer. Custom shapes participate
// by satisfying [Shape] and being inserted with [Document.AddItem].
package sketch
