package sketch

import "github.com/sketchkit/sketch/pkg/errors"

// Config describes the canvas a backend must prepare before replay: its
// dimensions, background fill, and the document title (used for window
// captions and metadata).
type Config struct {
	Title      string
	Width      float64
	Height     float64
	Background Color
}

// Canvas is the drawing surface a backend exposes to one replay. Shapes only
// describe what to draw; the canvas applies the active fill and offset.
//
// The pipeline threads state-change items into SetFill and Translate, so a
// canvas must apply the state current at the moment of each Line or Rect call.
// Line strokes use a fixed stroke color; Rect uses the active fill. A canvas
// is owned by a single Render call and is not safe for concurrent use.
type Canvas interface {
	// SetFill replaces the active fill color.
	SetFill(c Color)
	// Translate shifts the active drawing offset by (dx, dy), accumulating
	// with previous translations.
	Translate(dx, dy float64)
	// Line strokes a segment between two points.
	Line(start, finish Point)
	// Rect fills an axis-aligned rectangle.
	Rect(origin Point, width, height float64)
}

// Backend turns one document replay into a backend-specific result: an
// encoded file for the raster backend, a live window for the interactive one.
type Backend interface {
	// Begin prepares a canvas sized and filled per cfg.
	Begin(cfg Config) (Canvas, error)
	// Finish finalizes the canvas after the last item has been replayed.
	// For terminal backends this produces the output artifact; interactive
	// backends may block until their surface is closed.
	Finish(c Canvas) error
}

// Render replays doc against b in insertion order, carrying the active fill
// and translation forward so each shape draws with the state in effect at its
// position in the document.
//
// An item that is neither a built-in state change nor a [Shape] is a
// configuration error and aborts the render with ErrCodeUnsupportedItem;
// nothing is skipped silently. Backend failures propagate unretried.
func Render(doc *Document, b Backend) error {
	cv, err := b.Begin(Config{
		Title:      doc.Title,
		Width:      doc.Width,
		Height:     doc.Height,
		Background: doc.Background,
	})
	if err != nil {
		return err
	}

	for _, id := range doc.Replay() {
		it, ok := doc.Item(id)
		if !ok {
			return errors.New(errors.ErrCodeInternal,
				"order references unknown item %d", id)
		}
		switch v := it.(type) {
		case Fill:
			cv.SetFill(v.Color)
		case Translate:
			cv.Translate(v.DX, v.DY)
		case Shape:
			if err := v.Draw(cv); err != nil {
				return errors.Wrap(errors.ErrCodeRenderFailed, err,
					"drawing item %d", id)
			}
		default:
			return errors.New(errors.ErrCodeUnsupportedItem,
				"item %d has kind %T, which no dispatch recognizes", id, it)
		}
	}

	return b.Finish(cv)
}
