package sketch

// Point is a coordinate pair in canvas space.
type Point struct {
	X, Y float64
}

// Item is anything that can be stored in a document: a shape or a state
// change. Every item carries the identifier assigned when it was created.
// Items are immutable once created.
type Item interface {
	ID() int
}

// Shape is an item that emits geometry during replay. Built-in shapes draw
// themselves through the canvas primitives; custom shapes satisfy the same
// interface and are inserted with [Document.AddItem].
type Shape interface {
	Item
	Draw(c Canvas) error
}

// Line is a straight segment between two points.
type Line struct {
	id            int
	Start, Finish Point
}

// ID returns the line's document identifier.
func (l Line) ID() int { return l.id }

// Draw strokes the line through the canvas.
func (l Line) Draw(c Canvas) error {
	c.Line(l.Start, l.Finish)
	return nil
}

// Rect is an axis-aligned rectangle anchored at its top-left origin.
type Rect struct {
	id            int
	Origin        Point
	Width, Height float64
}

// ID returns the rectangle's document identifier.
func (r Rect) ID() int { return r.id }

// Draw fills the rectangle through the canvas.
func (r Rect) Draw(c Canvas) error {
	c.Rect(r.Origin, r.Width, r.Height)
	return nil
}

// Square is a rectangle specialization with equal sides.
type Square struct {
	id     int
	Origin Point
	Size   float64
}

// ID returns the square's document identifier.
func (s Square) ID() int { return s.id }

// Draw fills the square through the canvas.
func (s Square) Draw(c Canvas) error {
	c.Rect(s.Origin, s.Size, s.Size)
	return nil
}

// Fill is a state-change item: it updates the active fill color for every
// shape that follows it in insertion order. No geometry is emitted.
type Fill struct {
	id    int
	Color Color
}

// ID returns the fill item's document identifier.
func (f Fill) ID() int { return f.id }

// Translate is a state-change item: it shifts the active drawing offset by
// (DX, DY) for every shape that follows it. Offsets accumulate.
type Translate struct {
	id     int
	DX, DY float64
}

// ID returns the translate item's document identifier.
func (t Translate) ID() int { return t.id }
