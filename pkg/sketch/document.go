package sketch

import (
	"maps"
	"slices"

	"github.com/sketchkit/sketch/pkg/errors"
)

// Defaults used by New when no option overrides them.
const (
	DefaultTitle  = "Sketch"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Document is an immutable-per-step scene: canvas configuration plus an
// ordered collection of items. Builder methods never mutate the receiver;
// each returns a new Document sharing nothing mutable with the original.
//
// The zero value is not usable - construct documents with [New].
type Document struct {
	Title      string
	Width      float64
	Height     float64
	Background Color

	items map[int]Item
	order []int // identifiers, most recently added first
}

// Option configures a document at construction time.
type Option func(*Document)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(d *Document) { d.Title = title }
}

// WithSize sets the canvas dimensions. Non-positive values are ignored and
// the defaults kept.
func WithSize(width, height float64) Option {
	return func(d *Document) {
		if width > 0 {
			d.Width = width
		}
		if height > 0 {
			d.Height = height
		}
	}
}

// WithBackground sets the canvas background color.
func WithBackground(c Color) Option {
	return func(d *Document) { d.Background = c }
}

// New creates an empty document. Defaults: title "Sketch", 800x600 canvas,
// white background.
func New(opts ...Option) *Document {
	d := &Document{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: White,
		items:      map[int]Item{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NextID returns the identifier the next inserted item will receive: 1 for an
// empty document, otherwise one past the most recently added identifier. It is
// a pure function of the document; calling it twice without inserting yields
// the same value.
//
// Identifiers stay gapless and collision-free only while all insertion goes
// through the builder API. Inserting a custom item with an arbitrary id via
// AddItem is the caller's responsibility.
func (d *Document) NextID() int {
	if len(d.order) == 0 {
		return 1
	}
	return d.order[0] + 1
}

// Len returns the number of items in the document.
func (d *Document) Len() int { return len(d.order) }

// Order returns the item identifiers, most recently added first.
func (d *Document) Order() []int {
	return slices.Clone(d.order)
}

// Replay returns the item identifiers in insertion order (oldest first), which
// is the order the render pipeline consumes them in.
func (d *Document) Replay() []int {
	ids := slices.Clone(d.order)
	slices.Reverse(ids)
	return ids
}

// Item looks up an item by identifier.
func (d *Document) Item(id int) (Item, bool) {
	it, ok := d.items[id]
	return it, ok
}

// AddLine appends a line from start to finish.
func (d *Document) AddLine(start, finish Point) *Document {
	return d.AddItem(Line{id: d.NextID(), Start: start, Finish: finish})
}

// AddRect appends a rectangle. Width and height must be positive.
func (d *Document) AddRect(origin Point, width, height float64) (*Document, error) {
	if width <= 0 || height <= 0 {
		return d, errors.New(errors.ErrCodeInvalidShape,
			"rect dimensions must be positive, got %vx%v", width, height)
	}
	return d.AddItem(Rect{id: d.NextID(), Origin: origin, Width: width, Height: height}), nil
}

// AddSquare appends a square. Size must be positive.
func (d *Document) AddSquare(origin Point, size float64) (*Document, error) {
	if size <= 0 {
		return d, errors.New(errors.ErrCodeInvalidShape,
			"square size must be positive, got %v", size)
	}
	return d.AddItem(Square{id: d.NextID(), Origin: origin, Size: size}), nil
}

// SetFill appends a fill state change affecting every shape added after it.
func (d *Document) SetFill(c Color) *Document {
	return d.AddItem(Fill{id: d.NextID(), Color: c})
}

// Translate appends a translation state change shifting every shape added
// after it. Translations accumulate.
func (d *Document) Translate(dx, dy float64) *Document {
	return d.AddItem(Translate{id: d.NextID(), DX: dx, DY: dy})
}

// AddItem inserts any item, including custom shapes. The item's identifier
// should come from [Document.NextID]. Inserting an identifier that is already
// present returns the document unchanged: insertion is idempotent for both the
// item mapping and the order list, so an accidental id collision can neither
// replace an item nor produce a duplicate replay entry.
func (d *Document) AddItem(it Item) *Document {
	if it == nil {
		return d
	}
	if _, ok := d.items[it.ID()]; ok {
		return d
	}
	nd := &Document{
		Title:      d.Title,
		Width:      d.Width,
		Height:     d.Height,
		Background: d.Background,
		items:      maps.Clone(d.items),
	}
	if nd.items == nil {
		nd.items = map[int]Item{}
	}
	nd.items[it.ID()] = it
	nd.order = make([]int, 0, len(d.order)+1)
	nd.order = append(nd.order, it.ID())
	nd.order = append(nd.order, d.order...)
	return nd
}
