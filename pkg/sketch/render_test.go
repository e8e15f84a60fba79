package sketch

import (
	"fmt"
	"slices"
	"testing"

	"github.com/sketchkit/sketch/pkg/errors"
)

// recordCanvas captures every replayed operation, resolving the active fill
// and offset at the moment each shape is drawn.
type recordCanvas struct {
	fill Color
	dx   float64
	dy   float64
	ops  []string
}

func (c *recordCanvas) SetFill(col Color) { c.fill = col }

func (c *recordCanvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

func (c *recordCanvas) Line(start, finish Point) {
	c.ops = append(c.ops, fmt.Sprintf("line (%g,%g)-(%g,%g) fill=%s",
		start.X+c.dx, start.Y+c.dy, finish.X+c.dx, finish.Y+c.dy, c.fill.Hex()))
}

func (c *recordCanvas) Rect(origin Point, width, height float64) {
	c.ops = append(c.ops, fmt.Sprintf("rect (%g,%g) %gx%g fill=%s",
		origin.X+c.dx, origin.Y+c.dy, width, height, c.fill.Hex()))
}

// recordBackend hands out a recordCanvas and remembers the replay config.
type recordBackend struct {
	cfg      Config
	canvas   *recordCanvas
	finished bool
}

func (b *recordBackend) Begin(cfg Config) (Canvas, error) {
	b.cfg = cfg
	b.canvas = &recordCanvas{fill: Black}
	return b.canvas, nil
}

func (b *recordBackend) Finish(c Canvas) error {
	b.finished = true
	return nil
}

func TestRenderConfig(t *testing.T) {
	d := New(WithTitle("Cover"), WithSize(320, 240), WithBackground(RGB(1, 2, 3)))
	b := &recordBackend{}

	if err := Render(d, b); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := Config{Title: "Cover", Width: 320, Height: 240, Background: Color{1, 2, 3}}
	if b.cfg != want {
		t.Errorf("Begin config = %+v, want %+v", b.cfg, want)
	}
	if !b.finished {
		t.Error("Finish was not called")
	}
}

func TestRenderReplayOrder(t *testing.T) {
	d := New().AddLine(Point{}, Point{X: 100, Y: 100})
	d = d.SetFill(RGB(200, 120, 0))
	d, err := d.AddRect(Point{X: 40, Y: 40}, 30, 30)
	if err != nil {
		t.Fatalf("AddRect error: %v", err)
	}

	b := &recordBackend{}
	if err := Render(d, b); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := []string{
		"line (0,0)-(100,100) fill=#000000",
		"rect (40,40) 30x30 fill=#C87800",
	}
	if !slices.Equal(b.canvas.ops, want) {
		t.Errorf("ops = %v, want %v", b.canvas.ops, want)
	}
}

func TestRenderPositionalFill(t *testing.T) {
	red := RGB(255, 0, 0)

	// shape A, fill(red), shape B: A draws with the default fill, B with red.
	d := New().AddLine(Point{}, Point{X: 1, Y: 1})
	d = d.SetFill(red)
	d = d.AddLine(Point{X: 2, Y: 2}, Point{X: 3, Y: 3})

	b := &recordBackend{}
	if err := Render(d, b); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	want := []string{
		"line (0,0)-(1,1) fill=#000000",
		"line (2,2)-(3,3) fill=#FF0000",
	}
	if !slices.Equal(b.canvas.ops, want) {
		t.Errorf("ops = %v, want %v", b.canvas.ops, want)
	}

	// Moving the fill before A changes A, not B.
	d2 := New().SetFill(red)
	d2 = d2.AddLine(Point{}, Point{X: 1, Y: 1})
	d2 = d2.AddLine(Point{X: 2, Y: 2}, Point{X: 3, Y: 3})

	b2 := &recordBackend{}
	if err := Render(d2, b2); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	want2 := []string{
		"line (0,0)-(1,1) fill=#FF0000",
		"line (2,2)-(3,3) fill=#FF0000",
	}
	if !slices.Equal(b2.canvas.ops, want2) {
		t.Errorf("ops = %v, want %v", b2.canvas.ops, want2)
	}
}

func TestRenderTranslateAccumulates(t *testing.T) {
	d := New().AddLine(Point{}, Point{X: 1, Y: 1})
	d = d.Translate(10, 0)
	d = d.AddLine(Point{}, Point{X: 1, Y: 1})
	d = d.Translate(0, 5)
	d = d.AddLine(Point{}, Point{X: 1, Y: 1})

	b := &recordBackend{}
	if err := Render(d, b); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := []string{
		"line (0,0)-(1,1) fill=#000000",
		"line (10,0)-(11,1) fill=#000000",
		"line (10,5)-(11,6) fill=#000000",
	}
	if !slices.Equal(b.canvas.ops, want) {
		t.Errorf("ops = %v, want %v", b.canvas.ops, want)
	}
}

func TestRenderCustomShape(t *testing.T) {
	d := New()
	d = d.AddItem(staticItem{id: d.NextID()})

	b := &recordBackend{}
	if err := Render(d, b); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(b.canvas.ops) != 1 {
		t.Errorf("ops = %v, want one line from the custom shape", b.canvas.ops)
	}
}

// opaqueItem has an id but no render capability.
type opaqueItem struct{ id int }

func (o opaqueItem) ID() int { return o.id }

func TestRenderUnsupportedItem(t *testing.T) {
	d := New().AddItem(opaqueItem{id: 1})

	err := Render(d, &recordBackend{})
	if !errors.Is(err, errors.ErrCodeUnsupportedItem) {
		t.Errorf("error code = %v, want UNSUPPORTED_ITEM", errors.GetCode(err))
	}
}
