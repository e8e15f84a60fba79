// Package window displays a sketch document in an interactive desktop window.
//
// The backend records resolved draw commands during replay (fill and offset
// applied at record time), then opens an ebiten window that repaints the
// retained command list every frame. Finish blocks until the window closes.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/sketchkit/sketch/pkg/errors"
	"github.com/sketchkit/sketch/pkg/sketch"
)

type cmdKind int

const (
	cmdLine cmdKind = iota
	cmdRect
)

// drawCmd is one retained draw call with all replay state already applied.
type drawCmd struct {
	kind           cmdKind
	x1, y1, x2, y2 float32 // line endpoints, or rect origin and size
	col            color.RGBA
}

// canvas records commands during one replay.
type canvas struct {
	cfg    sketch.Config
	fill   sketch.Color
	dx, dy float64
	cmds   []drawCmd
}

// SetFill replaces the active fill color.
func (c *canvas) SetFill(col sketch.Color) {
	c.fill = col
}

// Translate accumulates the drawing offset.
func (c *canvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

// Line records a stroked segment. Stroke color is fixed, matching the raster
// backend.
func (c *canvas) Line(start, finish sketch.Point) {
	c.cmds = append(c.cmds, drawCmd{
		kind: cmdLine,
		x1:   float32(start.X + c.dx),
		y1:   float32(start.Y + c.dy),
		x2:   float32(finish.X + c.dx),
		y2:   float32(finish.Y + c.dy),
		col:  toRGBA(sketch.Black),
	})
}

// Rect records a filled rectangle with the active fill color.
func (c *canvas) Rect(origin sketch.Point, width, height float64) {
	c.cmds = append(c.cmds, drawCmd{
		kind: cmdRect,
		x1:   float32(origin.X + c.dx),
		y1:   float32(origin.Y + c.dy),
		x2:   float32(width),
		y2:   float32(height),
		col:  toRGBA(c.fill),
	})
}

func toRGBA(c sketch.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Backend implements sketch.Backend for an interactive on-screen view.
type Backend struct {
	scale int
}

// Option configures the backend.
type Option func(*Backend)

// WithWindowScale multiplies the window size relative to the canvas size
// (default 1).
func WithWindowScale(s int) Option {
	return func(b *Backend) {
		if s > 0 {
			b.scale = s
		}
	}
}

// New creates a window backend.
func New(opts ...Option) *Backend {
	b := &Backend{scale: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a recording canvas sized per cfg.
func (b *Backend) Begin(cfg sketch.Config) (sketch.Canvas, error) {
	return &canvas{cfg: cfg, fill: sketch.Black}, nil
}

// Finish opens the window and blocks until it is closed.
func (b *Backend) Finish(c sketch.Canvas) error {
	cv, ok := c.(*canvas)
	if !ok {
		return errors.New(errors.ErrCodeInternal,
			"window backend got a foreign canvas %T", c)
	}

	g := &game{canvas: cv}
	ebiten.SetWindowTitle(cv.cfg.Title)
	ebiten.SetWindowSize(int(cv.cfg.Width)*b.scale, int(cv.cfg.Height)*b.scale)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "window loop")
	}
	return nil
}

// game replays the retained command list every frame.
type game struct {
	canvas *canvas
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.canvas.cfg.Background))
	for _, cmd := range g.canvas.cmds {
		switch cmd.kind {
		case cmdLine:
			vector.StrokeLine(screen, cmd.x1, cmd.y1, cmd.x2, cmd.y2, 1, cmd.col, true)
		case cmdRect:
			vector.DrawFilledRect(screen, cmd.x1, cmd.y1, cmd.x2, cmd.y2, cmd.col, true)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.canvas.cfg.Width), int(g.canvas.cfg.Height)
}

// Ensure Backend implements sketch.Backend.
var _ sketch.Backend = (*Backend)(nil)
