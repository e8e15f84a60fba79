package raster

import (
	"bytes"
	"fmt"
	"html"

	"github.com/sketchkit/sketch/pkg/sketch"
)

// strokeColor is the fixed stroke used for lines. Fill state only affects
// filled shapes; line stroke is not part of the carried style.
var strokeColor = sketch.Black

// svgCanvas accumulates SVG elements during one replay, applying the active
// fill and translation as each shape arrives.
type svgCanvas struct {
	cfg    sketch.Config
	body   bytes.Buffer
	fill   sketch.Color
	dx, dy float64
}

func newSVGCanvas(cfg sketch.Config) *svgCanvas {
	return &svgCanvas{cfg: cfg, fill: sketch.Black}
}

// SetFill replaces the active fill color.
func (c *svgCanvas) SetFill(col sketch.Color) {
	c.fill = col
}

// Translate accumulates the drawing offset.
func (c *svgCanvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}

// Line strokes a segment with the fixed stroke color.
func (c *svgCanvas) Line(start, finish sketch.Point) {
	fmt.Fprintf(&c.body,
		`  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1"/>`+"\n",
		start.X+c.dx, start.Y+c.dy, finish.X+c.dx, finish.Y+c.dy, strokeColor.Hex())
}

// Rect fills a rectangle with the active fill color.
func (c *svgCanvas) Rect(origin sketch.Point, width, height float64) {
	fmt.Fprintf(&c.body,
		`  <rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
		origin.X+c.dx, origin.Y+c.dy, width, height, c.fill.Hex())
}

// Bytes assembles the complete SVG document: header, title, background rect,
// then the replayed elements.
func (c *svgCanvas) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g" width="%g" height="%g">`+"\n",
		c.cfg.Width, c.cfg.Height, c.cfg.Width, c.cfg.Height)
	if c.cfg.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(c.cfg.Title))
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%g" height="%g" fill="%s"/>`+"\n",
		c.cfg.Width, c.cfg.Height, c.cfg.Background.Hex())
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Ensure svgCanvas implements sketch.Canvas.
var _ sketch.Canvas = (*svgCanvas)(nil)
