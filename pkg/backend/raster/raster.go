// Package raster renders a sketch document to an encoded image file.
//
// The backend builds an SVG in memory and either emits it directly or converts
// it to PNG/PDF through rsvg-convert. Conversion results can be cached so
// re-rendering an unchanged scene skips the subprocess entirely.
package raster

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sketchkit/sketch/pkg/cache"
	"github.com/sketchkit/sketch/pkg/errors"
	"github.com/sketchkit/sketch/pkg/sketch"
)

// Format selects the output encoding.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG, FormatPNG, FormatPDF:
		return Format(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"invalid format: %s (must be 'svg', 'png', or 'pdf')", s)
}

// Option configures the backend.
type Option func(*Backend)

// WithFormat sets the output format (default SVG).
func WithFormat(f Format) Option {
	return func(b *Backend) { b.format = f }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) Option {
	return func(b *Backend) {
		if s > 0 {
			b.scale = s
		}
	}
}

// WithPath writes the encoded output to a file at Finish.
func WithPath(path string) Option {
	return func(b *Backend) { b.path = path }
}

// WithWriter writes the encoded output to w at Finish.
func WithWriter(w io.Writer) Option {
	return func(b *Backend) { b.w = w }
}

// WithCache consults c for converted PNG/PDF bytes before shelling out to
// rsvg-convert, and stores fresh conversions with the given ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(b *Backend) {
		b.cache = c
		b.cacheTTL = ttl
	}
}

// WithContext sets the context used for cache operations.
func WithContext(ctx context.Context) Option {
	return func(b *Backend) { b.ctx = ctx }
}

// Backend implements sketch.Backend for file export. A Backend renders one
// document; after [sketch.Render] returns, Bytes holds the encoded result.
type Backend struct {
	format   Format
	scale    float64
	path     string
	w        io.Writer
	cache    cache.Cache
	cacheTTL time.Duration
	ctx      context.Context

	data []byte
}

// New creates a raster backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		format: FormatSVG,
		scale:  2.0,
		cache:  cache.NewNullCache(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts an SVG canvas sized and filled per cfg.
func (b *Backend) Begin(cfg sketch.Config) (sketch.Canvas, error) {
	return newSVGCanvas(cfg), nil
}

// Finish encodes the canvas into the configured format, writes it to the
// configured path/writer, and retains the bytes for [Backend.Bytes].
//
// PNG and PDF conversion requires the rsvg-convert binary; if it is absent
// the error carries code MISSING_TOOL with install instructions.
func (b *Backend) Finish(c sketch.Canvas) error {
	sc, ok := c.(*svgCanvas)
	if !ok {
		return errors.New(errors.ErrCodeInternal,
			"raster backend got a foreign canvas %T", c)
	}
	svg := sc.Bytes()

	data, err := b.encode(svg)
	if err != nil {
		return err
	}
	b.data = data

	if b.w != nil {
		if _, err := b.w.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "writing output")
		}
	}
	if b.path != "" {
		if err := os.WriteFile(b.path, data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "writing %s", b.path)
		}
	}
	return nil
}

// Bytes returns the encoded output of the last Finish.
func (b *Backend) Bytes() []byte { return b.data }

// Format returns the configured output format.
func (b *Backend) Format() Format { return b.format }

func (b *Backend) encode(svg []byte) ([]byte, error) {
	if b.format == FormatSVG {
		return svg, nil
	}

	key := cache.RenderKey(cache.Hash(svg), string(b.format), b.scale)
	if data, hit, err := b.cache.Get(b.ctx, key); err == nil && hit {
		return data, nil
	}

	var (
		data []byte
		err  error
	)
	switch b.format {
	case FormatPNG:
		data, err = toPNG(svg, b.scale)
	case FormatPDF:
		data, err = toPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", b.format)
	}
	if err != nil {
		return nil, err
	}

	_ = b.cache.Set(b.ctx, key, data, b.cacheTTL)
	return data, nil
}

// Ensure Backend implements sketch.Backend.
var _ sketch.Backend = (*Backend)(nil)
