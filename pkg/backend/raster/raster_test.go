package raster

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sketchkit/sketch/pkg/cache"
	"github.com/sketchkit/sketch/pkg/errors"
	"github.com/sketchkit/sketch/pkg/sketch"
)

func buildScene(t *testing.T) *sketch.Document {
	t.Helper()
	d := sketch.New(sketch.WithTitle("Test & Scene"), sketch.WithSize(200, 100))
	d = d.AddLine(sketch.Point{}, sketch.Point{X: 50, Y: 50})
	d = d.SetFill(sketch.RGB(200, 120, 0))
	d = d.Translate(10, 20)
	d, err := d.AddRect(sketch.Point{X: 5, Y: 5}, 30, 40)
	if err != nil {
		t.Fatalf("AddRect error: %v", err)
	}
	return d
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithWriter(&buf))

	if err := sketch.Render(buildScene(t), b); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	svg := buf.String()
	checks := []string{
		`viewBox="0 0 200 100"`,
		`<title>Test &amp; Scene</title>`,
		// background
		`<rect x="0" y="0" width="200" height="100" fill="#FFFFFF"/>`,
		// line with fixed stroke, before fill/translate take effect
		`<line x1="0" y1="0" x2="50" y2="50" stroke="#000000"`,
		// rect with active fill, shifted by the translation
		`<rect x="15" y="25" width="30" height="40" fill="#C87800"/>`,
	}
	for _, want := range checks {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q\n%s", want, svg)
		}
	}

	if !bytes.Equal(b.Bytes(), buf.Bytes()) {
		t.Error("Bytes() should match the written output")
	}
}

func TestRenderSVGLayerOrder(t *testing.T) {
	b := New()
	if err := sketch.Render(buildScene(t), b); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	svg := string(b.Bytes())
	lineIdx := strings.Index(svg, "<line")
	rectIdx := strings.LastIndex(svg, "<rect")
	if lineIdx < 0 || rectIdx < 0 {
		t.Fatalf("missing elements in SVG:\n%s", svg)
	}
	if lineIdx > rectIdx {
		t.Error("line should be emitted before the later rect (insertion order)")
	}
}

func TestRenderPNGMissingTool(t *testing.T) {
	// An empty PATH guarantees rsvg-convert cannot be found.
	t.Setenv("PATH", t.TempDir())

	b := New(WithFormat(FormatPNG))
	err := sketch.Render(buildScene(t), b)
	if !errors.Is(err, errors.ErrCodeMissingTool) {
		t.Errorf("error code = %v, want MISSING_TOOL", errors.GetCode(err))
	}
	if !strings.Contains(err.Error(), "librsvg") {
		t.Errorf("error should carry a remediation hint, got: %v", err)
	}
}

func TestRenderPNGCacheHit(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	// Precompute the key the backend will use and seed the cache, so the
	// conversion subprocess is never needed.
	doc := buildScene(t)
	probe := New()
	if err := sketch.Render(doc, probe); err != nil {
		t.Fatalf("probe render error: %v", err)
	}
	key := cache.RenderKey(cache.Hash(probe.Bytes()), "png", 2.0)
	if err := c.Set(context.Background(), key, []byte("cached-png"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	b := New(WithFormat(FormatPNG), WithCache(c, time.Hour))
	if err := sketch.Render(doc, b); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if string(b.Bytes()) != "cached-png" {
		t.Errorf("Bytes() = %q, want cached artifact", b.Bytes())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"png", FormatPNG, false},
		{"pdf", FormatPDF, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
