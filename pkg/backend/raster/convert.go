package raster

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/sketchkit/sketch/pkg/errors"
)

const converter = "rsvg-convert"

// toPDF converts SVG bytes to PDF using rsvg-convert.
func toPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// toPNG converts SVG bytes to PNG using rsvg-convert with the given scale
// factor. Scale of 2.0 produces a 2x resolution image.
func toPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert shells out to rsvg-convert for format conversion. A missing
// binary is reported as MISSING_TOOL with install instructions so the caller
// can show an actionable message instead of a raw exec failure.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(converter); err != nil {
		return nil, errors.New(errors.ErrCodeMissingTool,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command(converter, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err,
			"%s: %s", converter, errBuf.String())
	}
	return out.Bytes(), nil
}
