package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sketchkit/sketch/pkg/backend/raster"
	"github.com/sketchkit/sketch/pkg/cache"
	"github.com/sketchkit/sketch/pkg/scenefile"
	"github.com/sketchkit/sketch/pkg/sketch"
)

// renderCacheTTL bounds how long converted artifacts stay cached.
const renderCacheTTL = 7 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path
	format  string  // output format: "svg", "png", "pdf"
	scale   float64 // PNG scale factor
	noCache bool    // bypass the render cache
}

// newRenderCmd creates the render command for exporting scene files.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [scene file]",
		Short: "Render a scene file to SVG, PNG, or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: scene name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// resolveFormat picks the output format: the explicit flag wins, then the
// output file extension, then SVG.
func resolveFormat(flag, output string) (raster.Format, error) {
	if flag != "" {
		return raster.ParseFormat(flag)
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
		if f, err := raster.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return raster.FormatSVG, nil
}

// outputPath derives the output file path from the flags and input path.
func outputPath(output, input string, format raster.Format) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(format)
}

// renderCache opens the file-backed render cache, or the null cache when
// caching is disabled or the cache directory is unavailable.
func renderCache(ctx context.Context, disabled bool) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		loggerFromContext(ctx).Debug("render cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Debug("render cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return c
}

// runRender loads the scene and exports it in the requested format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	out := outputPath(opts.output, input, format)

	doc, err := scenefile.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene: %d items, %gx%g canvas", doc.Len(), doc.Width, doc.Height)

	c := renderCache(ctx, opts.noCache)
	defer c.Close()

	p := newProgress(logger)
	var spin *Spinner
	if format != raster.FormatSVG {
		// Conversion shells out; show activity while it runs.
		spin = newSpinner(ctx, fmt.Sprintf("Converting to %s...", format))
		spin.Start()
	}

	b := raster.New(
		raster.WithFormat(format),
		raster.WithScale(opts.scale),
		raster.WithPath(out),
		raster.WithCache(c, renderCacheTTL),
		raster.WithContext(ctx),
	)
	err = sketch.Render(doc, b)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered %s", input))
	printFile(out)
	return nil
}
