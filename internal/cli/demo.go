package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sketchkit/sketch/pkg/backend/raster"
	"github.com/sketchkit/sketch/pkg/backend/window"
	"github.com/sketchkit/sketch/pkg/sketch"
)

// newDemoCmd creates the demo command for rendering built-in scenes.
func newDemoCmd() *cobra.Command {
	var (
		output     string
		format     string
		openWindow bool
	)

	names := make([]string, len(demoScenes))
	for i, s := range demoScenes {
		names[i] = s.name
	}

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Render a built-in demo scene",
		Long: fmt.Sprintf(`Demo renders one of the built-in scenes (%s).
With no name, an interactive picker is shown.`, strings.Join(names, ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				scene demoScene
				ok    bool
			)
			if len(args) == 1 {
				if scene, ok = findDemoScene(args[0]); !ok {
					return fmt.Errorf("unknown demo scene %q (available: %s)",
						args[0], strings.Join(names, ", "))
				}
			} else {
				var err error
				if scene, ok, err = pickDemoScene(); err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			doc, err := scene.build()
			if err != nil {
				return err
			}

			if openWindow {
				loggerFromContext(cmd.Context()).Info("Opening window, close it to exit")
				return sketch.Render(doc, window.New())
			}

			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}
			out := outputPath(output, scene.name+".toml", f)

			b := raster.New(
				raster.WithFormat(f),
				raster.WithPath(out),
				raster.WithContext(cmd.Context()),
			)
			if err := sketch.Render(doc, b); err != nil {
				return err
			}

			printSuccess("Rendered demo scene %q", scene.name)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.svg)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png, pdf")
	cmd.Flags().BoolVar(&openWindow, "window", false, "display in an interactive window instead of writing a file")

	return cmd
}
