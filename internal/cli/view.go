package cli

import (
	"github.com/spf13/cobra"

	"github.com/sketchkit/sketch/pkg/backend/window"
	"github.com/sketchkit/sketch/pkg/scenefile"
	"github.com/sketchkit/sketch/pkg/sketch"
)

// newViewCmd creates the view command for displaying a scene in a window.
func newViewCmd() *cobra.Command {
	var scale int

	cmd := &cobra.Command{
		Use:   "view [scene file]",
		Short: "Open a scene file in an interactive window",
		Long:  `View loads a scene file and displays it in a desktop window. The command blocks until the window is closed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := scenefile.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("Loaded scene: %d items", doc.Len())
			logger.Info("Opening window, close it to exit")

			return sketch.Render(doc, window.New(window.WithWindowScale(scale)))
		},
	}

	cmd.Flags().IntVar(&scale, "window-scale", 1, "window size multiplier")

	return cmd
}
