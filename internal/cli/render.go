package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/costpath/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderCommand exports the graph as DOT text or an SVG image.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		file   string
		output string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the graph as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unsupported format %q: want %s or %s", format, formatDOT, formatSVG)
			}

			ctx := cmd.Context()
			n, err := c.load(ctx, file)
			if err != nil {
				return err
			}

			data := []byte(render.ToDOT(n.Graph()))
			if format == formatSVG {
				if data, err = render.RenderSVG(ctx, string(data)); err != nil {
					return err
				}
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			loggerFromContext(ctx).Info("wrote graph", "path", output, "format", format)
			return nil
		},
	}
	addFileFlag(cmd, &file)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", formatDOT, "output format: dot or svg")
	return cmd
}
