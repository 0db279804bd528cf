package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costpath/render"
)

// verticesCommand lists vertices in registration order.
func (c *CLI) verticesCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "vertices",
		Short: "List vertices in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.load(cmd.Context(), file)
			if err != nil {
				return err
			}
			return render.Vertices(cmd.OutOrStdout(), n.Graph())
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}

// matrixCommand prints the cost matrix with row labels.
func (c *CLI) matrixCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the dense cost matrix (0 = no edge)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.load(cmd.Context(), file)
			if err != nil {
				return err
			}
			return render.Matrix(cmd.OutOrStdout(), n.Graph())
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}

// edgesCommand prints every directed edge in row-major order.
func (c *CLI) edgesCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List directed edges with weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.load(cmd.Context(), file)
			if err != nil {
				return err
			}
			return render.Edges(cmd.OutOrStdout(), n.Graph())
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
