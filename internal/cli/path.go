package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/costpath/bellmanford"
)

// pathQuery is one FROM:TO argument.
type pathQuery struct {
	from, to string
}

// parsePair splits "FROM:TO" at the first colon.
func parsePair(arg string) (pathQuery, error) {
	from, to, ok := strings.Cut(arg, ":")
	if !ok || from == "" || to == "" {
		return pathQuery{}, fmt.Errorf("invalid pair %q: want FROM:TO", arg)
	}
	return pathQuery{from: from, to: to}, nil
}

// pathCommand evaluates one or more shortest-path queries concurrently.
func (c *CLI) pathCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "path FROM:TO [FROM:TO...]",
		Short: "Compute shortest-path costs",
		Long: `Compute the Bellman-Ford shortest-path cost for each FROM:TO pair.

Each result is a cost, "unreachable", or "negative cycle" when a negative-weight
cycle is reachable from FROM. Results are printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := make([]pathQuery, len(args))
			for i, arg := range args {
				q, err := parsePair(arg)
				if err != nil {
					return err
				}
				queries[i] = q
			}

			ctx := cmd.Context()
			n, err := c.load(ctx, file)
			if err != nil {
				return err
			}
			logger := loggerFromContext(ctx)

			// Queries are pure reads over the frozen graph.
			results := make([]bellmanford.Result, len(queries))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, q := range queries {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					res, err := n.ShortestPathCost(q.from, q.to)
					if err != nil {
						return err
					}
					logger.Debug("query done", "from", q.from, "to", q.to, "result", res)
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, q := range queries {
				fmt.Fprintf(out, "%s %s %s: %s\n", q.from, styleDim.Render(iconArrow), q.to, formatResult(results[i]))
			}
			return nil
		},
	}
	addFileFlag(cmd, &file)
	return cmd
}
