// Package cli implements the costpath command-line interface.
//
// Commands load an edge file through network.Load and print vertices, the
// cost matrix, the edge list, shortest-path costs, or a DOT/SVG export.
// Settings come from an optional TOML config file (internal/config); flags win.
// Logging goes to stderr through charmbracelet/log; --verbose enables debug.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costpath/bellmanford"
	"github.com/katalvlaran/costpath/digraph"
	"github.com/katalvlaran/costpath/internal/config"
	"github.com/katalvlaran/costpath/network"
)

// version is reported by --version.
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string        // --config
	verbose    bool          // --verbose
	cfg        config.Config // resolved in PersistentPreRunE
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "costpath",
		Short:         "costpath answers shortest-path queries over weighted digraphs",
		Long:          `costpath loads a "from;to;forward;backward" edge file and computes Bellman-Ford shortest-path costs, reporting negative cycles reachable from the source.`,
		Version:       version,
		// main prints the returned error once.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.configure(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/costpath/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.verticesCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.edgesCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// configure loads the config file, applies the log level and attaches the logger to ctx.
func (c *CLI) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))

	return nil
}

// addFileFlag registers the shared --file/-f flag.
func addFileFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "file", "f", "", "edge file to load (default: config input)")
}

// load resolves the input path and loads it with the configured options.
func (c *CLI) load(ctx context.Context, file string) (*network.Network, error) {
	logger := loggerFromContext(ctx)

	path := file
	if path == "" {
		path = c.cfg.Input
	}
	if path == "" {
		return nil, fmt.Errorf("no input file: pass --file or set input in the config")
	}

	var opts []network.LoadOption
	if c.cfg.ZeroWeightEdges {
		opts = append(opts, network.WithGraphOptions(digraph.WithZeroWeightEdges()))
	}
	if c.cfg.EarlyExit {
		opts = append(opts, network.WithSolverOptions(bellmanford.WithEarlyExit()))
	}

	logger.Debug("loading graph", "path", path, "zero_weight_edges", c.cfg.ZeroWeightEdges)
	prog := newProgress(logger)
	n, err := network.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	g := n.Graph()
	prog.done(fmt.Sprintf("Loaded %d vertices, %d edges", g.VertexCount(), len(g.Edges())))

	return n, nil
}
