package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/costpath/bellmanford"
)

var (
	colorCyan   = lipgloss.Color("36")  // numbers
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const iconArrow = "→"

// formatResult styles a solver outcome for terminal output.
func formatResult(r bellmanford.Result) string {
	switch r.Kind {
	case bellmanford.Reachable:
		return styleNumber.Render(r.String())
	case bellmanford.Unreachable:
		return styleWarning.Render(r.String())
	default:
		return styleError.Render(r.String())
	}
}
