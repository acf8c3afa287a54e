// Package output renders task lists and command results for the terminal.
package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Muted      = lipgloss.Color("#6B7280") // Gray
	MutedLight = lipgloss.Color("#9CA3AF") // Light Gray
)

// Styles holds the styles used to print results. Styles are bound to a
// renderer so that color support is detected per output writer.
type Styles struct {
	// Header is the list title.
	Header lipgloss.Style
	// ID is the bracketed task ID.
	ID lipgloss.Style
	// Pending and Done style the status marker.
	Pending lipgloss.Style
	Done    lipgloss.Style
	// Name is the task name. Styles that render task text keep tabs.
	Name lipgloss.Style
	// Description is the indented description line.
	Description lipgloss.Style
	// Empty is the empty-list message.
	Empty lipgloss.Style
	// Confirm is a one-line result of a mutation.
	Confirm lipgloss.Style
}

// NewStyles creates the style set for the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(Primary),
		ID: r.NewStyle().
			Foreground(Secondary),
		Pending: r.NewStyle().
			Foreground(Warning),
		Done: r.NewStyle().
			Foreground(Success).
			Bold(true),
		Name: r.NewStyle().
			TabWidth(lipgloss.NoTabConversion),
		Description: r.NewStyle().
			Foreground(MutedLight).
			TabWidth(lipgloss.NoTabConversion),
		Empty: r.NewStyle().
			Foreground(Success),
		Confirm: r.NewStyle().
			Foreground(Success).
			TabWidth(lipgloss.NoTabConversion),
	}
}
