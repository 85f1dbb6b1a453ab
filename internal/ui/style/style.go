// Package style provides shared UI styling primitives, brand colors and
// icons, for consistent presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Ember = lipgloss.Color("#E4572E")
	Slate = lipgloss.Color("#667085")
	White = lipgloss.Color("#FFFFFF")
	Ink   = lipgloss.Color("#0B0F19")
	Ash   = lipgloss.Color("#F4F1EE")
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
	Amber = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)
