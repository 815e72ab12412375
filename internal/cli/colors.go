package cli

import "github.com/charmbracelet/lipgloss"

// Chart palette, shared by the CLI output and the text chart
var (
	BarBlue   = lipgloss.Color("#2A71B0") // Bar fill, matches the raster chart
	SkyBlue   = lipgloss.Color("#6FA8DC") // Highlights
	DeepNavy  = lipgloss.Color("#1B3A5C") // Frames
	SlateGray = lipgloss.Color("#8A9BA8") // Subtle text
)
