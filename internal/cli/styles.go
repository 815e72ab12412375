package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	// Title style - bold blue with chart emoji
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BarBlue).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AA00"))

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(SlateGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SkyBlue)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DeepNavy).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// Status output goes to stderr so stdout stays free for counts and text charts
var statusOut io.Writer = os.Stderr

const appName = "rankhist 📊"

const appDescription = "Count the values of one column in a delimited stream and plot them as a rank histogram."

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Fprintln(os.Stdout, TitleStyle.Render(appName))
	fmt.Fprintf(os.Stdout, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(statusOut, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintf(statusOut, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Fprintln(statusOut, BoxStyle.Render(content))
}

// Summary describes a finished run for PrintSummary.
type Summary struct {
	Records  int
	Distinct int
	MaxCount int
	AxisMax  int
}

// FormatSummary lays out a run summary as key/value lines
func FormatSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Histogram Complete!"))
	b.WriteString("\n\n")

	row := func(key, value string) {
		b.WriteString(KeyStyle.Render(fmt.Sprintf("%-10s", key+":")))
		b.WriteString(" ")
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Records", strconv.Itoa(s.Records))
	row("Distinct", strconv.Itoa(s.Distinct))
	row("Max count", strconv.Itoa(s.MaxCount))
	row("Y axis", "0.."+strconv.Itoa(s.AxisMax))

	return strings.TrimSuffix(b.String(), "\n")
}

// PrintSummary prints a run summary in a box
func PrintSummary(s Summary) {
	PrintBox(FormatSummary(s))
}
