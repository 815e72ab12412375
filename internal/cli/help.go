package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles - chart theme
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BarBlue).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(SlateGray).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SkyBlue).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(SkyBlue).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(BarBlue).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(SlateGray).
				Italic(true)
)

var helpExamples = []string{
	"cut -f3 access.log | %s -o status.png",
	"%s -d comma -k 2 --header -n -t data.csv",
	"%s -s counts.tsv -g 1920x1080 words.tsv",
}

// entry is one row of the help table: a styled left column and its help text
type entry struct {
	name       string
	help       string
	defaultVal string
}

// StyledHelpPrinter creates a custom help printer with Lipgloss styling
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder
		name := ctx.Model.Name

		sb.WriteString(helpTitleStyle.Render(appName))
		sb.WriteString("\n")
		sb.WriteString(helpDescStyle.Render(appDescription))
		sb.WriteString("\n")

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [<input>] [flags]", name))
		sb.WriteString("\n")

		writeSection(&sb, "Arguments:", getArguments(ctx), helpArgStyle)
		writeSection(&sb, "Flags:", getFlags(ctx), helpFlagStyle)

		sb.WriteString("\n")
		sb.WriteString(helpSectionStyle.Render("Examples:"))
		sb.WriteString("\n")
		for _, ex := range helpExamples {
			sb.WriteString("  ")
			sb.WriteString(strings.ReplaceAll(ex, "%s", name))
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	})
}

// writeSection renders entries with their help text aligned in one column
func writeSection(sb *strings.Builder, title string, entries []entry, nameStyle lipgloss.Style) {
	if len(entries) == 0 {
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.name))
	}

	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(nameStyle.Render(e.name))
		if e.help != "" {
			sb.WriteString(strings.Repeat(" ", width-len(e.name)+2))
			sb.WriteString(e.help)
		}
		if e.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + e.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func getArguments(ctx *kong.Context) []entry {
	var args []entry
	for _, arg := range ctx.Model.Node.Positional {
		args = append(args, entry{name: arg.Summary(), help: arg.Help})
	}
	return args
}

func getFlags(ctx *kong.Context) []entry {
	flags := []entry{{
		name: "-h, --help",
		help: "Show context-sensitive help.",
	}}

	for _, f := range ctx.Model.Node.Flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		name := "    --" + f.Name
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// Only show default if it's a meaningful value (not empty, not type placeholder)
		defaultVal := ""
		if f.HasDefault && !f.IsBool() {
			if val := f.Default; val != "" && val != "STRING" {
				defaultVal = val
			}
		}

		flags = append(flags, entry{name: name, help: f.Help, defaultVal: defaultVal})
	}

	return flags
}
