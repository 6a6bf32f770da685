package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Standard ANSI colors - works with any terminal colorscheme
var (
	ColorFg     = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	ColorGreen  = lipgloss.Color("2")
	ColorRed    = lipgloss.Color("1")
	ColorYellow = lipgloss.Color("3")
	ColorCyan   = lipgloss.Color("6")
	ColorDim    = lipgloss.Color("8")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)
)

// keyWidth aligns the key column of KV output.
const keyWidth = 18

// Title renders a section heading.
func Title(s string) string {
	return TitleStyle.Render(s)
}

// KV renders one aligned "key: value" line.
func KV(key string, value interface{}) string {
	k := KeyStyle.Render(fmt.Sprintf("%-*s", keyWidth, key))
	return k + ValueStyle.Render(fmt.Sprint(value))
}

// OK renders a success line with a check mark.
func OK(format string, args ...interface{}) string {
	return SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...))
}

// Warn renders a warning line.
func Warn(format string, args ...interface{}) string {
	return WarningStyle.Render("! " + fmt.Sprintf(format, args...))
}

// Err renders an error line with a cross mark.
func Err(format string, args ...interface{}) string {
	return ErrorStyle.Render("✗ " + fmt.Sprintf(format, args...))
}

// Block joins lines into one printable block, dropping empty ones.
func Block(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
