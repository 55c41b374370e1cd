package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Chart colors come from the record's ColorMap instead.
var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorAmber  = lipgloss.Color("220") // warnings, percentages
	colorFail   = lipgloss.Color("167") // soft red
	colorCmd    = lipgloss.Color("75")  // light blue
	colorBright = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleHighlight for the hovered node.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	// StylePercentage for node shares.
	StylePercentage = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)

	StyleDim     = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue   = lipgloss.NewStyle().Foreground(colorBright)
	StyleWarning = lipgloss.NewStyle().Foreground(colorAmber)
)

var (
	styleCrumb   = lipgloss.NewStyle().Foreground(colorBright).Background(colorFaint).Padding(0, 1)
	styleCommand = lipgloss.NewStyle().Foreground(colorCmd)
	styleKey     = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

const iconArrow = "→"

// statusIcons prefix one-line status messages.
var statusIcons = struct {
	ok, fail, info, spin lipgloss.Style
}{
	ok:   lipgloss.NewStyle().Foreground(colorOK).SetString("✓"),
	fail: lipgloss.NewStyle().Foreground(colorFail).SetString("✗"),
	info: lipgloss.NewStyle().Foreground(colorMuted).SetString("›"),
	spin: lipgloss.NewStyle().Foreground(colorAccent),
}

// styleIconSpinner colors the spinner frames.
var styleIconSpinner = statusIcons.spin

func printStatus(icon lipgloss.Style, format string, args ...any) {
	fmt.Println(icon.String() + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { printStatus(statusIcons.ok, format, args...) }
func printError(format string, args ...any)   { printStatus(statusIcons.fail, format, args...) }
func printInfo(format string, args ...any)    { printStatus(statusIcons.info, format, args...) }

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints "N nodes · M arcs · cached|fresh".
func printStats(nodeCount, visibleCount int, cached bool) {
	var parts []string
	if nodeCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d nodes", nodeCount)))
	}
	if visibleCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d arcs", visibleCount)))
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorOK).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorMuted).Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printSwatch prints a legend entry on its own color.
func printSwatch(name, color, textColor string) {
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(textColor)).
		Padding(0, 1).
		Render(name)
	fmt.Println("  " + chip + " " + StyleDim.Render(color))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
