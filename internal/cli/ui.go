package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal, headings and the spinner
	colorOK     = lipgloss.Color("35")  // success marks
	colorWarn   = lipgloss.Color("220") // warnings, scaled-layout badge
	colorFail   = lipgloss.Color("167") // errors
	colorValue  = lipgloss.Color("255") // bright values
	colorLabel  = lipgloss.Color("245") // report keys, secondary text
	colorMuted  = lipgloss.Color("240") // dim filler
)

// =============================================================================
// Shared styles
// =============================================================================

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleHighlight for emphasized values inside a sentence.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorMuted)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorValue)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorOK)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleFail    = lipgloss.NewStyle().Foreground(colorFail)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleInfo    = lipgloss.NewStyle().Foreground(colorLabel)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleScaled = lipgloss.NewStyle().Foreground(colorWarn)
	styleNative = lipgloss.NewStyle().Foreground(colorLabel)

	styleCommand = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	styleKey = lipgloss.NewStyle().Foreground(colorLabel).Width(14)
)

// =============================================================================
// Status lines
// =============================================================================

// statusLine prints an icon followed by a message.
func statusLine(iconStyle lipgloss.Style, icon, msg string) {
	fmt.Println(iconStyle.Render(icon) + " " + msg)
}

// printSuccess marks a completed step.
func printSuccess(format string, args ...any) {
	statusLine(styleOK, "✓", fmt.Sprintf(format, args...))
}

// printError marks a failed step.
func printError(format string, args ...any) {
	statusLine(styleFail, "✗", fmt.Sprintf(format, args...))
}

// printWarning flags something the command worked around.
func printWarning(format string, args ...any) {
	statusLine(styleWarn, "!", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printInfo prints a neutral status message.
func printInfo(format string, args ...any) {
	statusLine(styleInfo, "›", fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Report helpers
// =============================================================================

// printFile points at a file the command wrote.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printKeyValue prints one aligned row of a key/value report.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints frame statistics on a single dim line.
func printStats(cellCount, width, height int, scaled bool) {
	var parts []string
	if cellCount > 0 {
		parts = append(parts, fmt.Sprintf("%d cells", cellCount))
	}
	parts = append(parts, fmt.Sprintf("%dx%d px", width, height))
	if scaled {
		parts = append(parts, styleScaled.Render("scaled"))
	} else {
		parts = append(parts, styleNative.Render("1:1"))
	}
	for i := range parts {
		parts[i] = StyleDim.Render(parts[i])
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
