package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avdanilov/tender/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// FindingIndicator returns a colored indicator for a review finding kind.
func FindingIndicator(kind domain.FindingKind) string {
	switch kind {
	case domain.FindingError:
		return StyleRed.Render("✖ ERROR")
	case domain.FindingWarning:
		return StyleYellow.Render("▲ WARNING")
	case domain.FindingSuccess:
		return StyleGreen.Render("✔ OK")
	default:
		return StyleDim.Render("● " + strings.ToUpper(string(kind)))
	}
}

// CategoryBadge returns a colored category label for a line item.
func CategoryBadge(c domain.Category) string {
	switch c {
	case domain.CategoryEquipment:
		return StyleBlue.Render("equipment")
	case domain.CategoryMaterial:
		return StylePurple.Render("material")
	case domain.CategoryCable:
		return StyleYellow.Render("cable")
	default:
		return StyleDim.Render(string(c))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
