package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pagenav/internal/nav"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPeach    lipgloss.Color = "#fab387"
	colorRed      lipgloss.Color = "#f38ba8"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorSelected   = colorPeach
	colorDropTarget = colorBlue
	colorInsert     = colorSapphire
	colorDanger     = colorRed
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	helpStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
	connectorStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	insertStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorMantle).Background(colorInsert)
	addButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface2).
			Foreground(colorSubtext0).
			Padding(0, 1)
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	menuItemStyle   = lipgloss.NewStyle().Foreground(colorText)
	menuCursorStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
)

var chipBase = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

// chipStyle maps a resolved page state and its drag decorations to a style.
func chipStyle(v nav.PageView) lipgloss.Style {
	s := chipBase
	switch v.State {
	case nav.StateDisabled:
		s = s.Foreground(colorOverlay0).BorderForeground(colorSurface1).Faint(true)
	case nav.StateSelected:
		s = s.Foreground(colorSelected).BorderForeground(colorSelected).Bold(true)
	case nav.StateHovered:
		s = s.Foreground(colorText).BorderForeground(colorOverlay1)
	default:
		s = s.Foreground(colorSubtext0).BorderForeground(colorSurface2)
	}
	if v.Dragged {
		s = s.Faint(true)
	}
	if v.DropTarget {
		s = s.Border(lipgloss.ThickBorder()).BorderForeground(colorDropTarget)
	}
	return s
}
