package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pagenav/internal/nav"
)

var menuGlyphs = map[nav.Action]string{
	nav.ActionSetAsFirst: "⚑",
	nav.ActionRename:     "✎",
	nav.ActionCopy:       "⧉",
	nav.ActionDuplicate:  "❐",
	nav.ActionDelete:     "✕",
}

// Rows above the first action: top border, title, separator.
const menuItemsTop = 3

type menuBox struct {
	rendered string
	x, y     int
	w, h     int
}

// renderMenu draws the context menu with cursor highlighted.
func renderMenu(cursor int) string {
	labels := make([]string, len(nav.MenuActions))
	inner := lipgloss.Width("Settings")
	for i, a := range nav.MenuActions {
		labels[i] = menuGlyphs[a] + " " + a.Label()
		inner = max(inner, lipgloss.Width(labels[i]))
	}
	rows := []string{
		menuTitleStyle.Render("Settings"),
		connectorStyle.Render(strings.Repeat("─", inner)),
	}
	for i, a := range nav.MenuActions {
		style := menuItemStyle
		if i == cursor {
			style = menuCursorStyle
		}
		if a.Destructive() {
			style = style.Foreground(colorDanger)
		}
		rows = append(rows, style.Width(inner).Render(labels[i]))
	}
	return menuStyle.Render(strings.Join(rows, "\n"))
}

// placeMenu anchors the rendered menu at (ax, ay), pulled back inside a
// width x height screen when one is known.
func placeMenu(rendered string, ax, ay, width, height int) menuBox {
	b := menuBox{rendered: rendered, w: lipgloss.Width(rendered), h: lipgloss.Height(rendered)}
	b.x, b.y = ax, ay
	if width > 0 && b.x+b.w > width {
		b.x = width - b.w
	}
	if height > 0 && b.y+b.h > height {
		b.y = height - b.h
	}
	b.x = max(b.x, 0)
	b.y = max(b.y, 0)
	return b
}

// hit returns the menu element at (x, y). index is the action row, or -1
// for the frame and title.
func (b menuBox) hit(x, y int) (target, bool) {
	if x < b.x || x >= b.x+b.w || y < b.y || y >= b.y+b.h {
		return noTarget, false
	}
	row := y - b.y - menuItemsTop
	if row < 0 || row >= len(nav.MenuActions) || x == b.x || x == b.x+b.w-1 {
		return target{kind: zoneMenu, index: -1}, true
	}
	return target{kind: zoneMenu, index: row}, true
}
