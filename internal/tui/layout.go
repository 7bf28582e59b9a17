package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pagenav/internal/nav"
)

// Screen rows.
const (
	titleRow    = 0
	stripTop    = 2
	stripHeight = 3
	statusRow   = stripTop + stripHeight + 1
	helpRow     = statusRow + 1
	marginLeft  = 1
)

const (
	connector    = " ··· "
	triggerGlyph = "⋯"
	addLabel     = "+ Add page"
)

type zoneKind int

const (
	zoneNone zoneKind = iota
	zonePage
	zoneGap
	zoneEnd
	zoneMenu
)

type part int

const (
	partBody part = iota
	partIcon
	partLabel
	partTrigger
	partAdd
)

// target is the innermost element under the pointer.
type target struct {
	kind  zoneKind
	index int
	part  part
}

var noTarget = target{kind: zoneNone, index: -1}

// dragElement reports whether t counts for drag enter/leave tracking.
func (t target) dragElement() bool { return t.kind == zonePage || t.kind == zoneEnd }

// sameClickTarget reports whether a press on t and a release on o form a
// click: both must land on the same logical control.
func (t target) sameClickTarget(o target) bool {
	if t.kind != o.kind || t.index != o.index {
		return false
	}
	if t.kind == zonePage {
		return (t.part == partTrigger) == (o.part == partTrigger)
	}
	if t.kind == zoneEnd {
		return (t.part == partAdd) == (o.part == partAdd)
	}
	return true
}

// hitRange maps a screen rectangle to an element. Ranges are exclusive at
// the end.
type hitRange struct {
	x0, x1 int
	y0, y1 int
	t      target
}

func (h hitRange) contains(x, y int) bool {
	return x >= h.x0 && x < h.x1 && y >= h.y0 && y < h.y1
}

type stripLayout struct {
	rendered string
	// children precede their parents so the first match is the innermost.
	ranges []hitRange
	chipX  []int
	chipW  []int
}

func (l stripLayout) hit(x, y int) target {
	for _, r := range l.ranges {
		if r.contains(x, y) {
			return r.t
		}
	}
	return noTarget
}

// layoutStrip renders the page strip and records where every element landed.
func layoutStrip(views []nav.PageView, hoveredGap int) stripLayout {
	var (
		l      stripLayout
		blocks []string
		x      = marginLeft
	)
	mid := stripTop + 1
	blocks = append(blocks, strings.Repeat(" ", marginLeft))
	for i, v := range views {
		if i > 0 {
			c := connectorStyle.Render(connector)
			if hoveredGap == i {
				c = connectorStyle.Render(" ·") + insertStyle.Render("+") + connectorStyle.Render("· ")
			}
			w := ansi.StringWidth(connector)
			l.ranges = append(l.ranges, hitRange{x0: x, x1: x + w, y0: stripTop, y1: stripTop + stripHeight, t: target{kind: zoneGap, index: i}})
			blocks = append(blocks, c)
			x += w
		}

		icon := v.Icon()
		content := icon + " " + v.Name
		if v.Trigger {
			// The trigger keeps its cell while hidden so the chip width never changes.
			glyph := strings.Repeat(" ", ansi.StringWidth(triggerGlyph))
			if v.Hovered || v.Focused {
				glyph = triggerGlyph
			}
			content += " " + glyph
		}
		chip := chipStyle(v).Render(content)
		w := lipgloss.Width(chip)

		// border + padding
		cx := x + 2
		iconW := ansi.StringWidth(icon)
		nameW := ansi.StringWidth(v.Name)
		page := func(p part) target { return target{kind: zonePage, index: i, part: p} }
		l.ranges = append(l.ranges, hitRange{x0: cx, x1: cx + iconW, y0: mid, y1: mid + 1, t: page(partIcon)})
		labelX := cx + iconW + 1
		l.ranges = append(l.ranges, hitRange{x0: labelX, x1: labelX + nameW, y0: mid, y1: mid + 1, t: page(partLabel)})
		if v.Trigger {
			tx := labelX + nameW + 1
			l.ranges = append(l.ranges, hitRange{x0: tx, x1: tx + ansi.StringWidth(triggerGlyph), y0: mid, y1: mid + 1, t: page(partTrigger)})
		}
		l.ranges = append(l.ranges, hitRange{x0: x, x1: x + w, y0: stripTop, y1: stripTop + stripHeight, t: page(partBody)})
		l.chipX = append(l.chipX, x)
		l.chipW = append(l.chipW, w)
		blocks = append(blocks, chip)
		x += w
	}

	end := target{kind: zoneEnd, index: len(views)}
	cw := ansi.StringWidth(connector)
	button := addButtonStyle.Render(addLabel)
	bw := lipgloss.Width(button)
	add := end
	add.part = partAdd
	l.ranges = append(l.ranges,
		hitRange{x0: x + cw, x1: x + cw + bw, y0: stripTop, y1: stripTop + stripHeight, t: add},
		hitRange{x0: x, x1: x + cw, y0: stripTop, y1: stripTop + stripHeight, t: end},
	)
	blocks = append(blocks, connectorStyle.Render(connector), button)

	l.rendered = lipgloss.JoinHorizontal(lipgloss.Center, blocks...)
	return l
}
