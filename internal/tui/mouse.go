package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pagenav/internal/nav"
)

// handleMouse routes a mouse message to the element under the pointer. The
// open menu sits above the strip, so it is hit-tested first.
func (a *App) handleMouse(msg tea.MouseMsg) {
	t := a.layout().hit(msg.X, msg.Y)
	if box, ok := a.menuBox(); ok {
		if mt, inside := box.hit(msg.X, msg.Y); inside {
			t = mt
		}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if a.pressed && msg.Button == tea.MouseButtonLeft {
			a.dragMotion(t, msg.X, msg.Y)
			return
		}
		a.hover(t)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			a.pointerDown(t, msg.X, msg.Y)
		case tea.MouseButtonRight:
			// Right clicks never reach the document click listener.
			if t.kind == zonePage {
				a.nav.OpenContextMenu(a.pageAt(t.index).ID, msg.X, msg.Y)
				a.menuCursor = 0
			}
		}
	case tea.MouseActionRelease:
		a.pointerUp(t, msg.X, msg.Y)
	}
}

func (a *App) pageAt(i int) nav.Page {
	return a.nav.Pages()[i]
}

func (a *App) hover(t target) {
	if t.kind == zonePage {
		a.nav.Hover(a.pageAt(t.index).ID)
	} else {
		a.nav.Unhover()
	}
	if t.kind == zoneGap {
		a.nav.HoverInsert(t.index)
	} else {
		a.nav.UnhoverInsert()
	}
	if t.kind == zoneMenu && t.index >= 0 {
		a.menuCursor = t.index
	}
}

// pointerDown moves focus the way a mousedown does and arms a possible
// click or drag.
func (a *App) pointerDown(t target, x, y int) {
	a.pressed = true
	a.press = t
	a.pressX, a.pressY = x, y
	a.pressPage = ""
	if t.kind != zonePage {
		a.nav.Blur()
		return
	}
	p := a.pageAt(t.index)
	if !a.nav.Focus(p.ID) {
		a.nav.Blur()
		return
	}
	a.pressPage = p.ID
}

// dragMotion starts the drag once the pointer leaves the pressed cell, then
// reports element crossings. Entering the new element is reported before
// leaving the old one, which keeps the nesting depth above zero while the
// pointer moves between parts of the same page.
func (a *App) dragMotion(t target, x, y int) {
	if !a.nav.Dragging() {
		if a.pressPage == "" || (x == a.pressX && y == a.pressY) {
			return
		}
		if !a.nav.DragStart(a.pressPage) {
			a.pressPage = ""
			return
		}
		a.log.Debug("drag started", "page_id", a.pressPage)
		a.dragOverElement = noTarget
		a.crossInto(a.press)
	}
	a.crossInto(t)
}

func (a *App) crossInto(t target) {
	if t != a.dragOverElement {
		if t.dragElement() {
			a.nav.DragEnter()
		}
		if a.dragOverElement.dragElement() {
			a.nav.DragLeave()
		}
		a.dragOverElement = t
	}
	if slot, ok := dropSlot(t); ok {
		a.nav.DragOver(slot)
	}
}

func dropSlot(t target) (int, bool) {
	switch t.kind {
	case zonePage, zoneEnd:
		return t.index, true
	default:
		return 0, false
	}
}

// releaseSlot is the Drop slot for a release on t. A page released onto a
// chip takes that chip's position, so a chip right of the dragged page maps
// to the slot after it.
func (a *App) releaseSlot(t target, from int) (int, bool) {
	slot, ok := dropSlot(t)
	if ok && t.kind == zonePage && slot > from {
		slot++
	}
	return slot, ok
}

func (a *App) pointerUp(t target, x, y int) {
	if !a.pressed {
		return
	}
	press := a.press
	a.pressed = false
	a.press = noTarget
	a.pressPage = ""

	if a.nav.Dragging() {
		id := a.nav.DraggedID()
		from := a.nav.Index(id)
		if slot, ok := a.releaseSlot(t, from); ok && a.nav.Drop(slot) && a.nav.Index(id) != from {
			p, _ := a.nav.Page(id)
			a.status = fmt.Sprintf("Moved %s to position %d", p.Name, a.nav.Index(id)+1)
			a.log.Debug("drop", "page_id", id, "slot", slot, "index", a.nav.Index(id))
		}
		a.cancelGesture()
		return
	}
	if press.sameClickTarget(t) {
		a.click(t, x, y)
	}
}

// cancelGesture is the drag-end cleanup, run after every drop as well.
func (a *App) cancelGesture() {
	a.nav.DragEnd()
	a.dragOverElement = noTarget
	a.pressed = false
	a.press = noTarget
	a.pressPage = ""
}

// click performs the element's action and then lets the click bubble to
// the document, which closes any open menu. The menu trigger stops
// propagation so the menu it opens stays up.
func (a *App) click(t target, x, y int) {
	switch t.kind {
	case zoneMenu:
		if t.index >= 0 {
			a.dispatch(nav.MenuActions[t.index])
		}
	case zonePage:
		p := a.pageAt(t.index)
		if t.part == partTrigger {
			a.nav.OpenContextMenu(p.ID, x, y)
			a.menuCursor = 0
			return
		}
		a.nav.SetActive(p.ID)
	case zoneGap:
		a.added(a.nav.InsertPageAt(t.index))
	case zoneEnd:
		if t.part == partAdd {
			a.added(a.nav.AppendPage())
		}
	}
	a.hub.Click()
}
