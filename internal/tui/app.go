// Package tui is the terminal front end of the page navigator. It turns
// bubbletea mouse and key messages into navigator events and draws the
// strip, the context menu and the jump prompt.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pagenav/internal/actionlog"
	"github.com/jask/pagenav/internal/nav"
)

// App is one mounted navigator. Building a new App is a remount: all
// interaction state starts over.
type App struct {
	nav     *nav.Navigator
	hub     *nav.ClickHub
	unmount func()
	actions *actionlog.Buffer
	keys    *KeyRegistry
	log     *slog.Logger

	width, height int
	status        string
	menuCursor    int

	jumping bool
	jump    textinput.Model

	// pointer gesture
	pressed         bool
	press           target
	pressX, pressY  int
	pressPage       string
	dragOverElement target
}

// New mounts a navigator built from opts. opts.Sink, if set, receives every
// action record alongside the status line.
func New(opts nav.Options, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		hub:             nav.NewClickHub(),
		actions:         &actionlog.Buffer{},
		keys:            DefaultKeyRegistry(),
		log:             logger,
		jump:            newJumpInput(),
		press:           noTarget,
		dragOverElement: noTarget,
	}
	sinks := actionlog.Multi{a.actions}
	if opts.Sink != nil {
		sinks = actionlog.Multi{opts.Sink, a.actions}
	}
	opts.Sink = sinks

	n, err := nav.New(opts)
	if err != nil {
		return nil, err
	}
	a.nav = n
	a.unmount = n.Mount(a.hub)
	a.log.Debug("navigator mounted", "pages", n.Len(), "active", n.ActiveID())
	return a, nil
}

// Navigator exposes the mounted navigator.
func (a *App) Navigator() *nav.Navigator { return a.nav }

// Records returns every action dispatched while mounted.
func (a *App) Records() []nav.ActionRecord { return a.actions.Records() }

// Close unmounts the navigator, releasing its document click listener.
func (a *App) Close() {
	if a.unmount != nil {
		a.unmount()
		a.unmount = nil
		a.log.Debug("navigator unmounted")
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		a.handleMouse(m)
	}
	return a, nil
}

func (a *App) scope() string {
	switch {
	case a.jumping:
		return scopeJump
	case a.menuOpen():
		return scopeMenu
	default:
		return scopeStrip
	}
}

func (a *App) menuOpen() bool {
	_, ok := a.nav.ContextMenu()
	return ok
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.Close()
	return a, tea.Quit
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := a.keys.ActionFor(msg, a.scope())
	if a.jumping {
		switch action {
		case actQuit:
			return a.quit()
		case actEscape:
			a.closeJump()
		case actJumpSubmit:
			a.submitJump()
		default:
			var cmd tea.Cmd
			a.jump, cmd = a.jump.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	switch action {
	case actQuit:
		return a.quit()
	case actEscape:
		switch {
		case a.nav.Dragging():
			a.cancelGesture()
		case a.menuOpen():
			a.nav.CloseContextMenu()
		default:
			a.nav.Blur()
		}
	case actMenuUp:
		a.menuCursor = (a.menuCursor - 1 + len(nav.MenuActions)) % len(nav.MenuActions)
	case actMenuDown:
		a.menuCursor = (a.menuCursor + 1) % len(nav.MenuActions)
	case actMenuSelect:
		a.dispatch(nav.MenuActions[a.menuCursor])
	case actFocusNext:
		a.moveFocus(1)
	case actFocusPrev:
		a.moveFocus(-1)
	case actActivate:
		if id := a.nav.FocusedID(); id != "" {
			a.nav.SetActive(id)
		}
	case actOpenMenu:
		a.openMenuFromKeyboard()
	case actAppend:
		a.added(a.nav.AppendPage())
	case actInsert:
		a.added(a.nav.InsertPageAt(max(a.nav.Index(a.cursorPageID()), 0)))
	case actJump:
		a.jumping = true
		a.jump.SetValue("")
		return a, a.jump.Focus()
	}
	return a, nil
}

// cursorPageID is the focused page, falling back to the active one.
func (a *App) cursorPageID() string {
	if id := a.nav.FocusedID(); id != "" {
		return id
	}
	return a.nav.ActiveID()
}

// moveFocus walks focus across non-disabled pages, wrapping at both ends.
// With nothing focused the first step lands on the active page.
func (a *App) moveFocus(delta int) {
	pages := a.nav.Pages()
	n := len(pages)
	start, first := a.nav.Index(a.nav.FocusedID()), 1
	if start < 0 {
		start, first = a.nav.Index(a.nav.ActiveID()), 0
	}
	for k := first; k < first+n; k++ {
		i := ((start+delta*k)%n + n) % n
		if a.nav.Focus(pages[i].ID) {
			return
		}
	}
}

func (a *App) openMenuFromKeyboard() {
	id := a.cursorPageID()
	p, ok := a.nav.Page(id)
	if !ok || p.Disabled {
		return
	}
	l := a.layout()
	i := a.nav.Index(id)
	a.nav.OpenContextMenu(id, l.chipX[i]+l.chipW[i]-3, stripTop+stripHeight)
	a.menuCursor = 0
}

func (a *App) dispatch(action nav.Action) {
	menu, ok := a.nav.ContextMenu()
	if !ok {
		return
	}
	a.nav.DispatchContextAction(action, menu.PageID)
	if rec, ok := a.actions.Last(); ok {
		a.status = fmt.Sprintf("%s page: %s", rec.Action, rec.PageID)
	}
}

func (a *App) added(p nav.Page) {
	a.status = "Added " + p.Name
	a.log.Info("page added", "page_id", p.ID, "index", a.nav.Index(p.ID))
}

func (a *App) closeJump() {
	a.jumping = false
	a.jump.Blur()
}

func (a *App) submitJump() {
	defer a.closeJump()
	p, ok := closestPage(a.nav.Pages(), a.jump.Value())
	if !ok {
		return
	}
	if !a.nav.SetActive(p.ID) {
		a.status = p.Name + " is disabled"
		return
	}
	a.nav.Focus(p.ID)
	a.status = "Jumped to " + p.Name
}

func (a *App) layout() stripLayout {
	gap := -1
	if i, ok := a.nav.HoveredInsertIndex(); ok {
		gap = i
	}
	return layoutStrip(a.nav.View(), gap)
}

func (a *App) menuBox() (menuBox, bool) {
	m, ok := a.nav.ContextMenu()
	if !ok {
		return menuBox{}, false
	}
	return placeMenu(renderMenu(a.menuCursor), m.X, m.Y, a.width, a.height), true
}

func (a *App) statusLine() string {
	if id := a.nav.DraggedID(); id != "" {
		p, _ := a.nav.Page(id)
		if slot, ok := a.nav.DragOverIndex(); ok {
			return fmt.Sprintf("Moving %s to slot %d", p.Name, slot+1)
		}
		return "Moving " + p.Name
	}
	if a.status != "" {
		return a.status
	}
	active, _ := a.nav.Page(a.nav.ActiveID())
	return fmt.Sprintf("%d pages · %s", a.nav.Len(), active.Name)
}

func (a *App) View() string {
	lines := make([]string, helpRow+1)
	lines[titleRow] = " " + titleStyle.Render("Form Builder Navigation")
	for i, s := range splitLines(a.layout().rendered) {
		if stripTop+i < statusRow {
			lines[stripTop+i] = s
		}
	}
	lines[statusRow] = " " + statusStyle.Render(a.statusLine())
	if a.jumping {
		lines[statusRow] = " " + a.jump.View()
	}
	lines[helpRow] = " " + helpStyle.Render(a.keys.HelpLine(a.scope()))
	view := strings.Join(lines, "\n")

	if box, ok := a.menuBox(); ok {
		view = padLines(view, box.y+box.h)
		view = overlayAt(view, box.rendered, box.x, box.y, a.width, a.height)
	}
	return view
}
