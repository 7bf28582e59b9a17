// Package nav holds the page navigator: an ordered list of pages plus the
// transient interaction state (active, focused, hovered and dragged page,
// drop target, open context menu, hovered insert gap) that a pointer and
// keyboard driven front end mutates one event at a time.
//
// A Navigator is not safe for concurrent use. Front ends call it from a
// single event loop.
package nav

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

const none = -1

// DefaultNameOffset is subtracted from the page count when naming new pages,
// so the first page added to the four-page seed flow is "New Page 1".
const DefaultNameOffset = 3

// Options configures a Navigator.
type Options struct {
	// Pages seeds the list. Pages without an ID get one from NewID.
	Pages []Page
	// ActiveIndex is the initially active page. Out of range falls back to 0.
	ActiveIndex int
	NameOffset  int
	NewID       func() string
	Sink        ActionSink
	Now         func() time.Time
}

// ContextMenu is an open per-page menu anchored at a screen point.
type ContextMenu struct {
	PageID string
	X, Y   int
}

// Navigator owns the page list and its interaction state.
type Navigator struct {
	pages []Page

	active  string
	focused string
	hovered string
	dragged string

	dragOver      int
	dragDepth     int
	hoveredInsert int
	menu          *ContextMenu

	nameOffset int
	newID      func() string
	sink       ActionSink
	now        func() time.Time
}

// New builds a Navigator from opts.
func New(opts Options) (*Navigator, error) {
	n := &Navigator{
		dragOver:      none,
		hoveredInsert: none,
		nameOffset:    opts.NameOffset,
		newID:         opts.NewID,
		sink:          opts.Sink,
		now:           opts.Now,
	}
	if n.newID == nil {
		n.newID = uuid.NewString
	}
	if n.sink == nil {
		n.sink = discardSink{}
	}
	if n.now == nil {
		n.now = time.Now
	}
	n.pages = slices.Clone(opts.Pages)
	for i := range n.pages {
		if n.pages[i].ID == "" {
			n.pages[i].ID = n.newID()
		}
	}
	if err := validatePages(n.pages); err != nil {
		return nil, fmt.Errorf("new navigator: %w", err)
	}
	idx := opts.ActiveIndex
	if idx < 0 || idx >= len(n.pages) {
		idx = 0
	}
	n.active = n.pages[idx].ID
	return n, nil
}

// Pages returns a copy of the ordered list.
func (n *Navigator) Pages() []Page { return slices.Clone(n.pages) }

func (n *Navigator) Len() int { return len(n.pages) }

// Index returns the position of id, or -1.
func (n *Navigator) Index(id string) int {
	return slices.IndexFunc(n.pages, func(p Page) bool { return p.ID == id })
}

func (n *Navigator) Page(id string) (Page, bool) {
	i := n.Index(id)
	if i < 0 {
		return Page{}, false
	}
	return n.pages[i], true
}

func (n *Navigator) ActiveID() string  { return n.active }
func (n *Navigator) FocusedID() string { return n.focused }
func (n *Navigator) HoveredID() string { return n.hovered }
func (n *Navigator) DraggedID() string { return n.dragged }
func (n *Navigator) Dragging() bool    { return n.dragged != "" }

// DragOverIndex returns the current drop-target index, if any.
func (n *Navigator) DragOverIndex() (int, bool) {
	return n.dragOver, n.dragOver != none
}

// HoveredInsertIndex returns the gap whose insert affordance is visible.
func (n *Navigator) HoveredInsertIndex() (int, bool) {
	return n.hoveredInsert, n.hoveredInsert != none
}

// ContextMenu returns the open menu, if any.
func (n *Navigator) ContextMenu() (ContextMenu, bool) {
	if n.menu == nil {
		return ContextMenu{}, false
	}
	return *n.menu, true
}

// InsertPageAt creates an "other" page at index and makes it active.
func (n *Navigator) InsertPageAt(index int) Page {
	index = clamp(index, 0, len(n.pages))
	p := Page{
		ID:   n.newID(),
		Name: fmt.Sprintf("New Page %d", len(n.pages)-n.nameOffset),
		Type: TypeOther,
	}
	n.pages = slices.Insert(n.pages, index, p)
	n.active = p.ID
	return p
}

// AppendPage is InsertPageAt(Len()).
func (n *Navigator) AppendPage() Page { return n.InsertPageAt(len(n.pages)) }

// Reorder moves id to targetIndex, where targetIndex addresses the list with
// the moved page already removed.
func (n *Navigator) Reorder(id string, targetIndex int) bool {
	from := n.Index(id)
	if from < 0 {
		return false
	}
	p := n.pages[from]
	n.pages = slices.Delete(n.pages, from, from+1)
	n.pages = slices.Insert(n.pages, clamp(targetIndex, 0, len(n.pages)), p)
	return true
}

// SetActive selects id unless it is disabled or unknown.
func (n *Navigator) SetActive(id string) bool {
	p, ok := n.Page(id)
	if !ok || p.Disabled {
		return false
	}
	n.active = id
	return true
}

// SetAsFirst moves id to the front.
func (n *Navigator) SetAsFirst(id string) bool {
	if n.Index(id) <= 0 {
		return false
	}
	return n.Reorder(id, 0)
}

// OpenContextMenu replaces any open menu with one for id at (x, y).
func (n *Navigator) OpenContextMenu(id string, x, y int) {
	n.menu = &ContextMenu{PageID: id, X: x, Y: y}
}

func (n *Navigator) CloseContextMenu() { n.menu = nil }

// DispatchContextAction records the action and closes the menu. Only
// setAsFirst changes the list; the remaining actions are acknowledged
// without touching it.
func (n *Navigator) DispatchContextAction(action Action, id string) {
	n.sink.Record(ActionRecord{Action: action, PageID: id, At: n.now()})
	if action == ActionSetAsFirst {
		n.SetAsFirst(id)
	}
	n.CloseContextMenu()
}

// Focus marks id as keyboard focused. Disabled pages are not focusable.
func (n *Navigator) Focus(id string) bool {
	p, ok := n.Page(id)
	if !ok || p.Disabled {
		return false
	}
	n.focused = id
	return true
}

func (n *Navigator) Blur() { n.focused = "" }

func (n *Navigator) Hover(id string) {
	if n.Index(id) >= 0 {
		n.hovered = id
	}
}

func (n *Navigator) Unhover() { n.hovered = "" }

// HoverInsert shows the insert affordance of the gap before page index.
// Only gaps between two pages have one.
func (n *Navigator) HoverInsert(index int) {
	if index > 0 && index < len(n.pages) {
		n.hoveredInsert = index
	}
}

func (n *Navigator) UnhoverInsert() { n.hoveredInsert = none }

// Mount subscribes the navigator to document clicks so that any click
// closes an open menu. The returned func unsubscribes.
func (n *Navigator) Mount(hub *ClickHub) (unmount func()) {
	return hub.Subscribe(n.CloseContextMenu)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
