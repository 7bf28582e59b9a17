package nav

// State is the visual class of a page for one render.
type State string

const (
	StateDefault  State = "default"
	StateHovered  State = "hovered"
	StateSelected State = "selected"
	StateDisabled State = "disabled"
)

// ResolveState picks exactly one class for p from the current interaction
// state: disabled, then active or focused, then hovered unless p is being
// dragged, then default.
func (n *Navigator) ResolveState(p Page) State {
	switch {
	case p.Disabled:
		return StateDisabled
	case p.ID == n.active || p.ID == n.focused:
		return StateSelected
	case p.ID == n.hovered && p.ID != n.dragged:
		return StateHovered
	default:
		return StateDefault
	}
}

// PageView is everything a renderer needs to draw one page.
type PageView struct {
	Page
	Index      int
	State      State
	Active     bool
	Focused    bool
	Hovered    bool
	Dragged    bool
	DropTarget bool
	// Trigger is false for disabled pages, which have no menu button.
	Trigger bool
}

// View resolves every page in list order.
func (n *Navigator) View() []PageView {
	out := make([]PageView, len(n.pages))
	for i, p := range n.pages {
		out[i] = PageView{
			Page:       p,
			Index:      i,
			State:      n.ResolveState(p),
			Active:     p.ID == n.active,
			Focused:    p.ID == n.focused,
			Hovered:    p.ID == n.hovered,
			Dragged:    p.ID == n.dragged,
			DropTarget: n.dragOver == i && p.ID != n.dragged,
			Trigger:    !p.Disabled,
		}
	}
	return out
}
