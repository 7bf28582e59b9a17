package nav

import "time"

// Action is a context-menu entry.
type Action string

const (
	ActionSetAsFirst Action = "setAsFirst"
	ActionRename     Action = "rename"
	ActionCopy       Action = "copy"
	ActionDuplicate  Action = "duplicate"
	ActionDelete     Action = "delete"
)

// MenuActions lists the context-menu entries in display order.
var MenuActions = []Action{ActionSetAsFirst, ActionRename, ActionCopy, ActionDuplicate, ActionDelete}

// Label is the text shown for a in the context menu.
func (a Action) Label() string {
	switch a {
	case ActionSetAsFirst:
		return "Set as first page"
	case ActionRename:
		return "Rename"
	case ActionCopy:
		return "Copy"
	case ActionDuplicate:
		return "Duplicate"
	case ActionDelete:
		return "Delete"
	default:
		return string(a)
	}
}

// Destructive reports whether a is drawn as a dangerous entry.
func (a Action) Destructive() bool { return a == ActionDelete }

// ActionRecord is emitted once per context-menu dispatch.
type ActionRecord struct {
	Action Action
	PageID string
	At     time.Time
}

// ActionSink consumes action records. Record must not block the caller for
// long: it runs inside the event handler that dispatched the action.
type ActionSink interface {
	Record(ActionRecord)
}

// SinkFunc adapts a function to ActionSink.
type SinkFunc func(ActionRecord)

func (f SinkFunc) Record(r ActionRecord) { f(r) }

type discardSink struct{}

func (discardSink) Record(ActionRecord) {}
