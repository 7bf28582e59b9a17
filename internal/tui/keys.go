package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key scopes. The active scope is picked by whichever layer owns input.
const (
	scopeStrip = "strip"
	scopeMenu  = "menu"
	scopeJump  = "jump"
)

const (
	actQuit       = "quit"
	actFocusNext  = "focus_next"
	actFocusPrev  = "focus_prev"
	actActivate   = "activate"
	actOpenMenu   = "open_menu"
	actAppend     = "append"
	actInsert     = "insert"
	actJump       = "jump"
	actEscape     = "escape"
	actMenuUp     = "menu_up"
	actMenuDown   = "menu_down"
	actMenuSelect = "menu_select"
	actJumpSubmit = "jump_submit"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func DefaultKeyRegistry() *KeyRegistry {
	return NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: actQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: actQuit, Description: "quit", Scopes: []string{scopeStrip, scopeMenu}},
		{Keys: []string{"tab", "right", "l"}, Action: actFocusNext, Description: "next page", Scopes: []string{scopeStrip}},
		{Keys: []string{"shift+tab", "left", "h"}, Action: actFocusPrev, Description: "prev page", Scopes: []string{scopeStrip}},
		{Keys: []string{"enter", " "}, Action: actActivate, Description: "select", Scopes: []string{scopeStrip}},
		{Keys: []string{"m", "shift+f10"}, Action: actOpenMenu, Description: "menu", Scopes: []string{scopeStrip}},
		{Keys: []string{"+", "a"}, Action: actAppend, Description: "add page", Scopes: []string{scopeStrip}},
		{Keys: []string{"i"}, Action: actInsert, Description: "insert before", Scopes: []string{scopeStrip}},
		{Keys: []string{"/"}, Action: actJump, Description: "jump", Scopes: []string{scopeStrip}},
		{Keys: []string{"esc"}, Action: actEscape, Description: "back", Scopes: []string{"*"}},
		{Keys: []string{"up", "k"}, Action: actMenuUp, Description: "up", Scopes: []string{scopeMenu}},
		{Keys: []string{"down", "j"}, Action: actMenuDown, Description: "down", Scopes: []string{scopeMenu}},
		{Keys: []string{"enter"}, Action: actMenuSelect, Description: "choose", Scopes: []string{scopeMenu}},
		{Keys: []string{"enter"}, Action: actJumpSubmit, Description: "go", Scopes: []string{scopeJump}},
	})
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// ActionFor returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// HelpLine renders "key desc · key desc" for scope, one entry per action.
func (r *KeyRegistry) HelpLine(scope string) string {
	seen := map[string]bool{}
	parts := make([]string, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if seen[b.Action] || len(b.Keys) == 0 {
			continue
		}
		seen[b.Action] = true
		k := b.Keys[0]
		if k == " " {
			k = "space"
		}
		parts = append(parts, k+" "+b.Description)
	}
	return strings.Join(parts, " · ")
}

func normalizeKey(k string) string {
	if k == " " {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
