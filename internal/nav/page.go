package nav

import (
	"errors"
	"fmt"
)

// PageType selects the icon of a page. It carries no behaviour.
type PageType string

const (
	TypeInfo    PageType = "info"
	TypeDetails PageType = "details"
	TypeOther   PageType = "other"
	TypeEnding  PageType = "ending"
)

var icons = map[PageType]string{
	TypeInfo:    "ⓘ",
	TypeDetails: "≡",
	TypeOther:   "≡",
	TypeEnding:  "✓",
}

const defaultIcon = "≡"

// Icon returns the glyph drawn in front of a page of type t.
func Icon(t PageType) string {
	if icon, ok := icons[t]; ok {
		return icon
	}
	return defaultIcon
}

// Valid reports whether t is one of the four known page types.
func (t PageType) Valid() bool {
	_, ok := icons[t]
	return ok
}

// Page is one step of the form-builder flow.
type Page struct {
	ID       string
	Name     string
	Type     PageType
	Disabled bool
}

func (p Page) Icon() string { return Icon(p.Type) }

var (
	ErrNoPages       = errors.New("navigator needs at least one page")
	ErrDuplicatePage = errors.New("duplicate page id")
	ErrUnknownType   = errors.New("unknown page type")
)

// DefaultPages returns the seed flow shown on a fresh navigator.
func DefaultPages() []Page {
	return []Page{
		{Name: "Info", Type: TypeInfo},
		{Name: "Details", Type: TypeDetails},
		{Name: "Other", Type: TypeOther},
		{Name: "Ending", Type: TypeEnding},
	}
}

func validatePages(pages []Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	seen := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		if !p.Type.Valid() {
			return fmt.Errorf("page %q: %w %q", p.Name, ErrUnknownType, p.Type)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("page %q: %w %q", p.Name, ErrDuplicatePage, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
