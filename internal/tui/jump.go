package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/pagenav/internal/nav"
)

func newJumpInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "jump to page: "
	ti.Placeholder = "name"
	ti.CharLimit = 64
	return ti
}

// closestPage ranks pages by edit distance to query, case-insensitively.
// A page whose name starts with the query always wins over one that merely
// scores well. Ties keep list order.
func closestPage(pages []nav.Page, query string) (nav.Page, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(pages) == 0 {
		return nav.Page{}, false
	}
	best, bestScore := -1, 0
	for i, p := range pages {
		name := strings.ToLower(p.Name)
		score := levenshtein.ComputeDistance(q, name)
		if strings.HasPrefix(name, q) {
			score -= len(name)
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return pages[best], true
}
