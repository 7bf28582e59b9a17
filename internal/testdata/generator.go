// Package testdata generates page sets and audit rows for tests.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/pagenav/internal/database/repository"
	"github.com/jask/pagenav/internal/nav"
)

var pageTypes = []nav.PageType{nav.TypeInfo, nav.TypeDetails, nav.TypeOther, nav.TypeEnding}

// Pages returns n pages with unique ids. Roughly one in five is disabled.
func Pages(r *rand.Rand, n int) []nav.Page {
	out := make([]nav.Page, 0, n)
	for i := range n {
		out = append(out, nav.Page{
			ID:       fmt.Sprintf("p%d", i),
			Name:     fmt.Sprintf("Page %d", i+1),
			Type:     pageTypes[r.Intn(len(pageTypes))],
			Disabled: r.Intn(5) == 0,
		})
	}
	return out
}

// SeedActions inserts n audit rows for one session, a minute apart and
// ending at end.
func SeedActions(ctx context.Context, repo *repository.ActionRepo, r *rand.Rand, n int, end time.Time) (string, error) {
	session := uuid.NewString()
	rows := make([]repository.ContextAction, 0, n)
	for i := range n {
		rows = append(rows, repository.ContextAction{
			ID:        uuid.NewString(),
			SessionID: session,
			Action:    string(nav.MenuActions[r.Intn(len(nav.MenuActions))]),
			PageID:    fmt.Sprintf("p%d", r.Intn(8)),
			CreatedAt: end.Add(-time.Duration(n-1-i) * time.Minute).UTC(),
		})
	}
	if err := repo.InsertBatch(ctx, rows); err != nil {
		return "", fmt.Errorf("seed actions: %w", err)
	}
	return session, nil
}
