package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/pagenav/internal/database"
)

// ContextAction is one audited context-menu dispatch.
type ContextAction struct {
	ID        string
	SessionID string
	Action    string
	PageID    string
	CreatedAt time.Time
}

// ActionCount is the number of dispatches of one action.
type ActionCount struct {
	Action string
	Count  int
}

// ActionRepo handles context_actions.
type ActionRepo struct {
	db *sql.DB
}

func NewActionRepo(db *sql.DB) *ActionRepo { return &ActionRepo{db: db} }

const insertAction = `
	INSERT INTO context_actions(id, session_id, action, page_id, created_at)
	VALUES(?, ?, ?, ?, ?);
	`

func (r *ActionRepo) Insert(ctx context.Context, a ContextAction) error {
	_, err := r.db.ExecContext(ctx, insertAction, a.ID, a.SessionID, a.Action, a.PageID, a.CreatedAt.UTC())
	return err
}

// InsertBatch writes rows atomically: either all land or none do.
func (r *ActionRepo) InsertBatch(ctx context.Context, rows []ContextAction) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, insertAction)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, a := range rows {
			if _, err := stmt.ExecContext(ctx, a.ID, a.SessionID, a.Action, a.PageID, a.CreatedAt.UTC()); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListRecent returns up to limit rows, newest first. limit <= 0 means all.
func (r *ActionRepo) ListRecent(ctx context.Context, limit int) ([]ContextAction, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, action, page_id, created_at
	FROM context_actions
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ContextAction
	for rows.Next() {
		var a ContextAction
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Action, &a.PageID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountByAction tallies dispatches per action, most frequent first.
func (r *ActionRepo) CountByAction(ctx context.Context) ([]ActionCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT action, COUNT(*) FROM context_actions
	GROUP BY action
	ORDER BY COUNT(*) DESC, action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ActionCount
	for rows.Next() {
		var c ActionCount
		if err := rows.Scan(&c.Action, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
