// Package actionlog delivers context-menu action records to their
// consumers: the structured log, the audit store and the status line.
package actionlog

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jask/pagenav/internal/database/repository"
	"github.com/jask/pagenav/internal/nav"
)

// LogSink writes one structured log line per record.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Record(r nav.ActionRecord) {
	s.Logger.Info("context action", "action", string(r.Action), "page_id", r.PageID)
}

// Store is the subset of repository.ActionRepo the audit sink needs.
type Store interface {
	Insert(ctx context.Context, a repository.ContextAction) error
}

// StoreSink persists records. A failed write is logged and dropped so the
// navigator never sees it.
type StoreSink struct {
	ctx       context.Context
	store     Store
	sessionID string
	logger    *slog.Logger
	timeout   time.Duration
}

// NewStoreSink tags every record with a fresh session id.
func NewStoreSink(ctx context.Context, store Store, logger *slog.Logger) *StoreSink {
	return &StoreSink{
		ctx:       ctx,
		store:     store,
		sessionID: uuid.NewString(),
		logger:    logger,
		timeout:   2 * time.Second,
	}
}

func (s *StoreSink) SessionID() string { return s.sessionID }

func (s *StoreSink) Record(r nav.ActionRecord) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	row := repository.ContextAction{
		ID:        uuid.NewString(),
		SessionID: s.sessionID,
		Action:    string(r.Action),
		PageID:    r.PageID,
		CreatedAt: r.At,
	}
	if err := s.store.Insert(ctx, row); err != nil {
		s.logger.Error("audit write failed", "action", row.Action, "page_id", row.PageID, "err", err)
	}
}

// Multi fans a record out to every sink in order.
type Multi []nav.ActionSink

func (m Multi) Record(r nav.ActionRecord) {
	for _, s := range m {
		s.Record(r)
	}
}

// Buffer keeps records in memory.
type Buffer struct {
	records []nav.ActionRecord
}

func (b *Buffer) Record(r nav.ActionRecord) { b.records = append(b.records, r) }

// Records returns a copy of everything recorded so far.
func (b *Buffer) Records() []nav.ActionRecord { return slices.Clone(b.records) }

// Last returns the newest record.
func (b *Buffer) Last() (nav.ActionRecord, bool) {
	if len(b.records) == 0 {
		return nav.ActionRecord{}, false
	}
	return b.records[len(b.records)-1], true
}
