package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arenaforge/duel-server/internal/domain"
)

// AppendLog writes one audit-log entry. Best-effort by contract (§4.6): the
// audit log never aborts the operation that triggered it, so callers log
// and discard errors rather than propagate them.
func (s *Store) AppendLog(ctx context.Context, entry *domain.LogEntry) error {
	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO logs (id, action, actor, details, timestamp)
		VALUES (:id, :action, :actor, :details, :timestamp)`, entry)
	return err
}

// ListLogs returns a page of audit-log entries, most recent first, the
// admin-gated read path of §4.6.
func (s *Store) ListLogs(ctx context.Context, actor string, limit, offset int) ([]domain.LogEntry, error) {
	var entries []domain.LogEntry
	var err error
	if actor == "" {
		err = s.db.SelectContext(ctx, &entries, `
			SELECT id, action, actor, details, timestamp FROM logs
			ORDER BY timestamp DESC LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		err = s.db.SelectContext(ctx, &entries, `
			SELECT id, action, actor, details, timestamp FROM logs
			WHERE actor = $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3`, actor, limit, offset)
	}
	return entries, err
}
