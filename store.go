package wxhist

import "context"

// RecordStore persists day records with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecordStore interface {
	Save(ctx context.Context, rec *DayRecord) error
	Commit() error
	Abort() error
}
