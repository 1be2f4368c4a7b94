package mock

import (
	"context"

	"github.com/fwojciec/wxhist"
)

var _ wxhist.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of wxhist.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, rec *wxhist.DayRecord) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, rec *wxhist.DayRecord) error {
	return s.SaveFn(ctx, rec)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}
