package domain

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/birthdaybot/internal/birthday/storage"
)

var (
	// ErrStoreNotConfigured indicates the service is missing persistence wiring.
	ErrStoreNotConfigured = errors.New("birthday store is not configured")
	// ErrNameRequired indicates a blank birthday name.
	ErrNameRequired = errors.New("birthday name is required")
	// ErrOutOfRange indicates a rank that does not address a current record.
	ErrOutOfRange = errors.New("rank is out of range")
)

// Service owns rank semantics over the record store. Ranks are the
// 0-based positions in the current insertion-ordered listing; they are
// derived fresh on every call and are distinct from stored ids.
type Service struct {
	store storage.Store
	clock func() time.Time

	// mu serializes mutations so two rank deletes cannot both resolve
	// against a stale listing.
	mu sync.Mutex
}

// NewService constructs birthday list use-cases.
func NewService(store storage.Store, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, clock: clock}
}

// Add validates and appends one birthday record.
func (s *Service) Add(ctx context.Context, name string, date Date) (storage.BirthdayRecord, error) {
	if s == nil || s.store == nil {
		return storage.BirthdayRecord{}, ErrStoreNotConfigured
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.BirthdayRecord{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.store.InsertRecord(ctx, name, date.String())
	if err != nil {
		return storage.BirthdayRecord{}, err
	}
	return storage.BirthdayRecord{ID: id, Name: name, Date: date.String()}, nil
}

// List returns all records in insertion order.
func (s *Service) List(ctx context.Context) ([]storage.BirthdayRecord, error) {
	if s == nil || s.store == nil {
		return nil, ErrStoreNotConfigured
	}
	return s.store.ListRecords(ctx)
}

// RemoveByRank deletes the record at the given 0-based rank in the
// current listing. The listing is recomputed at call time, so a rank
// reported by an earlier List may now address a different record.
func (s *Service) RemoveByRank(ctx context.Context, rank int) error {
	if s == nil || s.store == nil {
		return ErrStoreNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		return err
	}
	if rank < 0 || rank >= len(records) {
		return ErrOutOfRange
	}
	return s.store.DeleteRecord(ctx, records[rank].ID)
}

// Today returns the current calendar day in the given location,
// truncated to midnight UTC for occurrence comparisons.
func (s *Service) Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	now := s.now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) now() time.Time {
	if s == nil || s.clock == nil {
		return time.Now()
	}
	return s.clock()
}
