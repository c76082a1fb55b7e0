package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

var (
	// ErrTraineeNotFound is returned for lookups and updates against an
	// unknown identifier.
	ErrTraineeNotFound = errors.New("trainee not found")
	// ErrDuplicateStaffID is returned when an insert would violate staff id
	// uniqueness.
	ErrDuplicateStaffID = errors.New("staff id already registered")
)

// Snapshotter persists the complete trainee collection as a single document
// under a fixed collection key. There is no incremental log: every mutation
// re-serializes the whole collection.
type Snapshotter interface {
	Load(ctx context.Context) ([]domain.Trainee, error)
	Save(ctx context.Context, trainees []domain.Trainee) error
}

// TraineeStore is the single source of truth for trainee records: an
// in-memory collection constructed from an initial snapshot, flushed through
// the Snapshotter after every successful mutation. A failed flush rolls the
// in-memory mutation back so committed state is never silently diverged from.
type TraineeStore struct {
	mu       sync.RWMutex
	trainees []domain.Trainee
	snaps    Snapshotter
	now      func() time.Time
}

// NewTraineeStore loads the snapshot and builds the store.
func NewTraineeStore(ctx context.Context, snaps Snapshotter) (*TraineeStore, error) {
	trainees, err := snaps.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &TraineeStore{trainees: trainees, snaps: snaps, now: time.Now}, nil
}

// Insert appends a new record. Staff id uniqueness is enforced here: a
// duplicate is rejected and nothing is written.
func (s *TraineeStore) Insert(ctx context.Context, trainee domain.Trainee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.trainees {
		if t.StaffID == trainee.StaffID {
			return ErrDuplicateStaffID
		}
	}

	now := s.now()
	if trainee.CreatedAt.IsZero() {
		trainee.CreatedAt = now
	}
	trainee.UpdatedAt = now

	s.trainees = append(s.trainees, trainee)
	if err := s.snaps.Save(ctx, s.trainees); err != nil {
		s.trainees = s.trainees[:len(s.trainees)-1]
		return err
	}
	return nil
}

// FindByStaffID returns the record with the given staff identifier.
func (s *TraineeStore) FindByStaffID(ctx context.Context, staffID string) (*domain.Trainee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.trainees {
		if s.trainees[i].StaffID == staffID {
			t := s.trainees[i]
			return &t, nil
		}
	}
	return nil, ErrTraineeNotFound
}

// FindByID returns the record with the given internal identifier.
func (s *TraineeStore) FindByID(ctx context.Context, id string) (*domain.Trainee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.trainees {
		if s.trainees[i].ID == id {
			t := s.trainees[i]
			return &t, nil
		}
	}
	return nil, ErrTraineeNotFound
}

// TraineeUpdate carries the fields an update may merge into a record. Nil
// pointers leave the stored value untouched.
type TraineeUpdate struct {
	Status   *domain.TraineeStatus
	MaskType *string
}

// Update merges the given fields into the record identified by id. An unknown
// id is reported to the caller; a failed snapshot write restores the previous
// record contents.
func (s *TraineeStore) Update(ctx context.Context, id string, upd TraineeUpdate) (*domain.Trainee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trainees {
		if s.trainees[i].ID != id {
			continue
		}

		prev := s.trainees[i]
		if upd.Status != nil {
			s.trainees[i].Status = *upd.Status
		}
		if upd.MaskType != nil {
			s.trainees[i].MaskType = *upd.MaskType
		}
		s.trainees[i].UpdatedAt = s.now()

		if err := s.snaps.Save(ctx, s.trainees); err != nil {
			s.trainees[i] = prev
			return nil, err
		}
		t := s.trainees[i]
		return &t, nil
	}
	return nil, ErrTraineeNotFound
}

// List returns a copy of every record. No pagination; admin search and export
// operate over the full collection.
func (s *TraineeStore) List(ctx context.Context) []domain.Trainee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Trainee, len(s.trainees))
	copy(out, s.trainees)
	return out
}

// Len returns the number of stored records.
func (s *TraineeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trainees)
}
