package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// memorySnapshots keeps the serialized document in memory, round-tripping
// through JSON the way the real backends do.
type memorySnapshots struct {
	doc     []byte
	failing bool
	saves   int
}

func (m *memorySnapshots) Load(_ context.Context) ([]domain.Trainee, error) {
	if len(m.doc) == 0 {
		return nil, nil
	}
	var trainees []domain.Trainee
	if err := json.Unmarshal(m.doc, &trainees); err != nil {
		return nil, err
	}
	return trainees, nil
}

func (m *memorySnapshots) Save(_ context.Context, trainees []domain.Trainee) error {
	if m.failing {
		return errors.New("durable medium unavailable")
	}
	doc, err := json.Marshal(trainees)
	if err != nil {
		return err
	}
	m.doc = doc
	m.saves++
	return nil
}

func sample(staffID string) domain.Trainee {
	return domain.Trainee{
		ID:          "id-" + staffID,
		StaffID:     staffID,
		NationalID:  "1234567890",
		FullName:    "Test Trainee " + staffID,
		Nationality: "Saudi",
		Department:  "ER",
		JobCategory: domain.JobCategoryNurse,
		Gender:      domain.GenderFemale,
		Email:       "t@example.com",
		Mobile:      "0500000000",
		MaskType:    "3M 1870+",
		Status:      domain.StatusRegistered,
	}
}

func TestTraineeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("insert, find, update, list", func(t *testing.T) {
		snaps := &memorySnapshots{}
		store, err := NewTraineeStore(ctx, snaps)
		require.NoError(t, err)

		require.NoError(t, store.Insert(ctx, sample("3000")))
		assert.Equal(t, 1, snaps.saves)

		found, err := store.FindByStaffID(ctx, "3000")
		require.NoError(t, err)
		assert.Equal(t, "id-3000", found.ID)

		status := domain.StatusVideoWatched
		updated, err := store.Update(ctx, "id-3000", TraineeUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusVideoWatched, updated.Status)
		assert.Equal(t, 2, snaps.saves)

		assert.Len(t, store.List(ctx), 1)
	})

	t.Run("unknown lookups and updates are reported", func(t *testing.T) {
		store, err := NewTraineeStore(ctx, &memorySnapshots{})
		require.NoError(t, err)

		_, err = store.FindByStaffID(ctx, "9999")
		assert.ErrorIs(t, err, ErrTraineeNotFound)

		_, err = store.Update(ctx, "nope", TraineeUpdate{})
		assert.ErrorIs(t, err, ErrTraineeNotFound)
	})

	t.Run("duplicate staff id is rejected", func(t *testing.T) {
		snaps := &memorySnapshots{}
		store, err := NewTraineeStore(ctx, snaps)
		require.NoError(t, err)

		require.NoError(t, store.Insert(ctx, sample("3000")))
		second := sample("3000")
		second.ID = "other-id"
		assert.ErrorIs(t, store.Insert(ctx, second), ErrDuplicateStaffID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("snapshot round-trip survives a restart", func(t *testing.T) {
		snaps := &memorySnapshots{}
		store, err := NewTraineeStore(ctx, snaps)
		require.NoError(t, err)
		want := sample("3000")
		require.NoError(t, store.Insert(ctx, want))

		// A new store over the same medium stands in for a process restart.
		reloaded, err := NewTraineeStore(ctx, snaps)
		require.NoError(t, err)
		got, err := reloaded.FindByStaffID(ctx, "3000")
		require.NoError(t, err)

		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.NationalID, got.NationalID)
		assert.Equal(t, want.FullName, got.FullName)
		assert.Equal(t, want.JobCategory, got.JobCategory)
		assert.Equal(t, want.MaskType, got.MaskType)
		assert.Equal(t, want.Status, got.Status)
	})

	t.Run("failed snapshot write rolls the mutation back", func(t *testing.T) {
		snaps := &memorySnapshots{}
		store, err := NewTraineeStore(ctx, snaps)
		require.NoError(t, err)
		require.NoError(t, store.Insert(ctx, sample("3000")))

		snaps.failing = true
		assert.Error(t, store.Insert(ctx, sample("3001")))
		assert.Equal(t, 1, store.Len())

		status := domain.StatusVideoWatched
		_, err = store.Update(ctx, "id-3000", TraineeUpdate{Status: &status})
		assert.Error(t, err)

		got, err := store.FindByStaffID(ctx, "3000")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRegistered, got.Status)
	})
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	store, err := NewTraineeStore(ctx, &memorySnapshots{})
	require.NoError(t, err)

	require.NoError(t, SeedDemo(ctx, store))
	assert.Equal(t, 2, store.Len())

	// Idempotent on a non-empty collection.
	require.NoError(t, SeedDemo(ctx, store))
	assert.Equal(t, 2, store.Len())
}
