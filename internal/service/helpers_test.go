package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/repository"
)

// memSnaps is an in-memory stand-in for the durable snapshot medium.
type memSnaps struct {
	doc []byte
}

func (m *memSnaps) Load(_ context.Context) ([]domain.Trainee, error) {
	if len(m.doc) == 0 {
		return nil, nil
	}
	var trainees []domain.Trainee
	if err := json.Unmarshal(m.doc, &trainees); err != nil {
		return nil, err
	}
	return trainees, nil
}

func (m *memSnaps) Save(_ context.Context, trainees []domain.Trainee) error {
	doc, err := json.Marshal(trainees)
	if err != nil {
		return err
	}
	m.doc = doc
	return nil
}

func newTestStore(t *testing.T) *repository.TraineeStore {
	t.Helper()
	store, err := repository.NewTraineeStore(context.Background(), &memSnaps{})
	require.NoError(t, err)
	return store
}

func newTestTrainee(staffID string, status domain.TraineeStatus) domain.Trainee {
	return domain.Trainee{
		ID:          "id-" + staffID,
		StaffID:     staffID,
		NationalID:  "1234567890",
		FullName:    "Trainee " + staffID,
		Nationality: "Saudi",
		Department:  "ER",
		JobCategory: domain.JobCategoryNurse,
		Gender:      domain.GenderFemale,
		Email:       "trainee@example.com",
		Mobile:      "0500000000",
		MaskType:    "3M 1870+",
		Status:      status,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
