package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// SeedDemo inserts two sample trainees when the collection is empty, giving a
// fresh deployment something to look at. No-op otherwise.
func SeedDemo(ctx context.Context, store *TraineeStore) error {
	if store.Len() > 0 {
		return nil
	}

	demo := []domain.Trainee{
		{
			ID:          uuid.NewString(),
			StaffID:     "2000",
			NationalID:  "1029384756",
			FullName:    "Mohammed Al-Ghamdi",
			DateOfBirth: "1985-05-12",
			Nationality: "Saudi",
			Department:  "ER",
			JobCategory: domain.JobCategoryPhysician,
			SubCategory: "Consultant",
			Gender:      domain.GenderMale,
			Email:       "mohammed@kamc.gov.sa",
			Mobile:      "0501234567",
			MaskType:    "3M 1860 (Regular)",
			Status:      domain.StatusQuizPassed,
		},
		{
			ID:          uuid.NewString(),
			StaffID:     "2001",
			NationalID:  "1098765432",
			FullName:    "Sara Al-Otaibi",
			DateOfBirth: "1992-08-20",
			Nationality: "Saudi",
			Department:  "ICU",
			JobCategory: domain.JobCategoryNurse,
			SubCategory: "Staff Nurse",
			Gender:      domain.GenderFemale,
			Email:       "sara@kamc.gov.sa",
			Mobile:      "0559988776",
			MaskType:    "3M 1870+",
			Status:      domain.StatusVideoWatched,
		},
	}

	for _, t := range demo {
		if err := store.Insert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
