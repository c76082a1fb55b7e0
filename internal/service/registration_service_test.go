package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/fit-training-service/internal/auth"
	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/registration"
	apperrors "github.com/spec-kit/fit-training-service/pkg/util"
)

func str(s string) *string { return &s }

func submitValidSteps(t *testing.T, svc *RegistrationService, draftID string) *domain.Trainee {
	t.Helper()
	ctx := context.Background()

	res, err := svc.SubmitStep(ctx, draftID, 1, registration.Fields{
		StaffID: str("3000"), Password: str("secret"), NationalID: str("1234567890"),
	})
	require.NoError(t, err)
	require.Empty(t, res.FieldErrors)

	res, err = svc.SubmitStep(ctx, draftID, 2, registration.Fields{
		FullName: str("Noura Al-Harbi"), JobCategory: str("Nurse"), Gender: str("Female"),
		Department: str("ICU"), SubCategory: str("Staff Nurse"), DateOfBirth: str("1990-01-15"),
	})
	require.NoError(t, err)
	require.Empty(t, res.FieldErrors)

	res, err = svc.SubmitStep(ctx, draftID, 3, registration.Fields{
		Email: str("noura@example.com"), Mobile: str("0501112222"),
	})
	require.NoError(t, err)
	require.Empty(t, res.FieldErrors)

	res, err = svc.SubmitStep(ctx, draftID, 4, registration.Fields{
		MaskType: str("3M 1870+"),
	})
	require.NoError(t, err)
	require.Empty(t, res.FieldErrors)
	require.NotNil(t, res.Trainee)
	return res.Trainee
}

func TestRegistrationWizard(t *testing.T) {
	ctx := context.Background()

	t.Run("complete wizard creates a REGISTERED record", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewRegistrationService(store, nil, 4, testLogger())

		draft := svc.StartDraft()
		trainee := submitValidSteps(t, svc, draft.ID)

		assert.NotEmpty(t, trainee.ID)
		assert.Equal(t, "3000", trainee.StaffID)
		assert.Equal(t, domain.StatusRegistered, trainee.Status)
		assert.NoError(t, auth.ComparePassword(trainee.PasswordHash, "secret"))

		stored, err := store.FindByStaffID(ctx, "3000")
		require.NoError(t, err)
		assert.Equal(t, trainee.ID, stored.ID)

		// The draft is gone once committed.
		_, err = svc.Draft(draft.ID)
		assert.Error(t, err)
	})

	t.Run("invalid step data does not advance and commits nothing", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewRegistrationService(store, nil, 4, testLogger())
		draft := svc.StartDraft()

		res, err := svc.SubmitStep(ctx, draft.ID, 1, registration.Fields{
			StaffID: str("3000"), Password: str("pw"), NationalID: str("123"),
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"national_id": "Must be 10 digits"}, res.FieldErrors)
		assert.Equal(t, 1, res.Draft.Step)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("steps are accepted only in sequence", func(t *testing.T) {
		svc := NewRegistrationService(newTestStore(t), nil, 4, testLogger())
		draft := svc.StartDraft()

		_, err := svc.SubmitStep(ctx, draft.ID, 3, registration.Fields{})
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
	})

	t.Run("admin category finalizes with Not Applicable mask", func(t *testing.T) {
		svc := NewRegistrationService(newTestStore(t), nil, 4, testLogger())
		draft := svc.StartDraft()

		res, err := svc.SubmitStep(ctx, draft.ID, 1, registration.Fields{
			StaffID: str("4000"), Password: str("pw"), NationalID: str("1234567890"),
		})
		require.NoError(t, err)
		require.Empty(t, res.FieldErrors)

		res, err = svc.SubmitStep(ctx, draft.ID, 2, registration.Fields{
			FullName: str("Admin Clerk"), JobCategory: str("Admin"), Gender: str("Male"),
		})
		require.NoError(t, err)
		require.Empty(t, res.FieldErrors)

		res, err = svc.SubmitStep(ctx, draft.ID, 3, registration.Fields{
			Email: str("clerk@example.com"), Mobile: str("0503334444"),
		})
		require.NoError(t, err)
		require.Empty(t, res.FieldErrors)

		// No mask selection; the derived default carries the step.
		res, err = svc.SubmitStep(ctx, draft.ID, 4, registration.Fields{})
		require.NoError(t, err)
		require.Empty(t, res.FieldErrors)
		assert.Equal(t, domain.MaskNotApplicable, res.Trainee.MaskType)
	})

	t.Run("duplicate staff id is a conflict", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewRegistrationService(store, nil, 4, testLogger())

		first := svc.StartDraft()
		submitValidSteps(t, svc, first.ID)

		second := svc.StartDraft()
		_, err := svc.SubmitStep(ctx, second.ID, 1, registration.Fields{
			StaffID: str("3000"), Password: str("pw"), NationalID: str("0987654321"),
		})
		require.NoError(t, err)
		_, err = svc.SubmitStep(ctx, second.ID, 2, registration.Fields{
			FullName: str("Other"), JobCategory: str("Nurse"), Gender: str("Male"),
		})
		require.NoError(t, err)
		_, err = svc.SubmitStep(ctx, second.ID, 3, registration.Fields{
			Email: str("o@example.com"), Mobile: str("0505556666"),
		})
		require.NoError(t, err)

		_, err = svc.SubmitStep(ctx, second.ID, 4, registration.Fields{MaskType: str("Gerson 1730")})
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("back keeps data, cancel discards the draft", func(t *testing.T) {
		svc := NewRegistrationService(newTestStore(t), nil, 4, testLogger())
		draft := svc.StartDraft()

		_, err := svc.SubmitStep(ctx, draft.ID, 1, registration.Fields{
			StaffID: str("5000"), Password: str("pw"), NationalID: str("1234567890"),
		})
		require.NoError(t, err)

		back, err := svc.Back(draft.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, back.Step)
		assert.Equal(t, "5000", back.StaffID)

		svc.Cancel(draft.ID)
		_, err = svc.Draft(draft.ID)
		assert.Error(t, err)
	})
}
