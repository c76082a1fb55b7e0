package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/fit-training-service/internal/config"
	"github.com/spec-kit/fit-training-service/internal/domain"
	"github.com/spec-kit/fit-training-service/internal/registration"
)

// Walks one trainee through the whole certification flow across services,
// sharing a single store the way the wired application does.
func TestCertificationFlow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	registrationSvc := NewRegistrationService(store, nil, 4, testLogger())
	trainingSvc := NewTrainingService(store, nil, testLogger())
	adminSvc := NewAdminService(store, nil, config.ExportConfig{Dir: t.TempDir(), Filename: "trainee_report.xlsx"}, testLogger())

	// Register staff id 3000 through all four steps.
	draft := registrationSvc.StartDraft()
	steps := []struct {
		step   int
		fields registration.Fields
	}{
		{1, registration.Fields{StaffID: str("3000"), Password: str("secret"), NationalID: str("1234567890")}},
		{2, registration.Fields{FullName: str("Noura Al-Harbi"), JobCategory: str("Nurse"), Gender: str("Female"), Department: str("ICU")}},
		{3, registration.Fields{Email: str("noura@example.com"), Mobile: str("0501112222")}},
		{4, registration.Fields{MaskType: str("3M 1860 (Small)")}},
	}
	var trainee *domain.Trainee
	for _, s := range steps {
		res, err := registrationSvc.SubmitStep(ctx, draft.ID, s.step, s.fields)
		require.NoError(t, err)
		require.Empty(t, res.FieldErrors)
		trainee = res.Trainee
	}
	require.NotNil(t, trainee)
	assert.Equal(t, domain.StatusRegistered, trainee.Status)

	// Watch the video to the end.
	require.NoError(t, trainingSvc.StartVideo(trainee.ID, 10))
	for _, pos := range []float64{2, 4, 6, 8, 10} {
		_, err := trainingSvc.ReportProgress(trainee.ID, pos)
		require.NoError(t, err)
	}
	trainee, err := trainingSvc.CompleteVideo(ctx, trainee)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVideoWatched, trainee.Status)

	// A failed attempt leaves the status untouched; retry clears it.
	result, trainee, err := trainingSvc.SubmitQuiz(ctx, trainee, map[int]int{1: 0, 2: 2, 3: 2})
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, domain.StatusVideoWatched, trainee.Status)
	trainingSvc.RetryQuiz(trainee.ID)
	assert.Empty(t, trainingSvc.Answers(trainee.ID))

	// The correct answers score exactly 100 and pass.
	result, trainee, err = trainingSvc.SubmitQuiz(ctx, trainee, map[int]int{1: 1, 2: 2, 3: 2})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, domain.StatusQuizPassed, trainee.Status)

	// The admin certifies with an override mask.
	trainee, err = adminSvc.RecordFitTest(ctx, trainee.ID, "3M 1870+")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFitTested, trainee.Status)
	assert.Equal(t, "3M 1870+", trainee.MaskType)

	stored, err := store.FindByStaffID(ctx, "3000")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFitTested, stored.Status)
	assert.Equal(t, "3M 1870+", stored.MaskType)
}
