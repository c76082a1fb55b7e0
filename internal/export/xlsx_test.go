package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trainee_report.xlsx")

	trainees := []domain.Trainee{
		{
			StaffID:     "3000",
			FullName:    "Test Trainee",
			JobCategory: domain.JobCategoryNurse,
			Department:  "ICU",
			Gender:      domain.GenderFemale,
			MaskType:    "3M 1870+",
			Status:      domain.StatusFitTested,
		},
	}
	require.NoError(t, WriteReport(trainees, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Trainees")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Staff ID", "Full Name", "Job Category", "Department", "Gender", "Mask Type", "Status"}, rows[0])
	assert.Equal(t, []string{"3000", "Test Trainee", "Nurse", "ICU", "Female", "3M 1870+", "FIT_TESTED"}, rows[1])
}
