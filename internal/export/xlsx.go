// Package export writes the admin trainee report as an XLSX workbook.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

const sheetName = "Trainees"

var header = []string{"Staff ID", "Full Name", "Job Category", "Department", "Gender", "Mask Type", "Status"}

// WriteReport writes one sheet with a header row plus one row per trainee to
// path, replacing any previous artifact. The projection is read-only; the
// trainee collection is untouched.
func WriteReport(trainees []domain.Trainee, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, header); err != nil {
		return err
	}
	for i, t := range trainees {
		row := []string{
			t.StaffID,
			t.FullName,
			string(t.JobCategory),
			t.Department,
			string(t.Gender),
			t.MaskType,
			string(t.Status),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
