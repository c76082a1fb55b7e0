package registration

import (
	"strings"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// ValidateStep checks only the fields belonging to the given step and returns
// a field→message map. An empty map means the step may advance. Fields owned
// by other steps are never inspected.
func ValidateStep(step int, d *Draft) map[string]string {
	errs := map[string]string{}

	switch step {
	case 1:
		if d.StaffID == "" {
			errs["staff_id"] = "ID is required"
		}
		if d.Password == "" {
			errs["password"] = "Password required"
		}
		if len(d.NationalID) != 10 {
			errs["national_id"] = "Must be 10 digits"
		}
	case 2:
		if d.FullName == "" {
			errs["full_name"] = "Name is required"
		}
		if !domain.IsValidJobCategory(d.JobCategory) {
			errs["job_category"] = "Category required"
		}
		if !domain.IsValidGender(d.Gender) {
			errs["gender"] = "Gender required"
		}
	case 3:
		if !strings.Contains(d.Email, "@") {
			errs["email"] = "Invalid email"
		}
		if d.Mobile == "" {
			errs["mobile"] = "Mobile required"
		}
	case 4:
		// Admin drafts carry the derived "Not Applicable" mask and
		// auto-validate; everyone else must pick from the catalog.
		if d.MaskType == "" && d.JobCategory != string(domain.JobCategoryAdmin) {
			errs["mask_type"] = "Select a mask"
		}
	}

	return errs
}
