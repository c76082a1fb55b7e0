package domain

import "time"

// JobCategory enumerates the fixed set of staff job categories.
type JobCategory string

const (
	JobCategoryPhysician       JobCategory = "Physician"
	JobCategoryNurse           JobCategory = "Nurse"
	JobCategoryAlliedHealth    JobCategory = "Allied Health"
	JobCategoryAdmin           JobCategory = "Admin"
	JobCategorySupportServices JobCategory = "Support Services"
	JobCategoryHousekeeping    JobCategory = "Housekeeping"
)

// JobCategories lists every selectable category in display order.
func JobCategories() []JobCategory {
	return []JobCategory{
		JobCategoryPhysician,
		JobCategoryNurse,
		JobCategoryAlliedHealth,
		JobCategoryAdmin,
		JobCategorySupportServices,
		JobCategoryHousekeeping,
	}
}

// IsValidJobCategory reports whether the value belongs to the fixed set.
func IsValidJobCategory(value string) bool {
	for _, c := range JobCategories() {
		if string(c) == value {
			return true
		}
	}
	return false
}

// Gender is a two-value enumeration; the empty string means unset.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// IsValidGender reports whether the value is one of the two selectable genders.
func IsValidGender(value string) bool {
	return value == string(GenderMale) || value == string(GenderFemale)
}

// Trainee is the domain model for a staff member progressing through the
// certification flow. One record per registered trainee; records are mutated
// in place by stage-completion events and never deleted.
type Trainee struct {
	ID           string        `json:"id"`
	StaffID      string        `json:"staff_id"`
	PasswordHash string        `json:"password_hash"`
	NationalID   string        `json:"national_id"`
	FullName     string        `json:"full_name"`
	DateOfBirth  string        `json:"date_of_birth"`
	Nationality  string        `json:"nationality"`
	Department   string        `json:"department"`
	JobCategory  JobCategory   `json:"job_category"`
	SubCategory  string        `json:"sub_category"`
	Gender       Gender        `json:"gender"`
	Email        string        `json:"email"`
	Mobile       string        `json:"mobile"`
	MaskType     string        `json:"mask_type"`
	Status       TraineeStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
