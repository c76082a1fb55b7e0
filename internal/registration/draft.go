// Package registration implements the multi-step wizard that produces the
// initial trainee record: a mutable draft plus per-step validators.
package registration

import "github.com/spec-kit/fit-training-service/internal/domain"

// Step bounds for the wizard.
const (
	FirstStep = 1
	LastStep  = 4
)

// Draft is the in-progress, not-yet-committed registration record held while
// the trainee walks the wizard. Going back a step never discards data already
// entered on other steps.
type Draft struct {
	ID   string
	Step int

	StaffID     string
	Password    string
	NationalID  string
	FullName    string
	DateOfBirth string
	Nationality string
	Department  string
	JobCategory string
	SubCategory string
	Gender      string
	Email       string
	Mobile      string
	MaskType    string
}

// NewDraft returns an empty draft positioned on the first step.
func NewDraft(id string) *Draft {
	return &Draft{ID: id, Step: FirstStep, Nationality: "Saudi"}
}

// Fields carries optional field values submitted with one wizard step. Nil
// pointers leave the draft value untouched.
type Fields struct {
	StaffID     *string
	Password    *string
	NationalID  *string
	FullName    *string
	DateOfBirth *string
	Nationality *string
	Department  *string
	JobCategory *string
	SubCategory *string
	Gender      *string
	Email       *string
	Mobile      *string
	MaskType    *string
}

// Apply merges the provided fields into the draft and re-evaluates derived
// defaults.
func (d *Draft) Apply(f Fields) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.StaffID, f.StaffID)
	set(&d.Password, f.Password)
	set(&d.NationalID, f.NationalID)
	set(&d.FullName, f.FullName)
	set(&d.DateOfBirth, f.DateOfBirth)
	set(&d.Nationality, f.Nationality)
	set(&d.Department, f.Department)
	set(&d.JobCategory, f.JobCategory)
	set(&d.SubCategory, f.SubCategory)
	set(&d.Gender, f.Gender)
	set(&d.Email, f.Email)
	set(&d.Mobile, f.Mobile)
	set(&d.MaskType, f.MaskType)

	d.applyDerivedDefaults()
}

// applyDerivedDefaults enforces rules that follow from other fields rather
// than from user input. Admin staff are exempt from fit testing, so their
// mask type is forced the moment the category is assigned.
func (d *Draft) applyDerivedDefaults() {
	if d.JobCategory == string(domain.JobCategoryAdmin) {
		d.MaskType = domain.MaskNotApplicable
	}
}

// Back moves the wizard one step backwards, keeping all entered data.
func (d *Draft) Back() {
	if d.Step > FirstStep {
		d.Step--
	}
}
