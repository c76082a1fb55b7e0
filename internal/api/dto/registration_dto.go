package dto

import "github.com/spec-kit/fit-training-service/internal/registration"

// StepRequest carries the fields submitted with one wizard step. Absent
// fields leave the draft untouched.
type StepRequest struct {
	StaffID     *string `json:"staff_id,omitempty"`
	Password    *string `json:"password,omitempty"`
	NationalID  *string `json:"national_id,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	Department  *string `json:"department,omitempty"`
	JobCategory *string `json:"job_category,omitempty"`
	SubCategory *string `json:"sub_category,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Email       *string `json:"email,omitempty"`
	Mobile      *string `json:"mobile,omitempty"`
	MaskType    *string `json:"mask_type,omitempty"`
}

// Fields converts the request into registration fields.
func (r StepRequest) Fields() registration.Fields {
	return registration.Fields{
		StaffID:     r.StaffID,
		Password:    r.Password,
		NationalID:  r.NationalID,
		FullName:    r.FullName,
		DateOfBirth: r.DateOfBirth,
		Nationality: r.Nationality,
		Department:  r.Department,
		JobCategory: r.JobCategory,
		SubCategory: r.SubCategory,
		Gender:      r.Gender,
		Email:       r.Email,
		Mobile:      r.Mobile,
		MaskType:    r.MaskType,
	}
}

// DraftResponse reports wizard progress.
type DraftResponse struct {
	DraftID string `json:"draft_id"`
	Step    int    `json:"step"`
}
