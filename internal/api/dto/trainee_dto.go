package dto

import "github.com/spec-kit/fit-training-service/internal/domain"

// TraineeResponse is the outward projection of a trainee record. The password
// hash never leaves the service.
type TraineeResponse struct {
	ID          string               `json:"id"`
	StaffID     string               `json:"staff_id"`
	NationalID  string               `json:"national_id"`
	FullName    string               `json:"full_name"`
	DateOfBirth string               `json:"date_of_birth"`
	Nationality string               `json:"nationality"`
	Department  string               `json:"department"`
	JobCategory domain.JobCategory   `json:"job_category"`
	SubCategory string               `json:"sub_category"`
	Gender      domain.Gender        `json:"gender"`
	Email       string               `json:"email"`
	Mobile      string               `json:"mobile"`
	MaskType    string               `json:"mask_type"`
	Status      domain.TraineeStatus `json:"status"`
}

// NewTraineeResponse projects a domain record.
func NewTraineeResponse(t *domain.Trainee) TraineeResponse {
	return TraineeResponse{
		ID:          t.ID,
		StaffID:     t.StaffID,
		NationalID:  t.NationalID,
		FullName:    t.FullName,
		DateOfBirth: t.DateOfBirth,
		Nationality: t.Nationality,
		Department:  t.Department,
		JobCategory: t.JobCategory,
		SubCategory: t.SubCategory,
		Gender:      t.Gender,
		Email:       t.Email,
		Mobile:      t.Mobile,
		MaskType:    t.MaskType,
		Status:      t.Status,
	}
}
