package dto

// FitTestRequest records a fit-test certification.
type FitTestRequest struct {
	MaskType string `json:"mask_type"`
}
