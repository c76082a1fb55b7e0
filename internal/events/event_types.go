package events

import (
	"time"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTraineeRegistered EventType = "trainee_registered"
	EventStatusAdvanced    EventType = "status_advanced"
	EventFitTestRecorded   EventType = "fit_test_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TraineeID string      `json:"trainee_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TraineeRegisteredPayload payload.
type TraineeRegisteredPayload struct {
	StaffID     string             `json:"staff_id"`
	FullName    string             `json:"full_name"`
	JobCategory domain.JobCategory `json:"job_category"`
	Department  string             `json:"department"`
}

// StatusAdvancedPayload payload.
type StatusAdvancedPayload struct {
	OldStatus domain.TraineeStatus    `json:"old_status"`
	NewStatus domain.TraineeStatus    `json:"new_status"`
	Trigger   domain.ProgressionEvent `json:"trigger"`
}

// FitTestRecordedPayload payload.
type FitTestRecordedPayload struct {
	StaffID       string `json:"staff_id"`
	CertifiedMask string `json:"certified_mask"`
}
