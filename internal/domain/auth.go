package domain

import "time"

// SubjectType differentiates trainee vs administrator tokens.
type SubjectType string

const (
	SubjectTypeTrainee SubjectType = "TRAINEE"
	SubjectTypeAdmin   SubjectType = "ADMIN"
)

// Token represents issued authentication token metadata.
type Token struct {
	ID        string
	SubjectID string
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
