package dto

import "time"

// LoginRequest payload for sign-in.
type LoginRequest struct {
	StaffID  string `json:"staff_id"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
