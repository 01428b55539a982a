package dto

import "time"

// AuthResponse is returned from login and register: the access token plus
// the authenticated user's public details.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}
