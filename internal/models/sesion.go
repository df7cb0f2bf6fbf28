package models

import "time"

// Sesion is an authenticated staff session issued by the identity
// provider and checked against the employee roster before use.
type Sesion struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Empleado  Empleado  `json:"empleado"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session token has passed its expiry.
// A zero expiry is treated as never-expiring; the upstream API still
// rejects stale tokens on its own.
func (s *Sesion) Expired() bool {
	if s == nil || s.Token == "" {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.ExpiresAt)
}
