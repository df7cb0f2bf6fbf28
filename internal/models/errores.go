package models

import "fmt"

// ValidationError rejects a request before it is sent upstream. The
// message is user-facing, so it is written in the operators' language.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// TerminalStateError refuses a decision on a solicitud that has already
// been decided. Callers map it to a conflict response.
type TerminalStateError struct {
	SolicitudID string
	Estado      EstadoSolicitud
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("la solicitud %s ya fue decidida (estado %s)", e.SolicitudID, e.Estado)
}
