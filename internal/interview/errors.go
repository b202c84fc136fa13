package interview

import "errors"

// Error taxonomy for the interview state machine. Handlers map these to
// short, non-leaking responses.
var (
	ErrUnauthorized     = errors.New("not authorized to access this interview session")
	ErrTemplateNotFound = errors.New("interview template not found")
	ErrInvalidTemplate  = errors.New("interview template has no questions")
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrSessionCompleted = errors.New("interview is already completed")
)
