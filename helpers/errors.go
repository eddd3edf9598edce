package helpers

import "github.com/gofiber/fiber/v2"

// APIError is a terminal request error with a stable client-facing message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

var (
	ErrUnauthorized        = &APIError{fiber.StatusUnauthorized, "Unauthorized"}
	ErrForbidden           = &APIError{fiber.StatusForbidden, "Account banned"}
	ErrInvalidAction       = &APIError{fiber.StatusBadRequest, "Invalid action"}
	ErrInsufficientBalance = &APIError{fiber.StatusBadRequest, "Insufficient balance"}
	ErrSessionNotFound     = &APIError{fiber.StatusBadRequest, "Session not found or expired"}
	ErrAlreadyClaimed      = &APIError{fiber.StatusBadRequest, "Already claimed"}
	ErrSelfReferral        = &APIError{fiber.StatusBadRequest, "Self referral not allowed"}
	ErrReferralLimit       = &APIError{fiber.StatusBadRequest, "Referral limit reached"}
	ErrMinimumDeposit      = &APIError{fiber.StatusBadRequest, "Minimum deposit not met"}
)

// ValidationError marks malformed or out-of-range input, rejected before any
// ledger or session mutation.
func ValidationError(message string) *APIError {
	return &APIError{fiber.StatusBadRequest, message}
}
