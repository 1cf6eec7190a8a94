package services

import (
	"errors"
	"fmt"

	apperrors "github.com/argumentor/analysis-service/internal/errors"
	"github.com/argumentor/analysis-service/internal/models"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")

	// Analysis specific errors
	ErrEmptyText      = errors.New("submission text is required")
	ErrEmptySessionID = errors.New("session id is required")

	// Session specific errors
	ErrSessionNotFound = errors.New("session has no recorded history")

	// Routing specific errors
	ErrUnknownAgent    = errors.New("unknown target agent")
	ErrEmptyPayload    = errors.New("message payload is required")
	ErrHandlerFailed   = errors.New("agent handler failed")
	ErrMessageNotFound = errors.New("message not found")

	// Interaction errors
	ErrStudentNotFound = errors.New("student has no recorded interactions")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// RoutingError carries the failed message context for router failures.
type RoutingError struct {
	MessageID string           `json:"message_id"`
	From      models.AgentRole `json:"from"`
	To        models.AgentRole `json:"to"`
	Reason    string           `json:"reason"`
}

func (re *RoutingError) Error() string {
	return fmt.Sprintf("routing failed (%s -> %s, message %s): %s",
		re.From, re.To, re.MessageID, re.Reason)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewRoutingError(messageID string, from, to models.AgentRole, reason string) *RoutingError {
	return &RoutingError{
		MessageID: messageID,
		From:      from,
		To:        to,
		Reason:    reason,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrMessageNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrEmptySessionID) ||
		errors.Is(err, ErrEmptyPayload) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsRouting checks if error represents a routing failure
func IsRouting(err error) bool {
	if errors.Is(err, ErrUnknownAgent) || errors.Is(err, ErrHandlerFailed) {
		return true
	}
	var re *RoutingError
	return errors.As(err, &re)
}
