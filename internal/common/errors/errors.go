// Package errors provides the standardized error taxonomy for the trip-planning client.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Local, pre-network failures.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Primary (itinerary) call failures. Both are user-visible and collapse
	// into a single generic failure notice at the presentation boundary.
	ErrCodeItineraryRequestFailed   ErrorCode = "ITINERARY_REQUEST_FAILED"
	ErrCodeItineraryResponseInvalid ErrorCode = "ITINERARY_RESPONSE_INVALID"

	// Secondary (weather) call failure. Logged, never surfaced.
	ErrCodeWeatherFetchFailed ErrorCode = "WEATHER_FETCH_FAILED"

	// Session state machine misuse.
	ErrCodeSubmitInProgress ErrorCode = "SUBMIT_IN_PROGRESS"
	ErrCodeSubmitNotAllowed ErrorCode = "SUBMIT_NOT_ALLOWED"
	ErrCodeResetNotAllowed  ErrorCode = "RESET_NOT_ALLOWED"
)

// FieldError describes a single invalid or missing form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code        ErrorCode              `json:"code"`
	Message     string                 `json:"message"`
	Details     string                 `json:"details,omitempty"`
	UserVisible bool                   `json:"userVisible"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Timestamp   time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a user-visible validation error listing
// every offending field.
func NewValidationFailedError(fields []FieldError) *StandardError {
	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return &StandardError{
		Code:        ErrCodeValidationFailed,
		Message:     "Trip request validation failed",
		Details:     strings.Join(msgs, "; "),
		UserVisible: true,
		Metadata:    map[string]interface{}{"fields": fields},
		Timestamp:   time.Now().UTC(),
	}
}

// NewItineraryRequestFailedError creates a user-visible primary-call error
// (network failure or non-success status).
func NewItineraryRequestFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeItineraryRequestFailed,
		Message:     "Itinerary service request failed",
		Details:     err.Error(),
		UserVisible: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewItineraryResponseInvalidError creates a user-visible primary-call error
// for an unparseable or schema-violating response body.
func NewItineraryResponseInvalidError(details string) *StandardError {
	return &StandardError{
		Code:        ErrCodeItineraryResponseInvalid,
		Message:     "Itinerary service returned a malformed response",
		Details:     details,
		UserVisible: true,
		Timestamp:   time.Now().UTC(),
	}
}

// NewWeatherFetchFailedError creates the silent secondary-call error. It is
// logged by the orchestrator and never surfaced to the user.
func NewWeatherFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:        ErrCodeWeatherFetchFailed,
		Message:     "Weather service request failed",
		Details:     err.Error(),
		UserVisible: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewSubmitInProgressError rejects a re-entrant submit while Submitting.
func NewSubmitInProgressError() *StandardError {
	return &StandardError{
		Code:        ErrCodeSubmitInProgress,
		Message:     "A submission is already in progress",
		UserVisible: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewSubmitNotAllowedError rejects a submit from a non-Drafting state.
func NewSubmitNotAllowedError(state string) *StandardError {
	return &StandardError{
		Code:        ErrCodeSubmitNotAllowed,
		Message:     "Submit is only allowed while drafting",
		Details:     fmt.Sprintf("state: %s", state),
		UserVisible: false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewResetNotAllowedError rejects a reset from a non-Displaying state.
func NewResetNotAllowedError(state string) *StandardError {
	return &StandardError{
		Code:        ErrCodeResetNotAllowed,
		Message:     "Reset is only allowed while displaying a result",
		Details:     fmt.Sprintf("state: %s", state),
		UserVisible: false,
		Timestamp:   time.Now().UTC(),
	}
}

// CodeOf returns the error code of a StandardError, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidationFailed
}

// IsPrimaryCallFailure reports whether err is a failure of the itinerary call.
func IsPrimaryCallFailure(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeItineraryRequestFailed || code == ErrCodeItineraryResponseInvalid
}

// IsUserVisible reports whether err should be surfaced to the user.
// Weather failures are the sole silent class.
func IsUserVisible(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.UserVisible
	}
	return false
}

// ValidationFields extracts the per-field detail from a validation error.
func ValidationFields(err error) []FieldError {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) || stdErr.Code != ErrCodeValidationFailed {
		return nil
	}
	fields, _ := stdErr.Metadata["fields"].([]FieldError)
	return fields
}
