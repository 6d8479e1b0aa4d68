package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/platform/cloudinary"
	"github.com/MartaCamacho/fit-project-server/internal/service/auth"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors. Duplicates map to 400, matching the API contract
	// the clients were built against.
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, cloudinary.ErrUnsupportedFormat),
		errors.Is(err, cloudinary.ErrEmptyImage):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrExerciseNotFound):
		return "Exercise not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Duplicate errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrURLExists):
		return "An exercise with this URL already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Already exists"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	case errors.Is(err, cloudinary.ErrUnsupportedFormat):
		return "Only JPEG and PNG images are supported"

	case errors.Is(err, cloudinary.ErrEmptyImage):
		return "Image cannot be empty"

	case errors.Is(err, domain.ErrValidation):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return "Invalid " + validationErr.Field
		}
		return "Validation error"

	// Upload failures are server-side
	case errors.Is(err, cloudinary.ErrUploadFailed):
		return "Image upload failed"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs the
// full detail, and writes exactly one JSON error response. An optional
// fallbackMessage overrides the generic message for 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)

	if statusCode == http.StatusInternalServerError && fallbackMessage != "" {
		safeMessage = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}

// SanitizeValidationError removes sensitive details from validator/v10 errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return "Invalid " + field + ": " + getValidationTagMessage(tag)
				}
				return "Invalid " + field
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "url":
		return "invalid URL"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
