package api

import (
	"errors"
	"net/http"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/imaging"
	"github.com/tasknest/tasknest-api/internal/service"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Duplicate
// email and failed login are part of the bad-request class, not 409/401:
// clients get four statuses (400, 401, 404, 500) and nothing else.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors. Foreign-owned tasks surface as ErrTaskNotFound,
	// so ownership violations land here too.
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrTokenNotFound),
		errors.Is(err, service.ErrAvatarNotSet):
		return http.StatusNotFound

	// Bad request errors. Undecodable or wrong-format avatar uploads are
	// bad input, not server failures.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, imaging.ErrInvalidImage),
		errors.Is(err, imaging.ErrUnsupportedFormat):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
// Domain validation errors carry their own safe wording; everything else
// maps to a fixed phrase so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Please authenticate."

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Unable to login"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already in use"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, service.ErrAvatarNotSet):
		return "Avatar not found"

	case errors.Is(err, imaging.ErrInvalidImage),
		errors.Is(err, imaging.ErrUnsupportedFormat):
		return "Please upload a valid image"

	// Validation sentinels are written for end users.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError maps err to its status code and safe message and
// writes the response. Handlers call this for any service-layer failure.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
