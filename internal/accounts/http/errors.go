package http

import (
	"errors"
	"net/http"

	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/internal/accounts/store"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/slogx"
)

// writeServiceError translates service-layer sentinel errors into the API
// error envelope. Anything unrecognized is logged and becomes a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		accountsdk.NewValidationError("validation failed", map[string]string{
			"email": "must be a valid email address",
		}).WriteError(w)

	case errors.Is(err, service.ErrEmailTaken):
		accountsdk.NewValidationError("validation failed", map[string]string{
			"email": "is already registered",
		}).WriteError(w)

	case errors.Is(err, service.ErrWeakPassword):
		accountsdk.NewValidationError("validation failed", map[string]string{
			"password": "must be between 8 and 128 characters",
		}).WriteError(w)

	case errors.Is(err, service.ErrUnknownRole):
		accountsdk.NewValidationError("validation failed", map[string]string{
			"role": "is not a recognised role",
		}).WriteError(w)

	case errors.Is(err, service.ErrUnknownStatus):
		accountsdk.NewValidationError("validation failed", map[string]string{
			"status": "must be \"active\" or \"inactive\"",
		}).WriteError(w)

	case errors.Is(err, service.ErrInvalidPatch):
		accountsdk.NewValidationError("invalid patch document", nil).WriteError(w)

	case errors.Is(err, service.ErrInvalidCredentials):
		accountsdk.ErrUnauthorized.WriteError(w)

	case errors.Is(err, service.ErrWrongPassword):
		accountsdk.ErrForbidden.WriteError(w)

	case errors.Is(err, store.ErrNotFound):
		accountsdk.ErrNotFound.WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		accountsdk.ErrServerError.WriteError(w)
	}
}
