package http

import (
	"encoding/json"
	"net/http"

	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/slogx"
)

// LoginHandler handles local email/password authentication.
type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Verifies an email/password pair and returns a session token.
//	@Description	Unknown emails and wrong passwords are indistinguishable in the response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Login request"
//	@Success		200		{object}	accountsdk.TokenResponse	"Session token"
//	@Failure		400		{object}	accountsdk.APIError			"Malformed request body"
//	@Failure		401		{object}	accountsdk.APIError			"Invalid credentials"
//	@Failure		500		{object}	accountsdk.APIError			"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Sign(user)
	if err != nil {
		log.Error("failed to sign session token", "user_id", user.ID, "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("user logged in", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.TokenResponse{Token: token})
}
