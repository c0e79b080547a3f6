package http

import (
	"encoding/json"
	"net/http"

	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/slogx"
)

// SignUpHandler handles self-service account registration.
type SignUpHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles POST /v1/users/new
//
//	@Summary		Register a new account
//	@Description	Creates a local user account and returns a session token for it.
//	@Description	Self-registered accounts always receive the default role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.SignUpRequest	true	"Registration request"
//	@Success		201		{object}	accountsdk.TokenResponse	"Session token"
//	@Failure		400		{object}	accountsdk.APIError			"Malformed request body"
//	@Failure		422		{object}	accountsdk.APIError			"Validation failed"
//	@Failure		500		{object}	accountsdk.APIError			"Internal server error"
//	@Router			/v1/users/new [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.CreateUser(ctx, service.CreateUserParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
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

	log.Info("user registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, accountsdk.TokenResponse{Token: token})
}
