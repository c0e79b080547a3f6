package http

import (
	"net/http"
	"time"

	"github.com/fluxline/accountd/internal/accounts/domain"
	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/slogx"
)

// UsersHandler handles the read and delete side of user management.
type UsersHandler struct {
	UserService *service.UserService
}

// toProfile converts a domain user to its wire representation.
func toProfile(u domain.User) accountsdk.Profile {
	return accountsdk.Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Provider:  u.Provider,
		Status:    u.Status,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// HandleMe handles GET /v1/users/me
//
//	@Summary		Get own profile
//	@Description	Returns the profile of the authenticated user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.Profile	"User profile"
//	@Failure		401	{object}	accountsdk.APIError	"Invalid or missing session token"
//	@Failure		500	{object}	accountsdk.APIError	"Internal server error"
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		accountsdk.ErrUnauthorized.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(user))
}

// HandleShow handles GET /v1/users/{id}
//
//	@Summary		Get a user
//	@Description	Returns the profile of the user with the given ID.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"User ID (ULID)"
//	@Success		200	{object}	accountsdk.Profile	"User profile"
//	@Failure		401	{object}	accountsdk.APIError	"Invalid or missing session token"
//	@Failure		404	{object}	accountsdk.APIError	"User not found"
//	@Failure		500	{object}	accountsdk.APIError	"Internal server error"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.GetUserByID(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfile(user))
}

// HandleList handles GET /v1/users/all
//
//	@Summary		List all users
//	@Description	Returns the profiles of all active users. Requires the admin role.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.ListUsersResponse	"All active users"
//	@Failure		401	{object}	accountsdk.APIError				"Invalid or missing session token"
//	@Failure		403	{object}	accountsdk.APIError				"Caller is not an admin"
//	@Failure		500	{object}	accountsdk.APIError				"Internal server error"
//	@Router			/v1/users/all [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	profiles := make([]accountsdk.Profile, len(users))
	for i, u := range users {
		profiles[i] = toProfile(u)
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ListUsersResponse{Users: profiles})
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete a user
//	@Description	Soft-deletes the user with the given ID. The row is retained but
//	@Description	hidden from all lookups, and session tokens for it stop resolving.
//	@Description	Requires the admin role.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID (ULID)"
//	@Success		204	"User deleted"
//	@Failure		401	{object}	accountsdk.APIError	"Invalid or missing session token"
//	@Failure		403	{object}	accountsdk.APIError	"Caller is not an admin"
//	@Failure		404	{object}	accountsdk.APIError	"User not found"
//	@Failure		500	{object}	accountsdk.APIError	"Internal server error"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")
	if err := h.UserService.SoftDelete(ctx, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("user deleted", "user_id", userID)
	w.WriteHeader(http.StatusNoContent)
}
