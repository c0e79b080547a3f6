package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fluxline/accountd/internal/accounts/service"
	"github.com/fluxline/accountd/pkg/accountsdk"
	"github.com/fluxline/accountd/pkg/httpx"
	"github.com/fluxline/accountd/pkg/slogx"
)

// maxPatchBytes bounds the request body of PATCH and PUT payloads.
const maxPatchBytes = 64 << 10

// UsersEditHandler handles the write side of user management.
type UsersEditHandler struct {
	UserService *service.UserService
}

// HandleUpsert handles PUT /v1/users/{id}
//
//	@Summary		Create or replace a user
//	@Description	Replaces the user with the given ID, creating it when absent.
//	@Description	The payload is a whole replacement, not a merge; omitted profile
//	@Description	fields are cleared. The password is mandatory on create and
//	@Description	optional on replace.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID (ULID)"
//	@Param			request	body		accountsdk.UpsertUserRequest	true	"Replacement payload"
//	@Success		200		{object}	accountsdk.Profile	"User replaced"
//	@Success		201		{object}	accountsdk.Profile	"User created"
//	@Failure		400		{object}	accountsdk.APIError	"Malformed request body"
//	@Failure		401		{object}	accountsdk.APIError	"Invalid or missing session token"
//	@Failure		422		{object}	accountsdk.APIError	"Validation failed"
//	@Failure		500		{object}	accountsdk.APIError	"Internal server error"
//	@Router			/v1/users/{id} [put].
func (h *UsersEditHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID := r.PathValue("id")
	user, created, err := h.UserService.Upsert(ctx, userID, service.UpsertParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Status:    req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		log.Info("user created via upsert", "user_id", userID)
	}

	httpx.WriteJSON(w, status, toProfile(user))
}

// HandlePatch handles PATCH /v1/users/{id}
//
//	@Summary		Patch a user
//	@Description	Applies an RFC 6902 JSON Patch document to the user. The document
//	@Description	applies atomically; if any operation fails, nothing changes.
//	@Description	Setting the "password" field replaces the account credentials.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID (ULID)"
//	@Param			request	body		[]accountsdk.PatchOperation	true	"JSON Patch document"
//	@Success		200		{object}	accountsdk.Profile	"Updated profile"
//	@Failure		400		{object}	accountsdk.APIError	"Malformed request body"
//	@Failure		401		{object}	accountsdk.APIError	"Invalid or missing session token"
//	@Failure		404		{object}	accountsdk.APIError	"User not found"
//	@Failure		422		{object}	accountsdk.APIError	"Invalid patch or validation failure"
//	@Failure		500		{object}	accountsdk.APIError	"Internal server error"
//	@Router			/v1/users/{id} [patch].
func (h *UsersEditHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	doc, err := io.ReadAll(io.LimitReader(r.Body, maxPatchBytes))
	if err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID := r.PathValue("id")
	user, err := h.UserService.Patch(ctx, userID, doc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("user patched", "user_id", userID)
	httpx.WriteJSON(w, http.StatusOK, toProfile(user))
}

// HandleChangePassword handles PUT /v1/users/{id}/password
//
//	@Summary		Change password
//	@Description	Replaces the password of the authenticated user after verifying
//	@Description	the current one. The path ID is kept for routing symmetry; the
//	@Description	operation always acts on the session's own account.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string							true	"User ID (ULID)"
//	@Param			request	body	accountsdk.ChangePasswordRequest	true	"Password change request"
//	@Success		204		"Password changed"
//	@Failure		400		{object}	accountsdk.APIError	"Malformed request body"
//	@Failure		401		{object}	accountsdk.APIError	"Invalid or missing session token"
//	@Failure		403		{object}	accountsdk.APIError	"Current password did not match"
//	@Failure		422		{object}	accountsdk.APIError	"New password fails validation"
//	@Failure		500		{object}	accountsdk.APIError	"Internal server error"
//	@Router			/v1/users/{id}/password [put].
func (h *UsersEditHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caller, ok := UserFromContext(ctx)
	if !ok {
		accountsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req accountsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.UserService.ChangePassword(ctx, caller.ID, req.OldPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("password changed", "user_id", caller.ID)
	w.WriteHeader(http.StatusNoContent)
}
