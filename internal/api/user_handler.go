package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tasknest/tasknest-api/internal/api/middleware"
	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/service"
)

// userUpdateFields is the PATCH /users/me allow-list. Any other key in the
// body rejects the whole request before anything is written.
var userUpdateFields = map[string]bool{
	"name":     true,
	"email":    true,
	"password": true,
	"age":      true,
}

// UserHandler handles the account endpoints: registration, sessions,
// profile, avatar, and deletion.
type UserHandler struct {
	users          service.UserService
	maxAvatarBytes int64
	logger         *slog.Logger
}

// NewUserHandler creates a UserHandler. maxAvatarBytes bounds avatar uploads.
func NewUserHandler(users service.UserService, maxAvatarBytes int64, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:          users,
		maxAvatarBytes: maxAvatarBytes,
		logger:         logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid registration data")
		return
	}

	user, token, err := h.users.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
	})
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		User:  NewUserResponse(user),
		Token: token,
	})
}

// Login handles POST /users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		// Structurally bad credentials fail the same way wrong ones do.
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unable to login")
		return
	}

	user, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		User:  NewUserResponse(user),
		Token: token,
	})
}

// Logout handles POST /users/logout. Only the session token the request
// authenticated with is revoked.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}
	token, ok := middleware.GetToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	if err := h.users.Logout(r.Context(), user.ID, token); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "logged out"})
}

// LogoutAll handles POST /users/logoutall.
func (h *UserHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	if err := h.users.LogoutAll(r.Context(), user.ID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "logged out everywhere"})
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// GetUserByID handles GET /users/{id}, the public profile. A malformed ID is
// indistinguishable from an absent user.
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// UpdateMe handles PATCH /users/me. The body is checked against the field
// allow-list first; one unknown key rejects the whole request.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	var raw map[string]json.RawMessage
	if err := shared.DecodeJSON(r, &raw); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	for field := range raw {
		if !userUpdateFields[field] {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid updates!")
			return
		}
	}

	var input service.UpdateUserInput
	if err := unmarshalField(raw, "name", &input.Name); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := unmarshalField(raw, "email", &input.Email); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := unmarshalField(raw, "password", &input.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := unmarshalField(raw, "age", &input.Age); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := h.users.UpdateUser(r.Context(), user.ID, input)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(updated))
}

// DeleteMe handles DELETE /users/me and echoes the deleted account.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	if err := h.users.DeleteUser(r.Context(), user); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user))
}

// UploadAvatar handles POST /users/me/avatar. The multipart part must be
// named "avatar" and the whole body is capped at maxAvatarBytes.
func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarBytes)
	file, _, err := r.FormFile("avatar")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Avatar upload must be a multipart form with an \"avatar\" file")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Avatar image too large")
			return
		}
		h.logger.Error("failed to read avatar upload", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	if err := h.users.UploadAvatar(r.Context(), user.ID, data); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "avatar updated"})
}

// DeleteAvatar handles DELETE /users/me/avatar.
func (h *UserHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Please authenticate.")
		return
	}

	if err := h.users.DeleteAvatar(r.Context(), user.ID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "avatar deleted"})
}

// GetAvatar handles GET /users/{id}/avatar. Avatars are stored as PNG, so
// the response type is fixed.
func (h *UserHandler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Avatar not found")
		return
	}

	avatar, err := h.users.GetAvatar(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(avatar); err != nil {
		h.logger.Error("failed to write avatar response", "error", err)
	}
}

// unmarshalField decodes raw[key] into dst when the key is present.
func unmarshalField(raw map[string]json.RawMessage, key string, dst interface{}) error {
	value, ok := raw[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(value, dst)
}
