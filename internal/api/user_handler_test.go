package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/mocks"
	"github.com/tasknest/tasknest-api/internal/platform/imaging"
	"github.com/tasknest/tasknest-api/internal/service"
	"github.com/tasknest/tasknest-api/internal/store"
)

func testUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:             uuid.New(),
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		HashedPassword: "hashed",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// withAuthenticatedUser simulates what the auth middleware binds.
func withAuthenticatedUser(r *http.Request, user *domain.User, token string) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
	ctx = context.WithValue(ctx, shared.TokenContextKey, token)
	return r.WithContext(ctx)
}

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUserHandler_Register(t *testing.T) {
	t.Parallel()

	user := testUser()

	tests := []struct {
		name       string
		body       string
		svc        *mocks.MockUserService
		wantStatus int
	}{
		{
			name:       "valid registration",
			body:       `{"name":"Ada Lovelace","email":"ada@example.com","password":"machine-dreams"}`,
			svc:        &mocks.MockUserService{User: user, Token: "session-token"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed JSON",
			body:       `{"name":`,
			svc:        &mocks.MockUserService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"name":"Ada","password":"machine-dreams"}`,
			svc:        &mocks.MockUserService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative age",
			body:       `{"name":"Ada","email":"ada@example.com","password":"machine-dreams","age":-1}`,
			svc:        &mocks.MockUserService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Ada","email":"ada@example.com","password":"machine-dreams"}`,
			svc:        &mocks.MockUserService{Err: store.ErrEmailExists},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "weak password from domain",
			body:       `{"name":"Ada","email":"ada@example.com","password":"short12"}`,
			svc:        &mocks.MockUserService{Err: domain.ErrPasswordTooShort},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store failure",
			body:       `{"name":"Ada","email":"ada@example.com","password":"machine-dreams"}`,
			svc:        &mocks.MockUserService{Err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := NewUserHandler(tc.svc, 1<<20, nil)

			r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			h.Register(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)

			if tc.wantStatus == http.StatusCreated {
				var resp AuthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "session-token", resp.Token)
				assert.Equal(t, user.Email, resp.User.Email)
				assert.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	user := testUser()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{User: user, Token: "session-token"}, 1<<20, nil)

		r := httptest.NewRequest(http.MethodPost, "/users/login",
			strings.NewReader(`{"email":"ada@example.com","password":"machine-dreams"}`))
		w := httptest.NewRecorder()
		h.Login(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "session-token", resp.Token)
	})

	t.Run("wrong credentials map to 400", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{Err: service.ErrInvalidCredentials}, 1<<20, nil)

		r := httptest.NewRequest(http.MethodPost, "/users/login",
			strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
		w := httptest.NewRecorder()
		h.Login(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unable to login")
	})

	t.Run("structurally invalid body fails identically", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		r := httptest.NewRequest(http.MethodPost, "/users/login",
			strings.NewReader(`{"email":"not-an-email","password":"x"}`))
		w := httptest.NewRecorder()
		h.Login(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unable to login")
	})
}

func TestUserHandler_Sessions(t *testing.T) {
	t.Parallel()

	user := testUser()

	t.Run("logout revokes the bound token", func(t *testing.T) {
		t.Parallel()
		var revokedToken string
		svc := &mocks.MockUserService{
			LogoutFn: func(_ context.Context, _ uuid.UUID, token string) error {
				revokedToken = token
				return nil
			},
		}
		h := NewUserHandler(svc, 1<<20, nil)

		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/logout", nil), user, "current-token")
		w := httptest.NewRecorder()
		h.Logout(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "current-token", revokedToken)
	})

	t.Run("logout without auth context", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		r := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
		w := httptest.NewRecorder()
		h.Logout(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout all", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/logoutall", nil), user, "current-token")
		w := httptest.NewRecorder()
		h.LogoutAll(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUserHandler_GetMe(t *testing.T) {
	t.Parallel()

	user := testUser()
	h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

	r := withAuthenticatedUser(httptest.NewRequest(http.MethodGet, "/users/me", nil), user, "token")
	w := httptest.NewRecorder()
	h.GetMe(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID)
	assert.NotContains(t, w.Body.String(), "hashed")
}

func TestUserHandler_GetUserByID(t *testing.T) {
	t.Parallel()

	user := testUser()

	t.Run("existing user", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{User: user}, 1<<20, nil)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+user.ID.String(), nil), "id", user.ID.String())
		w := httptest.NewRecorder()
		h.GetUserByID(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed ID reads as not found", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		r := withURLParam(httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil), "id", "not-a-uuid")
		w := httptest.NewRecorder()
		h.GetUserByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{Err: store.ErrUserNotFound}, 1<<20, nil)

		id := uuid.New().String()
		r := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id, nil), "id", id)
		w := httptest.NewRecorder()
		h.GetUserByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_UpdateMe(t *testing.T) {
	t.Parallel()

	user := testUser()

	t.Run("allowed fields pass through", func(t *testing.T) {
		t.Parallel()
		var gotInput service.UpdateUserInput
		svc := &mocks.MockUserService{
			UpdateUserFn: func(_ context.Context, _ uuid.UUID, input service.UpdateUserInput) (*domain.User, error) {
				gotInput = input
				return user, nil
			},
		}
		h := NewUserHandler(svc, 1<<20, nil)

		body := `{"name":"Countess","age":36}`
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(body)), user, "token")
		w := httptest.NewRecorder()
		h.UpdateMe(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotInput.Name)
		assert.Equal(t, "Countess", *gotInput.Name)
		require.NotNil(t, gotInput.Age)
		assert.Equal(t, 36, *gotInput.Age)
		assert.Nil(t, gotInput.Email)
		assert.Nil(t, gotInput.Password)
	})

	t.Run("disallowed field rejects the whole request", func(t *testing.T) {
		t.Parallel()
		updateCalled := false
		svc := &mocks.MockUserService{
			UpdateUserFn: func(_ context.Context, _ uuid.UUID, _ service.UpdateUserInput) (*domain.User, error) {
				updateCalled = true
				return user, nil
			},
		}
		h := NewUserHandler(svc, 1<<20, nil)

		body := `{"name":"Countess","role":"admin"}`
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(body)), user, "token")
		w := httptest.NewRecorder()
		h.UpdateMe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid updates!")
		assert.False(t, updateCalled, "nothing may be written on a rejected update")
	})

	t.Run("wrong field type", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		body := `{"age":"not-a-number"}`
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPatch, "/users/me", strings.NewReader(body)), user, "token")
		w := httptest.NewRecorder()
		h.UpdateMe(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_DeleteMe(t *testing.T) {
	t.Parallel()

	user := testUser()
	h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

	r := withAuthenticatedUser(httptest.NewRequest(http.MethodDelete, "/users/me", nil), user, "token")
	w := httptest.NewRecorder()
	h.DeleteMe(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.ID, "delete echoes the removed account")
}

func TestUserHandler_Avatar(t *testing.T) {
	t.Parallel()

	user := testUser()

	multipartBody := func(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile(field, "avatar.png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("upload forwards the file bytes", func(t *testing.T) {
		t.Parallel()
		var gotData []byte
		svc := &mocks.MockUserService{
			UploadAvatarFn: func(_ context.Context, _ uuid.UUID, data []byte) error {
				gotData = data
				return nil
			},
		}
		h := NewUserHandler(svc, 1<<20, nil)

		body, contentType := multipartBody(t, "avatar", []byte("fake-image-bytes"))
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/me/avatar", body), user, "token")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.UploadAvatar(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []byte("fake-image-bytes"), gotData)
	})

	t.Run("wrong form field name", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		body, contentType := multipartBody(t, "upload", []byte("fake-image-bytes"))
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/me/avatar", body), user, "token")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.UploadAvatar(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("undecodable image is a bad request", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockUserService{
			UploadAvatarFn: func(_ context.Context, _ uuid.UUID, _ []byte) error {
				return fmt.Errorf("resize avatar: %w", imaging.ErrInvalidImage)
			},
		}
		h := NewUserHandler(svc, 1<<20, nil)

		body, contentType := multipartBody(t, "avatar", []byte("not-an-image"))
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/me/avatar", body), user, "token")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.UploadAvatar(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please upload a valid image")
	})

	t.Run("unsupported format is a bad request", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockUserService{
			UploadAvatarFn: func(_ context.Context, _ uuid.UUID, _ []byte) error {
				return fmt.Errorf("resize avatar: %w", imaging.ErrUnsupportedFormat)
			},
		}
		h := NewUserHandler(svc, 1<<20, nil)

		body, contentType := multipartBody(t, "avatar", []byte("gif-bytes"))
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/me/avatar", body), user, "token")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.UploadAvatar(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized upload", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 64, nil)

		body, contentType := multipartBody(t, "avatar", bytes.Repeat([]byte("x"), 4096))
		r := withAuthenticatedUser(httptest.NewRequest(http.MethodPost, "/users/me/avatar", body), user, "token")
		r.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		h.UploadAvatar(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get serves png bytes", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{Avatar: []byte("png-bytes")}, 1<<20, nil)

		id := user.ID.String()
		r := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id+"/avatar", nil), "id", id)
		w := httptest.NewRecorder()
		h.GetAvatar(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("missing avatar is 404", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{Err: service.ErrAvatarNotSet}, 1<<20, nil)

		id := user.ID.String()
		r := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+id+"/avatar", nil), "id", id)
		w := httptest.NewRecorder()
		h.GetAvatar(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete clears", func(t *testing.T) {
		t.Parallel()
		h := NewUserHandler(&mocks.MockUserService{}, 1<<20, nil)

		r := withAuthenticatedUser(httptest.NewRequest(http.MethodDelete, "/users/me/avatar", nil), user, "token")
		w := httptest.NewRecorder()
		h.DeleteAvatar(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
