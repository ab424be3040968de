package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/dto/response"
	"movie-browser/pkg/middleware"
	"movie-browser/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(svc *mockAuthService) *chi.Mux {
	h := NewAuthHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Get("/registration", h.RegistrationForm)
	r.Post("/registration", h.Register)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	return r
}

func formPost(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) utils.ViewData {
	t.Helper()
	var view utils.ViewData
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func TestRegisterHandler(t *testing.T) {
	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"password1"},
	}

	t.Run("success redirects to login", func(t *testing.T) {
		var got *request.RegisterRequest
		svc := &mockAuthService{
			RegisterFunc: func(ctx context.Context, req *request.RegisterRequest) error {
				got = req
				return nil
			},
		}

		w := serve(authRouter(svc), formPost("/registration", form))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("rejection re-renders the form at 200", func(t *testing.T) {
		svc := &mockAuthService{
			RegisterFunc: func(ctx context.Context, req *request.RegisterRequest) error {
				return fmt.Errorf("Username already exists")
			},
		}

		w := serve(authRouter(svc), formPost("/registration", form))

		assert.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		assert.Equal(t, "registration", view.View)
		assert.Equal(t, "Username already exists", view.Error)
	})

	t.Run("over-long password re-renders the form at 200", func(t *testing.T) {
		svc := &mockAuthService{
			RegisterFunc: func(ctx context.Context, req *request.RegisterRequest) error {
				return fmt.Errorf("Password must be at most 72 characters long")
			},
		}

		w := serve(authRouter(svc), formPost("/registration", form))

		assert.Equal(t, http.StatusOK, w.Code)
		view := decodeView(t, w)
		assert.Equal(t, "registration", view.View)
		assert.Equal(t, "Password must be at most 72 characters long", view.Error)
	})

	t.Run("unexpected failure is a server error", func(t *testing.T) {
		svc := &mockAuthService{
			RegisterFunc: func(ctx context.Context, req *request.RegisterRequest) error {
				return fmt.Errorf("db connection lost")
			},
		}

		w := serve(authRouter(svc), formPost("/registration", form))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	form := url.Values{
		"username": {"alice"},
		"password": {"password1"},
	}

	t.Run("success sets session cookie and redirects home", func(t *testing.T) {
		expiresAt := time.Now().Add(24 * time.Hour)
		svc := &mockAuthService{
			LoginFunc: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
				return &response.AuthResponse{
					Token:     "11111111-2222-3333-4444-555555555555",
					ExpiresAt: expiresAt,
					Username:  "alice",
				}, nil
			},
		}

		w := serve(authRouter(svc), formPost("/login", form))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
		assert.Equal(t, "11111111-2222-3333-4444-555555555555", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	for _, msg := range []string{"User not found", "Incorrect password"} {
		t.Run(msg, func(t *testing.T) {
			svc := &mockAuthService{
				LoginFunc: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
					return nil, fmt.Errorf("%s", msg)
				},
			}

			w := serve(authRouter(svc), formPost("/login", form))

			assert.Equal(t, http.StatusOK, w.Code)
			view := decodeView(t, w)
			assert.Equal(t, "login", view.View)
			assert.Equal(t, msg, view.Error)
			assert.Empty(t, w.Result().Cookies(), "a failed login must not set a cookie")
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	var revokedToken string
	svc := &mockAuthService{
		LogoutFunc: func(ctx context.Context, token string) error {
			revokedToken = token
			return nil
		},
	}

	r := formPost("/logout", url.Values{})
	r = r.WithContext(utils.SetTokenContext(r.Context(), "11111111-2222-3333-4444-555555555555"))

	w := serve(authRouter(svc), r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", revokedToken)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].Expires.Before(time.Now()), "logout must expire the cookie")
}

func TestRegistrationFormHandler(t *testing.T) {
	w := serve(authRouter(&mockAuthService{}), httptest.NewRequest(http.MethodGet, "/registration", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "registration", decodeView(t, w).View)
}
