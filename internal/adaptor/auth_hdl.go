package adaptor

import (
	"net/http"
	"strings"
	"time"

	"movie-browser/internal/dto/request"
	"movie-browser/internal/usecase"
	"movie-browser/pkg/middleware"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// RegistrationForm handles GET /registration
func (h *AuthHandler) RegistrationForm(w http.ResponseWriter, r *http.Request) {
	utils.RenderView(w, "registration", nil)
}

// Register handles POST /registration. Rejections re-render the form with
// the message inline; only a successful registration redirects.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := request.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		h.handleFormError(w, err, "registration", "register")
		return
	}

	utils.Redirect(w, r, "/login")
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	utils.RenderView(w, "login", nil)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := request.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleFormError(w, err, "login", "login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    auth.Token,
		Path:     "/",
		Expires:  auth.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.Redirect(w, r, "/")
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.Redirect(w, r, "/login")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.log.Warn("Logout failed", zap.Error(err))
	}

	// Expire the cookie regardless of revocation outcome
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.Redirect(w, r, "/login")
}

// handleFormError sorts form rejections from real failures. Form messages
// go back with the view at 200, everything else is a server error.
func (h *AuthHandler) handleFormError(w http.ResponseWriter, err error, view, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "must be at least"),
		strings.Contains(errMsg, "must be at most"),
		strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "User not found"),
		strings.Contains(errMsg, "Incorrect password"),
		strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" rejected", zap.String("reason", errMsg))
		utils.RenderViewError(w, view, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
