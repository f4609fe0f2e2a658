package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tomekh/stockledger/internal/adapter/http/dto"
	"github.com/tomekh/stockledger/internal/adapter/http/middleware"
	"github.com/tomekh/stockledger/internal/domain"
	"github.com/tomekh/stockledger/internal/infrastructure/auth"
	"github.com/tomekh/stockledger/internal/infrastructure/metrics"
	"github.com/tomekh/stockledger/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// CookieConfig controls the attributes of the auth cookies.
type CookieConfig struct {
	Secure bool
	Domain string
}

// AuthHandler handles authentication endpoints. Tokens travel in
// HTTP-only cookies so browser clients never see them.
type AuthHandler struct {
	userUC     UserService
	jwtManager *auth.JWTManager
	cookies    CookieConfig
	metrics    *metrics.Metrics
}

// NewAuthHandler creates a new auth handler. metrics may be nil.
func NewAuthHandler(userUC UserService, jwtManager *auth.JWTManager, cookies CookieConfig, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
		cookies:    cookies,
		metrics:    m,
	}
}

// Login verifies credentials and sets the access and refresh cookies.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if h.metrics != nil {
			h.metrics.AuthAttempts.WithLabelValues("failure").Inc()
			h.metrics.AuthFailures.WithLabelValues("bad_credentials").Inc()
		}
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	pair, err := h.jwtManager.GeneratePair(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate tokens", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues("success").Inc()
	}

	h.setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Refresh rotates the token pair using the refresh cookie.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.RefreshCookieName)
	if err != nil || cookie.Value == "" {
		writeError(w, http.StatusUnauthorized, "missing refresh token", "")
		return
	}

	claims, err := h.jwtManager.VerifyRefresh(cookie.Value)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or expired refresh token", "")
		return
	}

	// Re-read the user so a deactivated account cannot refresh forever.
	user, err := h.userUC.GetUser(r.Context(), claims.UserID)
	if err != nil || !user.Active {
		writeError(w, http.StatusUnauthorized, "account unavailable", "")
		return
	}

	pair, err := h.jwtManager.GeneratePair(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate tokens", err.Error())
		return
	}

	h.setAuthCookies(w, pair)
	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Logout clears the auth cookies.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// GetCurrentUser returns the current authenticated user
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, pair *auth.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    pair.AccessToken,
		Path:     "/",
		Domain:   h.cookies.Domain,
		Expires:  pair.AccessExpiresAt,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/api/v1/auth",
		Domain:   h.cookies.Domain,
		Expires:  pair.RefreshExpiresAt,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookies(w http.ResponseWriter) {
	expired := time.Unix(0, 0)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookies.Domain,
		Expires:  expired,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshCookieName,
		Value:    "",
		Path:     "/api/v1/auth",
		Domain:   h.cookies.Domain,
		Expires:  expired,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
