package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/buddylink/buddylink-api/internal/payload"
	"github.com/buddylink/buddylink-api/internal/session"
	"github.com/buddylink/buddylink-api/internal/usecase"
)

const (
	msgMissingCredentials = "Email and password are required"
	msgInvalidCredentials = "Invalid email or password"
	msgUnauthorized       = "Unauthorized"
	msgInternal           = "Something went wrong"
)

// AuthHandler serves login, logout and the current-identity endpoint.
type AuthHandler struct {
	auth       usecase.AuthUsecase
	sessions   session.Store
	validator  *payload.Validator
	cookieName string
	logger     *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	auth usecase.AuthUsecase,
	sessions session.Store,
	validator *payload.Validator,
	cookieName string,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		sessions:   sessions,
		validator:  validator,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Login authenticates email and password and establishes a session. An
// unknown email and a wrong password produce identical responses so callers
// cannot enumerate accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, payload.Fail(msgMissingCredentials))
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logger.Debug().Err(err).Msg("login payload rejected")
		writeJSON(w, http.StatusBadRequest, payload.Fail(msgMissingCredentials))
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, payload.Fail(msgInvalidCredentials))
			return
		}

		h.logger.Error().Err(err).Msg("login failed")
		writeJSON(w, http.StatusInternalServerError, payload.Fail(msgInternal))
		return
	}

	sid, err := h.sessions.Create(r.Context(), session.Identity{
		UserID: user.ID.Hex(),
		Email:  user.Email,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create session")
		writeJSON(w, http.StatusInternalServerError, payload.Fail(msgInternal))
		return
	}

	h.setSessionCookie(w, sid)
	writeJSON(w, http.StatusOK, payload.OK(payload.LoginData{
		Token: string(user.Role),
		Email: user.Email,
	}))
}

// Logout discards the caller's session unconditionally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Warn().Err(err).Msg("failed to delete session")
		}
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, payload.Response{Success: true})
}

// Me reads the session without side effects. A missing cookie, an unknown
// session id and an incomplete identity all look the same to the caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, payload.Fail(msgUnauthorized))
		return
	}

	identity, err := h.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.logger.Error().Err(err).Msg("failed to read session")
		}
		writeJSON(w, http.StatusUnauthorized, payload.Fail(msgUnauthorized))
		return
	}

	writeJSON(w, http.StatusOK, payload.OK(payload.MeData{
		ID:    identity.UserID,
		Email: identity.Email,
	}))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
