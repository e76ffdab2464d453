package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/internal/view"
)

const rememberCookieMaxAge = 30 * 24 * 60 * 60

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	center       *notify.Center
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, center *notify.Center, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, center: center, cookieSecure: cookieSecure}
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"...","rememberMe":false}
// Response: {"user": {...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.setAuthCookie(w, token, req.RememberMe)

	session := h.auth.CurrentUser()
	user, err := h.auth.GetUserByID(r.Context(), session.UserID)
	if err != nil {
		slog.Error("get user after login", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	h.center.ShowToast("Welcome back, "+user.FirstName+"!", notify.LevelSuccess)

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleRegister processes a JSON registration request. A successful
// signup logs the new account in immediately.
// POST /api/auth/register
// Request:  {"firstName":"...","lastName":"...","email":"...","password":"...","confirmPassword":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "An account with that email already exists.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.setAuthCookie(w, token, false)
	h.center.ShowToast("Welcome to Vault 93, "+user.FirstName+"!", notify.LevelSuccess)

	writeJSON(w, http.StatusCreated, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleLogout ends the session and clears the auth cookie.
// POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		slog.Error("logout", "error", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	h.center.ShowToast("You have been logged out.", notify.LevelInfo)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the currently authenticated user.
// GET /api/auth/me
// Response: {"user": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleModalLogin is the sign-in form's submit target. Failures patch
// the modal's inline alert; success sets the auth cookie, closes the
// modal, and greets over a toast.
// POST /auth/modal/login
func (h *AuthHandler) HandleModalLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := readJSON(r, &req); err != nil {
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.AuthAlert("Something went wrong. Please try again."))
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			slog.Error("modal login", "error", err)
		}
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.AuthAlert("Invalid email or password."))
		return
	}

	// The cookie must go out before the SSE response starts.
	h.setAuthCookie(w, token, req.RememberMe)

	session := h.auth.CurrentUser()
	h.center.ShowToast("Welcome back, "+session.FirstName+"!", notify.LevelSuccess)

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.AuthModalClosed())
}

// HandleModalRegister is the sign-up form's submit target. Validation
// failures patch the modal's inline alert; success signs the new
// account in and closes the modal.
// POST /auth/modal/register
func (h *AuthHandler) HandleModalRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := readJSON(r, &req); err != nil {
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.AuthAlert("Something went wrong. Please try again."))
		return
	}

	user, token, err := h.auth.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		sse := datastar.NewSSE(w, r)
		sse.PatchElementTempl(view.AuthAlert(registrationAlert(err)))
		return
	}

	h.setAuthCookie(w, token, false)
	h.center.ShowToast("Welcome to Vault 93, "+user.FirstName+"!", notify.LevelSuccess)

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.AuthModalClosed())
}

// HandleSocialLogin is the inert social sign-in target.
// POST /auth/social/{provider}
func (h *AuthHandler) HandleSocialLogin(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.AuthAlert(r.PathValue("provider") + " login coming soon!"))
}

// registrationAlert maps a registration error to the message shown in
// the modal's alert area.
func registrationAlert(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "An account with that email already exists."
	case errors.Is(err, domain.ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	default:
		slog.Error("modal register", "error", err)
		return "An unexpected error occurred. Please try again."
	}
}

// HandleOpenModal patches the sign-in modal into the page. A login
// prompt's confirm button posts here, so any showing prompt leaves.
// GET|POST /auth/modal
func (h *AuthHandler) HandleOpenModal(w http.ResponseWriter, r *http.Request) {
	h.center.DismissCurrentPrompt()

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.AuthModal())
}

// HandleCloseModal clears the modal container.
// DELETE /auth/modal
func (h *AuthHandler) HandleCloseModal(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.AuthModalClosed())
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string, rememberMe bool) {
	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	// Remember-me keeps the cookie for 30 days; otherwise it lives
	// for the browser session only.
	if rememberMe {
		cookie.MaxAge = rememberCookieMaxAge
	}
	http.SetCookie(w, cookie)
}
