package handlers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/auth"
	"github.com/camden-git/fleetsysbackend/models"
	"github.com/camden-git/fleetsysbackend/repository"
)

type AuthHandler struct {
	Users    repository.UserRepository
	Sessions auth.Store
	Codec    *auth.CookieCodec
	Log      *logrus.Logger
}

func NewAuthHandler(users repository.UserRepository, sessions auth.Store, codec *auth.CookieCodec, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Codec: codec, Log: log}
}

type loginUserPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Root sends the client to the dashboard when a session exists, otherwise
// to the login page.
func (h *AuthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if SessionFromContext(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginStatus reports whether the caller already holds a session. The login
// form itself is rendered by the frontend.
func (h *AuthHandler) LoginStatus(w http.ResponseWriter, r *http.Request) {
	if SessionFromContext(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
}

// Login authenticates the posted form credentials and establishes a session
// delivered as a signed cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := LoginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		WriteAPIError(w, http.StatusBadRequest, "validation_error", "Username and password are required")
		return
	}

	user, err := h.Users.GetByUsername(form.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.Log.Errorf("failed to look up user %q: %v", form.Username, err)
			WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Login failed")
			return
		}
		// unknown user falls through to the generic credentials error
		user = &models.User{}
	}

	if !user.CheckPassword(form.Password) {
		WriteAPIError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		return
	}

	token, err := h.Sessions.Create(auth.Session{
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
	})
	if err != nil {
		h.Log.Errorf("failed to create session for user %q: %v", user.Username, err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    h.Codec.Encode(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user": loginUserPayload{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
		},
	})
}

// Logout discards the caller's session unconditionally and clears the
// cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil {
		if token, ok := h.Codec.Decode(cookie.Value); ok {
			if err := h.Sessions.Delete(token); err != nil {
				h.Log.Errorf("failed to delete session: %v", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
