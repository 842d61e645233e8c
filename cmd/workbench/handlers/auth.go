package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-workbench/auth"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/session"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
	"github.com/jinzhu/copier"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	holder   *auth.Holder
	sessions *session.Manager
	cookies  *CookieCodec
	logger   logger.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(holder *auth.Holder, sessions *session.Manager, cookies *CookieCodec, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		holder:   holder,
		sessions: sessions,
		cookies:  cookies,
		logger:   log,
	}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailRequest carries a single email address.
type EmailRequest struct {
	Email string `json:"email"`
}

// TokenRequest carries a single verification token.
type TokenRequest struct {
	Token string `json:"token"`
}

// ResetPasswordRequest carries the new password.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// UpdateProfileRequest represents a profile update. Nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
}

// ProfileResponse is the signed-in user as returned by the API.
type ProfileResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        user.Role `json:"role"`
	IsVerified  bool      `json:"isVerified"`
	LastLogin   string    `json:"lastLogin,omitempty"`
	Phone       string    `json:"phone"`
	Department  string    `json:"department"`
	Avatar      string    `json:"avatar"`
	DisplayName string    `json:"displayName"`
}

func toProfile(u user.User) (ProfileResponse, error) {
	var p ProfileResponse
	if err := copier.Copy(&p, &u); err != nil {
		return p, err
	}
	p.DisplayName = u.DisplayName()
	return p, nil
}

func (h *AuthHandler) respondProfile(w http.ResponseWriter, r *http.Request, u user.User) {
	p, err := toProfile(u)
	if err != nil {
		h.logger.Error(r.Context(), "failed to map profile", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Login signs in against the auth backend and starts a browser session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if !h.holder.Login(r.Context(), req.Email, req.Password) {
		respondError(w, http.StatusUnauthorized, h.holder.LastError())
		return
	}
	u, _ := h.holder.CurrentUser()

	sess := h.sessions.Create(u)
	if err := h.cookies.Set(w, sess.ID); err != nil {
		h.logger.Error(r.Context(), "failed to set session cookie", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	h.respondProfile(w, r, u)
}

// Logout ends the backend session and every browser session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.holder.Logout(r.Context()); err != nil {
		h.logger.Error(r.Context(), "failed to clear stored session", map[string]interface{}{"error": err.Error()})
	}
	h.sessions.DeleteAll()
	h.cookies.Clear(w)
	respondSuccess(w, "logged out successfully")
}

// Me returns the signed-in user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.holder.CurrentUser()
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.respondProfile(w, r, u)
}

// UpdateProfile edits the signed-in user's name and contact fields.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.holder.UpdateProfile(r.Context(), func(u *user.User) error {
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Department != nil {
			u.Department = *req.Department
		}
		if req.Avatar != nil {
			u.Avatar = *req.Avatar
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		h.logger.Error(r.Context(), "failed to update profile", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	h.respondProfile(w, r, u)
}

func (h *AuthHandler) relay(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		respondError(w, http.StatusBadGateway, msg)
		return
	}
	respondSuccess(w, msg)
}

// VerifyEmail forwards an email verification token to the backend.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := parseJSON(r, &req, h.logger); err != nil || req.Token == "" {
		respondError(w, http.StatusBadRequest, "token is required")
		return
	}
	msg, err := h.holder.VerifyEmail(r.Context(), req.Token)
	h.relay(w, msg, err)
}

// ResendVerification asks the backend to resend the verification email.
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := parseJSON(r, &req, h.logger); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	msg, err := h.holder.ResendVerification(r.Context(), req.Email)
	h.relay(w, msg, err)
}

// ForgotPassword starts a password reset.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := parseJSON(r, &req, h.logger); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	msg, err := h.holder.ForgotPassword(r.Context(), req.Email)
	h.relay(w, msg, err)
}

// ResetPassword completes a password reset for the token in the path.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := parseJSON(r, &req, h.logger); err != nil || req.Password == "" {
		respondError(w, http.StatusBadRequest, "password is required")
		return
	}
	msg, err := h.holder.ResetPassword(r.Context(), mux.Vars(r)["token"], req.Password)
	h.relay(w, msg, err)
}
