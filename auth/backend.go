package auth

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/user"
	"github.com/tidwall/gjson"
)

// tokenFromPaths lists the response fields a token may arrive in.
var tokenFromPaths = []string{"token", "accessToken", "access_token"}

func tokenFrom(body string) string {
	for _, p := range tokenFromPaths {
		if v := gjson.Get(body, p); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}

func backendMessage(body, fallback string) string {
	if !gjson.Valid(body) {
		return fallback
	}
	if m := strings.TrimSpace(gjson.Get(body, "message").String()); m != "" {
		return m
	}
	return fallback
}

// str returns the first non-empty string among paths.
func str(u gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := u.Get(p); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// userFrom maps a backend user object onto User. Numeric ids are accepted
// and snake_case field names are tolerated. A missing email falls back to
// the one used to sign in.
func userFrom(u gjson.Result, email string) user.User {
	out := user.User{
		ID:         str(u, "id", "_id"),
		FirstName:  str(u, "firstName", "first_name"),
		LastName:   str(u, "lastName", "last_name"),
		Username:   str(u, "username"),
		Email:      str(u, "email"),
		Role:       user.Role(str(u, "role")),
		IsVerified: u.Get("isVerified").Bool() || u.Get("is_verified").Bool(),
		VerifiedAt: str(u, "verifiedAt", "verified_at"),
		CreatedAt:  str(u, "createdAt", "created_at"),
		Phone:      str(u, "phone"),
		Department: str(u, "department"),
		Avatar:     str(u, "avatar"),
	}
	if out.Email == "" {
		out.Email = email
	}
	return out
}

// VerifyEmail confirms an email address with the token sent to it.
func (h *Holder) VerifyEmail(ctx context.Context, token string) (string, error) {
	return h.post(ctx, "/auth/verify-email", map[string]string{"token": token}, "Email verified successfully.")
}

// ResendVerification asks the backend to send a new verification email.
func (h *Holder) ResendVerification(ctx context.Context, email string) (string, error) {
	return h.post(ctx, "/auth/resend-verification", map[string]string{"email": email}, "Verification email sent.")
}

// ForgotPassword starts a password reset for email.
func (h *Holder) ForgotPassword(ctx context.Context, email string) (string, error) {
	return h.post(ctx, "/auth/forgot-password", map[string]string{"email": email}, "Password reset instructions sent.")
}

// ResetPassword sets a new password using a reset token.
func (h *Holder) ResetPassword(ctx context.Context, token, password string) (string, error) {
	return h.post(ctx, "/auth/reset-password/"+url.PathEscape(token), map[string]string{"password": password}, "Password has been reset.")
}

// post sends body and returns the backend's message, or success when it
// sends none. Failures return the message to show alongside ErrBackend.
func (h *Holder) post(ctx context.Context, path string, body interface{}, success string) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetBody(body).Post(h.baseURL + path)
	if err != nil {
		h.log.Warn(ctx, "auth backend unreachable", map[string]interface{}{"path": path, "error": err.Error()})
		return GenericRequestError, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	raw := string(resp.Body())
	if resp.IsError() {
		msg := backendMessage(raw, GenericRequestError)
		h.log.Warn(ctx, "auth backend rejected request", map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode(),
		})
		return msg, fmt.Errorf("%w: %d %s", ErrBackend, resp.StatusCode(), msg)
	}
	return backendMessage(raw, success), nil
}
