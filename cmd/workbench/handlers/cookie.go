package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
)

// ErrNoCookie is returned when the request carries no session cookie.
var ErrNoCookie = errors.New("session cookie missing")

// CookieCodec signs session IDs into cookies so they cannot be forged.
type CookieCodec struct {
	name   string
	secure bool
	codec  *securecookie.SecureCookie
}

// NewCookieCodec creates a codec signing with secret.
func NewCookieCodec(name, secret string, secure bool) *CookieCodec {
	return &CookieCodec{
		name:   name,
		secure: secure,
		codec:  securecookie.New([]byte(secret), nil),
	}
}

// Set writes the signed session cookie.
func (c *CookieCodec) Set(w http.ResponseWriter, sessionID string) error {
	encoded, err := c.codec.Encode(c.name, sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Read returns the session ID from a valid signed cookie.
func (c *CookieCodec) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return "", ErrNoCookie
	}
	var sessionID string
	if err := c.codec.Decode(c.name, cookie.Value, &sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Clear expires the session cookie.
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
