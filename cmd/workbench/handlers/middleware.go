package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/session"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// SessionKey is the context key for the authenticated session.
	SessionKey ContextKey = "session"
)

// AuthMiddleware validates the signed session cookie and adds the session
// to the request context.
type AuthMiddleware struct {
	sessions *session.Manager
	cookies  *CookieCodec
	logger   logger.Logger
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(sessions *session.Manager, cookies *CookieCodec, log logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		cookies:  cookies,
		logger:   log,
	}
}

// Handler wraps an HTTP handler with authentication.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := m.cookies.Read(r)
		if err != nil {
			m.logger.Warn(r.Context(), "missing or invalid session cookie", map[string]interface{}{
				"path":  r.URL.Path,
				"error": err.Error(),
			})
			respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		sess, err := m.sessions.Get(sessionID)
		if err != nil {
			m.logger.Warn(r.Context(), "invalid or expired session", map[string]interface{}{
				"error":      err.Error(),
				"session_id": sessionID,
			})
			respondError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession extracts the session from the request context.
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}

// RequireWriteRole checks that the caller may mutate data. Viewers are
// read-only; requests without a session are refused.
func RequireWriteRole(w http.ResponseWriter, r *http.Request) bool {
	sess, ok := GetSession(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	if sess.Role == user.RoleViewer {
		respondError(w, http.StatusForbidden, "write access required")
		return false
	}
	return true
}

// WriteRoleMiddleware enforces RequireWriteRole for state-mutating HTTP
// methods. GET and HEAD requests pass through.
func WriteRoleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch:
			if !RequireWriteRole(w, r) {
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with an ID and logs its outcome.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)
			ctx := logger.WithRequestID(r.Context(), id)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			log.Debug(ctx, "request served", map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
