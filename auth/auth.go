// Package auth holds the signed-in user and bearer token obtained from the
// external authentication backend.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/metrics"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
	"github.com/tidwall/gjson"
)

// Slot keys holding the persisted session.
const (
	TokenKey = "auth-token"
	UserKey  = "auth-user"
)

// Messages shown when the backend gives no message of its own.
const (
	GenericLoginError   = "Login failed. Please check your credentials and try again."
	GenericRequestError = "Something went wrong. Please try again later."
)

var (
	// ErrNotAuthenticated is returned by operations that need a signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrBackend wraps failed calls to the auth backend.
	ErrBackend = errors.New("auth backend request failed")

	// ErrMissingBaseURL is returned when no backend URL is configured.
	ErrMissingBaseURL = errors.New("auth backend URL is required")
)

// Config configures the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Latency delays profile updates to mimic a backend round trip.
	Latency time.Duration
}

// Holder keeps at most one current user and token, mirrored to the
// auth-token and auth-user slots.
type Holder struct {
	mu      sync.RWMutex
	client  *resty.Client
	baseURL string
	latency time.Duration
	slots   kvstore.Slots
	log     logger.Logger
	now     func() time.Time

	token   string
	current *user.User
	lastErr string
}

// New returns a Holder and restores any session persisted in slots.
func New(ctx context.Context, cfg Config, slots kvstore.Slots, log logger.Logger, now func() time.Time) (*Holder, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	if slots == nil {
		return nil, errors.New("auth: slots are required")
	}
	if log == nil {
		log = logger.Noop()
	}
	if now == nil {
		now = time.Now
	}
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	h := &Holder{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		latency: cfg.Latency,
		slots:   slots,
		log:     log.WithField("component", "auth"),
		now:     now,
	}
	h.restore(ctx)
	return h, nil
}

func (h *Holder) restore(ctx context.Context) {
	token, err := h.slots.Get(ctx, TokenKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrSlotNotFound) {
			h.log.Warn(ctx, "failed to read session token", map[string]interface{}{"error": err.Error()})
		}
		return
	}
	raw, err := h.slots.Get(ctx, UserKey)
	if err != nil {
		h.log.Warn(ctx, "session token without user, ignoring", map[string]interface{}{"error": err.Error()})
		return
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		h.log.Warn(ctx, "corrupt session user, ignoring", map[string]interface{}{"error": err.Error()})
		return
	}
	h.token = token
	h.current = &u
	h.log.Info(ctx, "session restored", map[string]interface{}{"email": u.Email})
}

// Login exchanges credentials for a token. It never returns an error:
// failures yield false and a message available from LastError.
func (h *Holder) Login(ctx context.Context, email, password string) bool {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post(h.baseURL + "/auth/login")
	if err != nil {
		h.fail(ctx, "error", GenericLoginError, err)
		return false
	}
	body := string(resp.Body())
	if resp.IsError() {
		h.fail(ctx, "rejected", backendMessage(body, GenericLoginError), nil)
		return false
	}

	token := tokenFrom(body)
	if token == "" {
		h.fail(ctx, "rejected", backendMessage(body, GenericLoginError), nil)
		return false
	}
	u := user.Normalize(userFrom(gjson.Get(body, "user"), email), h.now())
	u.LastLogin = idgen.ISO(h.now())

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.persistLocked(ctx, token, u); err != nil {
		h.lastErr = GenericRequestError
		metrics.Logins.WithLabelValues("error").Inc()
		return false
	}
	h.token = token
	h.current = &u
	h.lastErr = ""
	metrics.Logins.WithLabelValues("success").Inc()
	h.log.Info(ctx, "user logged in", map[string]interface{}{"email": u.Email, "role": string(u.Role)})
	return true
}

func (h *Holder) fail(ctx context.Context, outcome, msg string, err error) {
	h.mu.Lock()
	h.lastErr = msg
	h.mu.Unlock()
	metrics.Logins.WithLabelValues(outcome).Inc()
	fields := map[string]interface{}{"outcome": outcome, "message": msg}
	if err != nil {
		fields["error"] = err.Error()
	}
	h.log.Warn(ctx, "login failed", fields)
}

// Logout forgets the current session in memory and in the slots.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
	h.current = nil
	h.lastErr = ""
	var errs []error
	for _, key := range []string{TokenKey, UserKey} {
		if err := h.slots.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("failed to clear %s: %w", key, err))
		}
	}
	h.log.Info(ctx, "user logged out", nil)
	return errors.Join(errs...)
}

// LastError returns the message of the most recent failed login.
func (h *Holder) LastError() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastErr
}

// CurrentUser returns a copy of the signed-in user.
func (h *Holder) CurrentUser() (user.User, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return user.User{}, false
	}
	return *h.current, true
}

// Token returns the bearer token, empty when signed out.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// IsAuthenticated reports whether a token and user are held.
func (h *Holder) IsAuthenticated() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token != "" && h.current != nil
}

// UpdateProfile applies setters to the current user after the configured
// latency and persists the result. The held user is unchanged on error.
func (h *Holder) UpdateProfile(ctx context.Context, setters ...user.UpdateSetter) (user.User, error) {
	if h.latency > 0 {
		timer := time.NewTimer(h.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return user.User{}, ctx.Err()
		case <-timer.C:
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return user.User{}, ErrNotAuthenticated
	}
	u := *h.current
	for _, set := range setters {
		if err := set(&u); err != nil {
			return user.User{}, err
		}
	}
	if err := u.Validate(); err != nil {
		return user.User{}, err
	}
	if err := h.persistLocked(ctx, h.token, u); err != nil {
		return user.User{}, err
	}
	h.current = &u
	h.log.Info(ctx, "profile updated", map[string]interface{}{"email": u.Email})
	return u, nil
}

func (h *Holder) persistLocked(ctx context.Context, token string, u user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := h.slots.Set(ctx, TokenKey, token); err != nil {
		h.log.Error(ctx, "failed to persist session token", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("failed to persist session: %w", err)
	}
	if err := h.slots.Set(ctx, UserKey, string(raw)); err != nil {
		h.log.Error(ctx, "failed to persist session user", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
