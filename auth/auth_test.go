package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/testutil"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// backend serves canned responses keyed by path and records request bodies.
type backend struct {
	responses map[string]response
	requests  map[string]map[string]string
}

type response struct {
	status int
	body   string
}

func newBackend(t *testing.T, responses map[string]response) (*backend, *httptest.Server) {
	b := &backend{responses: responses, requests: map[string]map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.requests[r.URL.Path] = body
		res, ok := b.responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(res.status)
		_, _ = w.Write([]byte(res.body))
	}))
	t.Cleanup(srv.Close)
	return b, srv
}

func newHolder(t *testing.T, baseURL string, slots kvstore.Slots) *Holder {
	h, err := New(context.Background(), Config{BaseURL: baseURL, Timeout: 2 * time.Second}, slots, logger.NewTestLogger(), func() time.Time { return fixedNow })
	require.NoError(t, err)
	return h
}

func TestNew_Validation(t *testing.T) {
	_, err := New(context.Background(), Config{}, kvstore.NewMemorySlots(), nil, nil)
	assert.ErrorIs(t, err, ErrMissingBaseURL)

	_, err = New(context.Background(), Config{BaseURL: "http://localhost"}, nil, nil, nil)
	assert.Error(t, err)
}

func TestLogin_TokenFieldVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"token", `{"token":"abc","user":{"email":"jane@example.com"}}`},
		{"accessToken", `{"accessToken":"abc","user":{"email":"jane@example.com"}}`},
		{"access_token", `{"access_token":"abc","user":{"email":"jane@example.com"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newBackend(t, map[string]response{"/auth/login": {http.StatusOK, tt.body}})
			h := newHolder(t, srv.URL, kvstore.NewMemorySlots())

			require.True(t, h.Login(context.Background(), "jane@example.com", "secret"))
			assert.Equal(t, "abc", h.Token())
			assert.True(t, h.IsAuthenticated())
			assert.Empty(t, h.LastError())
		})
	}
}

func TestLogin_NormalizesUser(t *testing.T) {
	b, srv := newBackend(t, map[string]response{
		"/auth/login": {http.StatusOK, `{"token":"abc","user":{"id":42,"email":"jane.doe@example.com","first_name":"Jane"}}`},
	})
	slots := kvstore.NewMemorySlots()
	h := newHolder(t, srv.URL, slots)

	require.True(t, h.Login(context.Background(), "jane.doe@example.com", "secret"))
	assert.Equal(t, map[string]string{"email": "jane.doe@example.com", "password": "secret"}, b.requests["/auth/login"])

	u, ok := h.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "42", u.ID)
	assert.Equal(t, "Jane", u.FirstName)
	assert.Equal(t, "jane.doe", u.Username)
	assert.Equal(t, user.DefaultRole, u.Role)
	assert.Equal(t, "2024-05-01T09:30:00.000Z", u.LastLogin)
	assert.Equal(t, "2024-05-01T09:30:00.000Z", u.CreatedAt)

	token, err := slots.Get(context.Background(), TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	raw, err := slots.Get(context.Background(), UserKey)
	require.NoError(t, err)
	var stored user.User
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, u, stored)
}

func TestLogin_MissingUserFallsBackToEmail(t *testing.T) {
	_, srv := newBackend(t, map[string]response{"/auth/login": {http.StatusOK, `{"token":"abc"}`}})
	h := newHolder(t, srv.URL, kvstore.NewMemorySlots())

	require.True(t, h.Login(context.Background(), "sam@example.com", "pw"))
	u, _ := h.CurrentUser()
	assert.Equal(t, "sam@example.com", u.Email)
	assert.Equal(t, "sam", u.Username)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		res     response
		wantMsg string
	}{
		{"backend message", response{http.StatusUnauthorized, `{"message":"Invalid email or password"}`}, "Invalid email or password"},
		{"no message", response{http.StatusInternalServerError, `oops`}, GenericLoginError},
		{"success without token", response{http.StatusOK, `{"user":{"email":"a@b.co"}}`}, GenericLoginError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newBackend(t, map[string]response{"/auth/login": tt.res})
			slots := kvstore.NewMemorySlots()
			h := newHolder(t, srv.URL, slots)

			assert.False(t, h.Login(context.Background(), "a@b.co", "pw"))
			assert.Equal(t, tt.wantMsg, h.LastError())
			assert.False(t, h.IsAuthenticated())
			assert.Empty(t, slots.Keys())
		})
	}
}

func TestLogin_NetworkError(t *testing.T) {
	_, srv := newBackend(t, nil)
	url := srv.URL
	srv.Close()

	h := newHolder(t, url, kvstore.NewMemorySlots())
	assert.False(t, h.Login(context.Background(), "a@b.co", "pw"))
	assert.Equal(t, GenericLoginError, h.LastError())
}

func TestLogin_PersistFailure(t *testing.T) {
	_, srv := newBackend(t, map[string]response{"/auth/login": {http.StatusOK, `{"token":"abc"}`}})
	slots := testutil.NewFailingSlots()
	slots.FailSet = true
	h := newHolder(t, srv.URL, slots)

	assert.False(t, h.Login(context.Background(), "a@b.co", "pw"))
	assert.False(t, h.IsAuthenticated())
	assert.Equal(t, GenericRequestError, h.LastError())
}

func TestLogout_ClearsSlots(t *testing.T) {
	_, srv := newBackend(t, map[string]response{"/auth/login": {http.StatusOK, `{"token":"abc"}`}})
	slots := kvstore.NewMemorySlots()
	h := newHolder(t, srv.URL, slots)
	require.True(t, h.Login(context.Background(), "a@b.co", "pw"))
	require.NotEmpty(t, slots.Keys())

	require.NoError(t, h.Logout(context.Background()))
	assert.False(t, h.IsAuthenticated())
	assert.Empty(t, h.Token())
	_, ok := h.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, slots.Keys())
}

func TestNew_RestoresSession(t *testing.T) {
	_, srv := newBackend(t, map[string]response{"/auth/login": {http.StatusOK, `{"token":"abc","user":{"email":"jane@example.com","role":"Manager"}}`}})
	slots := kvstore.NewMemorySlots()
	first := newHolder(t, srv.URL, slots)
	require.True(t, first.Login(context.Background(), "jane@example.com", "pw"))

	second := newHolder(t, srv.URL, slots)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "abc", second.Token())
	u, _ := second.CurrentUser()
	assert.Equal(t, user.RoleManager, u.Role)
}

func TestNew_IgnoresCorruptSession(t *testing.T) {
	slots := kvstore.NewMemorySlots()
	ctx := context.Background()
	require.NoError(t, slots.Set(ctx, TokenKey, "abc"))
	require.NoError(t, slots.Set(ctx, UserKey, "{not json"))

	h := newHolder(t, "http://localhost", slots)
	assert.False(t, h.IsAuthenticated())
}

func TestUpdateProfile(t *testing.T) {
	_, srv := newBackend(t, map[string]response{"/auth/login": {http.StatusOK, `{"token":"abc"}`}})
	slots := kvstore.NewMemorySlots()
	h := newHolder(t, srv.URL, slots)
	ctx := context.Background()

	_, err := h.UpdateProfile(ctx, user.SetName("Jane", "Doe"))
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.True(t, h.Login(ctx, "jane@example.com", "pw"))
	u, err := h.UpdateProfile(ctx, user.SetName("Jane", "Doe"), user.SetProfile("555-0100", "QA", ""))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.DisplayName())

	restored := newHolder(t, srv.URL, slots)
	got, _ := restored.CurrentUser()
	assert.Equal(t, "QA", got.Department)

	_, err = h.UpdateProfile(ctx, user.SetRole("superuser"))
	assert.ErrorIs(t, err, user.ErrInvalidRole)
	current, _ := h.CurrentUser()
	assert.Equal(t, user.DefaultRole, current.Role)
}

func TestUpdateProfile_Latency(t *testing.T) {
	slots := kvstore.NewMemorySlots()
	ctx := context.Background()
	raw, _ := json.Marshal(user.User{Email: "jane@example.com", Username: "jane", Role: user.RoleTester})
	require.NoError(t, slots.Set(ctx, TokenKey, "abc"))
	require.NoError(t, slots.Set(ctx, UserKey, string(raw)))

	h, err := New(ctx, Config{BaseURL: "http://localhost", Latency: time.Hour}, slots, nil, nil)
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = h.UpdateProfile(cancelled, user.SetName("Jane", "Doe"))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPasswordFlows(t *testing.T) {
	b, srv := newBackend(t, map[string]response{
		"/auth/verify-email":         {http.StatusOK, `{"message":"Email verified"}`},
		"/auth/resend-verification":  {http.StatusOK, `{}`},
		"/auth/forgot-password":      {http.StatusBadRequest, `{"message":"Unknown email"}`},
		"/auth/reset-password/tok-1": {http.StatusOK, `{"message":"Password updated"}`},
	})
	h := newHolder(t, srv.URL, kvstore.NewMemorySlots())
	ctx := context.Background()

	msg, err := h.VerifyEmail(ctx, "verify-1")
	require.NoError(t, err)
	assert.Equal(t, "Email verified", msg)
	assert.Equal(t, "verify-1", b.requests["/auth/verify-email"]["token"])

	msg, err = h.ResendVerification(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Verification email sent.", msg)

	msg, err = h.ForgotPassword(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrBackend)
	assert.Equal(t, "Unknown email", msg)

	msg, err = h.ResetPassword(ctx, "tok-1", "n3w-pass")
	require.NoError(t, err)
	assert.Equal(t, "Password updated", msg)
	assert.Equal(t, "n3w-pass", b.requests["/auth/reset-password/tok-1"]["password"])
}

func TestTokenFrom(t *testing.T) {
	assert.Equal(t, "a", tokenFrom(`{"token":"a","accessToken":"b"}`))
	assert.Equal(t, "b", tokenFrom(`{"token":"","accessToken":"b"}`))
	assert.Equal(t, "", tokenFrom(`{"token":123}`))
	assert.Equal(t, "", tokenFrom(`not json`))
}
