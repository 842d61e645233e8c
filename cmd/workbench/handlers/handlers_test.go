package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/app"
	"github.com/hairizuanbinnoorazman/qa-workbench/auth"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/session"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/hairizuanbinnoorazman/qa-workbench/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// fakeAuthBackend accepts any password except "wrong" and returns role as
// the user's role.
func fakeAuthBackend(t *testing.T, role string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] == "wrong" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
				return
			}
			_, _ = w.Write([]byte(`{"accessToken":"tok","user":{"id":7,"email":"` + body["email"] + `","role":"` + role + `"}}`))
		case "/auth/forgot-password":
			_, _ = w.Write([]byte(`{"message":"Check your inbox"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type harness struct {
	server *httptest.Server
	client *http.Client
	app    *app.App
}

func newHarness(t *testing.T, role string) *harness {
	backend := fakeAuthBackend(t, role)
	ctx := context.Background()
	a, err := app.New(ctx, app.Config{
		Slots:   kvstore.Config{Backend: "memory"},
		Storage: storage.Config{Type: "local", BaseDir: t.TempDir()},
		Auth:    auth.Config{BaseURL: backend.URL},
		Now:     func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) },
	}, logger.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	sessions := session.NewManager(time.Hour, a.Log, nil)
	cookies := NewCookieCodec("workbench_session", testSecret, false)
	srv := httptest.NewServer(NewRouter(a, sessions, cookies))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &harness{server: srv, client: &http.Client{Jar: jar}, app: a}
}

func (h *harness) do(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, h.server.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := h.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (h *harness) login(t *testing.T) {
	resp, body := h.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "jane@example.com", Password: "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
}

func errorMessage(t *testing.T, body []byte) string {
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	return e.Error
}

func TestHealth(t *testing.T) {
	h := newHarness(t, "tester")
	resp, body := h.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","slots":"ok"}`, string(body))
}

func TestHealth_SlotsUnreachable(t *testing.T) {
	slots := testutil.NewFailingSlots()
	slots.FailGet = true
	log := logger.NewTestLogger()

	rec := httptest.NewRecorder()
	NewHealthHandler(slots, log).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","slots":"unreachable"}`, rec.Body.String())
	assert.Len(t, log.EntriesWithLevel("error"), 1)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t, "tester")
	resp, body := h.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestAPI_RequiresSession(t *testing.T) {
	h := newHarness(t, "tester")
	resp, _ := h.do(t, http.MethodGet, "/api/v1/testcases", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	h := newHarness(t, "manager")

	resp, body := h.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password", errorMessage(t, body))

	resp, body = h.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	h.login(t)
	resp, body = h.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p ProfileResponse
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "jane", p.Username)
	assert.Equal(t, "jane", p.DisplayName)
	assert.Equal(t, "manager", string(p.Role))
}

func TestLogout(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)
	require.True(t, h.app.Auth.IsAuthenticated())

	resp, _ := h.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, h.app.Auth.IsAuthenticated())

	resp, _ = h.do(t, http.MethodGet, "/api/v1/testcases", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	first, last := "Jane", "Doe"
	resp, body := h.do(t, http.MethodPut, "/api/v1/auth/profile", UpdateProfileRequest{FirstName: &first, LastName: &last})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var p ProfileResponse
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "Jane Doe", p.DisplayName)
}

func TestForgotPassword(t *testing.T) {
	h := newHarness(t, "tester")
	resp, body := h.do(t, http.MethodPost, "/api/v1/auth/forgot-password", EmailRequest{Email: "jane@example.com"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Check your inbox"}`, string(body))

	resp, _ = h.do(t, http.MethodPost, "/api/v1/auth/verify-email", TokenRequest{Token: "abc"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestTestCaseCRUD(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	resp, body := h.do(t, http.MethodGet, "/api/v1/testcases", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Items []testcase.TestCase `json:"items"`
		Total int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, len(testcase.Seed()), list.Total)

	resp, body = h.do(t, http.MethodPost, "/api/v1/testcases", map[string]string{"id": "TC-100"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "please fill in all required fields: title", errorMessage(t, body))

	resp, body = h.do(t, http.MethodPost, "/api/v1/testcases", map[string]string{"id": "TC-100", "title": "Logout clears session"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created testcase.TestCase
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, testcase.StatusNotRun, created.Status)

	resp, body = h.do(t, http.MethodPut, "/api/v1/testcases/TC-100", map[string]string{"status": "Passed"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	got, ok := h.app.TestCases.Get(context.Background(), "TC-100")
	require.True(t, ok)
	assert.Equal(t, testcase.StatusPassed, got.Status)
	assert.Equal(t, "Logout clears session", got.Title)

	resp, _ = h.do(t, http.MethodPut, "/api/v1/testcases/TC-404", map[string]string{"status": "Passed"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = h.do(t, http.MethodDelete, "/api/v1/testcases/TC-100", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_, ok = h.app.TestCases.Get(context.Background(), "TC-100")
	assert.True(t, ok)

	resp, _ = h.do(t, http.MethodDelete, "/api/v1/testcases/TC-100?confirm=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = h.do(t, http.MethodDelete, "/api/v1/testcases/TC-100?confirm=true", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = h.do(t, http.MethodGet, "/api/v1/testcases/TC-100", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTestCaseFilter(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	resp, body := h.do(t, http.MethodGet, "/api/v1/testcases?status=failed", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Total)
}

func TestViewerIsReadOnly(t *testing.T) {
	h := newHarness(t, "viewer")
	h.login(t)

	resp, _ := h.do(t, http.MethodGet, "/api/v1/bugreports", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/v1/bugreports", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestExportAndImport(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	resp, body := h.do(t, http.MethodGet, "/api/v1/testcases/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, spreadsheet.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "TestCases_2024-05-01.xlsx")
	assert.NotEmpty(t, body)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "cases.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Test Case ID,Title,Status\nTC-900,Imported one,Passed\n,Imported two,\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, h.server.URL+"/api/v1/testcases/import", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := h.client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var out ImportResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, 2, out.Imported)
	assert.Equal(t, len(testcase.Seed())+2, h.app.TestCases.Len())

	imported := testcase.Search(h.app.TestCases.List(context.Background()), "Imported two", "")
	require.Len(t, imported, 1)
	assert.True(t, strings.HasPrefix(imported[0].ID, "TC-IMP-"))
	assert.Equal(t, testcase.StatusNotRun, imported[0].Status)
}

func TestImport_RejectsUnknownFormat(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "cases.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("hello"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, h.server.URL+"/api/v1/testcases/import", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := h.client.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, len(testcase.Seed()), h.app.TestCases.Len())
}

func TestDocuments(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	resp, body := h.do(t, http.MethodGet, "/api/v1/qareports/QA-1715000000000/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))

	resp, body = h.do(t, http.MethodGet, "/api/v1/testplans/PLAN-1714550400000/pdf?archive=true", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var archived ArchiveResponse
	require.NoError(t, json.Unmarshal(body, &archived))
	assert.True(t, strings.HasPrefix(archived.Filename, "Test_Plan_"))
	ok, err := h.app.Blobs.Exists(context.Background(), "exports/"+archived.Filename)
	require.NoError(t, err)
	assert.True(t, ok)

	resp, _ = h.do(t, http.MethodGet, "/api/v1/qareports/QA-0/pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBugActions(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	resp, body := h.do(t, http.MethodPost, "/api/v1/bugreports/BUG-1714620000000/resolve", ResolveRequest{Date: "2024-05-03"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	bug, _ := h.app.BugReports.Get(context.Background(), "BUG-1714620000000")
	assert.Equal(t, "2024-05-03", bug.DateResolved)

	resp, _ = h.do(t, http.MethodPost, "/api/v1/bugreports/BUG-1714620000000/reopen", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bug, _ = h.app.BugReports.Get(context.Background(), "BUG-1714620000000")
	assert.Empty(t, bug.DateResolved)

	resp, _ = h.do(t, http.MethodPost, "/api/v1/bugreports/BUG-0/reopen", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/v1/qareports/QA-1715000000000/sync-bugs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rep, _ := h.app.QAReports.Get(context.Background(), "QA-1715000000000")
	assert.Len(t, rep.BugDetails, h.app.BugReports.Len())
}

func TestSuiteCases(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)
	ctx := context.Background()
	suiteID := h.app.TestSuites.List(ctx)[0].ID

	resp, body := h.do(t, http.MethodPost, "/api/v1/testsuites/"+suiteID+"/cases", SuiteCaseRequest{TestCaseID: "TC-003"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	suite, _ := h.app.TestSuites.Get(ctx, suiteID)
	var found bool
	for _, tc := range suite.TestCases {
		found = found || tc.ID == "TC-003"
	}
	assert.True(t, found)

	resp, _ = h.do(t, http.MethodDelete, "/api/v1/testsuites/"+suiteID+"/cases/TC-003", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	suite, _ = h.app.TestSuites.Get(ctx, suiteID)
	for _, tc := range suite.TestCases {
		assert.NotEqual(t, "TC-003", tc.ID)
	}
}

func TestMatrixRoutes(t *testing.T) {
	h := newHarness(t, "tester")
	h.login(t)

	resp, body := h.do(t, http.MethodGet, "/api/v1/rtm/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary map[string]int
	require.NoError(t, json.Unmarshal(body, &summary))
	total := 0
	for _, n := range summary {
		total += n
	}
	assert.Equal(t, h.app.RTM.Len(), total)

	resp, _ = h.do(t, http.MethodGet, "/api/v1/rtm/coverage", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/v1/rtm/generate", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = h.do(t, http.MethodPost, "/api/v1/rtm/generate?confirm=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var list ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, list.Total, h.app.RTM.Len())
}

func TestCookieCodec_RejectsTampering(t *testing.T) {
	codec := NewCookieCodec("sid", testSecret, false)
	w := httptest.NewRecorder()
	require.NoError(t, codec.Set(w, "session-1"))
	cookie := w.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	id, err := codec.Read(req)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)

	forged := httptest.NewRequest(http.MethodGet, "/", nil)
	forged.AddCookie(&http.Cookie{Name: "sid", Value: "session-1"})
	_, err = codec.Read(forged)
	assert.Error(t, err)

	_, err = codec.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoCookie)
}
