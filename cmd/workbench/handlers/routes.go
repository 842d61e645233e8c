package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-workbench/app"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugbash"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugreport"
	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/qareport"
	"github.com/hairizuanbinnoorazman/qa-workbench/rtm"
	"github.com/hairizuanbinnoorazman/qa-workbench/session"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/hairizuanbinnoorazman/qa-workbench/testplan"
	"github.com/hairizuanbinnoorazman/qa-workbench/testsuite"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the public auth routes, /health, /metrics and the
// session-protected /api/v1 resources.
func NewRouter(a *app.App, sessions *session.Manager, cookies *CookieCodec) *mux.Router {
	log := a.Log
	router := mux.NewRouter()
	router.Use(RequestLogger(log))

	router.HandleFunc("/health", NewHealthHandler(a.Slots, log).Check).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	authHandler := NewAuthHandler(a.Auth, sessions, cookies, log)
	router.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/verify-email", authHandler.VerifyEmail).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/resend-verification", authHandler.ResendVerification).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/reset-password/{token}", authHandler.ResetPassword).Methods(http.MethodPost)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(NewAuthMiddleware(sessions, cookies, log).Handler)
	api.Use(WriteRoleMiddleware)

	api.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", authHandler.UpdateProfile).Methods(http.MethodPut)

	actions := NewActionHandler(a.TestCases, a.TestSuites, a.BugReports, a.QAReports, a.RTM, log)
	api.HandleFunc("/testcases/stats", actions.TestCaseStats).Methods(http.MethodGet)
	api.HandleFunc("/testsuites/{id}/cases", actions.AddSuiteCase).Methods(http.MethodPost)
	api.HandleFunc("/testsuites/{id}/cases/{caseId}", actions.RemoveSuiteCase).Methods(http.MethodDelete)
	api.HandleFunc("/bugreports/{id}/resolve", actions.ResolveBug).Methods(http.MethodPost)
	api.HandleFunc("/bugreports/{id}/reopen", actions.ReopenBug).Methods(http.MethodPost)
	api.HandleFunc("/qareports/{id}/sync-bugs", actions.SyncReportBugs).Methods(http.MethodPost)
	api.HandleFunc("/rtm/coverage", actions.Coverage).Methods(http.MethodGet)
	api.HandleFunc("/rtm/summary", actions.CoverageSummary).Methods(http.MethodGet)
	api.HandleFunc("/rtm/generate", actions.GenerateMatrix).Methods(http.MethodPost)

	docs := NewDocumentHandler(a.QAReports, a.TestPlans, a.Blobs, log)
	api.HandleFunc("/qareports/{id}/pdf", docs.QAReportPDF).Methods(http.MethodGet)
	api.HandleFunc("/testplans/{id}/pdf", docs.TestPlanPDF).Methods(http.MethodGet)

	registerResources(api, a)
	return router
}

func query(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func registerResources(api *mux.Router, a *app.App) {
	log, now := a.Log, a.Now
	casesFn := func() []testcase.TestCase { return a.TestCases.List(context.Background()) }

	(&Resource[testcase.TestCase]{
		Name:  "test case",
		Store: a.TestCases,
		Form:  func() *form.Controller[testcase.TestCase] { return testcase.NewForm(a.TestCases, now) },
		Filter: func(r *http.Request, cases []testcase.TestCase) []testcase.TestCase {
			var status testcase.Status
			if s := query(r, "status"); s != "" {
				status = testcase.ParseStatus(s)
			}
			return testcase.Search(cases, query(r, "q"), status)
		},
		Columns:      testcase.Columns,
		ExportPrefix: testcase.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/testcases")

	(&Resource[testsuite.TestSuite]{
		Name:  "test suite",
		Store: a.TestSuites,
		Form:  func() *form.Controller[testsuite.TestSuite] { return testsuite.NewForm(a.TestSuites, now) },
		Filter: func(r *http.Request, suites []testsuite.TestSuite) []testsuite.TestSuite {
			return testsuite.Search(suites, query(r, "q"))
		},
		Columns:      testsuite.Columns,
		ExportPrefix: testsuite.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/testsuites")

	(&Resource[testplan.TestPlan]{
		Name:  "test plan",
		Store: a.TestPlans,
		Form:  func() *form.Controller[testplan.TestPlan] { return testplan.NewForm(a.TestPlans, now) },
		Filter: func(r *http.Request, plans []testplan.TestPlan) []testplan.TestPlan {
			return testplan.Search(plans, query(r, "q"))
		},
		Columns:      testplan.Columns,
		ExportPrefix: testplan.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/testplans")

	(&Resource[bugreport.BugReport]{
		Name:  "bug report",
		Store: a.BugReports,
		Form:  func() *form.Controller[bugreport.BugReport] { return bugreport.NewForm(a.BugReports, now) },
		Filter: func(r *http.Request, bugs []bugreport.BugReport) []bugreport.BugReport {
			return bugreport.Search(bugs, bugreport.Filter{
				Query:    query(r, "q"),
				Severity: bugreport.Level(query(r, "severity")),
				Priority: bugreport.Level(query(r, "priority")),
				Status:   bugreport.Status(query(r, "status")),
				Module:   query(r, "module"),
			})
		},
		Columns:      bugreport.Columns,
		ExportPrefix: bugreport.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/bugreports")

	(&Resource[bugbash.BugBash]{
		Name:  "bug bash",
		Store: a.BugBashes,
		Form:  func() *form.Controller[bugbash.BugBash] { return bugbash.NewForm(a.BugBashes, now) },
		Filter: func(r *http.Request, bashes []bugbash.BugBash) []bugbash.BugBash {
			return bugbash.Search(bashes, query(r, "q"), bugbash.Status(query(r, "status")), now())
		},
		Columns:      func() []spreadsheet.Column[bugbash.BugBash] { return bugbash.Columns(now) },
		ExportPrefix: bugbash.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/bugbashes")

	(&Resource[qareport.QaReport]{
		Name:  "qa report",
		Store: a.QAReports,
		Form:  func() *form.Controller[qareport.QaReport] { return qareport.NewForm(a.QAReports, now) },
		Filter: func(r *http.Request, reports []qareport.QaReport) []qareport.QaReport {
			return qareport.Search(reports, query(r, "q"), qareport.RagStatus(query(r, "rag")))
		},
		Columns:      qareport.Columns,
		ExportPrefix: qareport.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/qareports")

	(&Resource[rtm.Entry]{
		Name:  "traceability entry",
		Store: a.RTM,
		Form:  func() *form.Controller[rtm.Entry] { return rtm.NewForm(a.RTM, now) },
		Filter: func(r *http.Request, entries []rtm.Entry) []rtm.Entry {
			return rtm.Search(entries, a.TestCases.List(r.Context()), query(r, "q"), rtm.Coverage(query(r, "coverage")))
		},
		Columns:      func() []spreadsheet.Column[rtm.Entry] { return rtm.Columns(casesFn) },
		ExportPrefix: rtm.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/rtm")

	(&Resource[user.User]{
		Name:         "user",
		Store:        a.Users,
		Form:         func() *form.Controller[user.User] { return user.NewForm(a.Users, now) },
		Columns:      user.Columns,
		ExportPrefix: user.ExportPrefix,
		Now:          now,
		Logger:       log,
	}).Register(api, "/users")
}
