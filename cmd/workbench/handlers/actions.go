package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugreport"
	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/qareport"
	"github.com/hairizuanbinnoorazman/qa-workbench/rtm"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/hairizuanbinnoorazman/qa-workbench/testsuite"
)

// ActionHandler serves the operations that span more than one store or
// apply a single named setter.
type ActionHandler struct {
	cases   testcase.Store
	suites  testsuite.Store
	bugs    bugreport.Store
	reports qareport.Store
	matrix  rtm.Store
	logger  logger.Logger
}

// NewActionHandler creates a new action handler.
func NewActionHandler(cases testcase.Store, suites testsuite.Store, bugs bugreport.Store, reports qareport.Store, matrix rtm.Store, log logger.Logger) *ActionHandler {
	return &ActionHandler{
		cases:   cases,
		suites:  suites,
		bugs:    bugs,
		reports: reports,
		matrix:  matrix,
		logger:  log,
	}
}

// apply runs setters against the record at the path ID and responds with
// the updated record.
func apply[T any](h *ActionHandler, w http.ResponseWriter, r *http.Request, store entitystore.Repository[T], name string, setters ...entitystore.Setter[T]) {
	id := mux.Vars(r)["id"]
	n, err := store.Update(r.Context(), id, setters...)
	if err != nil {
		if isPersist(err) {
			h.logger.Error(r.Context(), "failed to update "+name, map[string]interface{}{"error": err.Error(), "id": id})
			respondError(w, http.StatusInternalServerError, "failed to update "+name)
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if n == 0 {
		respondError(w, http.StatusNotFound, name+" not found")
		return
	}
	rec, _ := store.Get(r.Context(), id)
	respondJSON(w, http.StatusOK, rec)
}

// ResolveRequest optionally names the resolution date.
type ResolveRequest struct {
	Date string `json:"date"`
}

// ResolveBug marks a bug resolved, today unless a date is given.
func (h *ActionHandler) ResolveBug(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if r.ContentLength > 0 {
		if err := parseJSON(r, &req, h.logger); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.Date == "" {
		req.Date = spreadsheet.Today()
	}
	apply[bugreport.BugReport](h, w, r, h.bugs, "bug report", bugreport.Resolve(req.Date))
}

// ReopenBug clears a bug's resolution date.
func (h *ActionHandler) ReopenBug(w http.ResponseWriter, r *http.Request) {
	apply[bugreport.BugReport](h, w, r, h.bugs, "bug report", bugreport.Reopen())
}

// SyncReportBugs rebuilds a QA report's defect figures from the bug list.
func (h *ActionHandler) SyncReportBugs(w http.ResponseWriter, r *http.Request) {
	bugs := h.bugs.List(r.Context())
	if module := r.URL.Query().Get("module"); module != "" {
		bugs = bugreport.Search(bugs, bugreport.Filter{Module: module})
	}
	apply[qareport.QaReport](h, w, r, h.reports, "qa report", qareport.FromBugReports(bugs))
}

// SuiteCaseRequest names a test case to add to a suite.
type SuiteCaseRequest struct {
	TestCaseID string `json:"testCaseId"`
}

// AddSuiteCase copies a test case into a suite.
func (h *ActionHandler) AddSuiteCase(w http.ResponseWriter, r *http.Request) {
	var req SuiteCaseRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tc, ok := h.cases.Get(r.Context(), req.TestCaseID)
	if !ok {
		respondError(w, http.StatusNotFound, "test case not found")
		return
	}
	apply[testsuite.TestSuite](h, w, r, h.suites, "test suite", testsuite.AddTestCase(tc))
}

// RemoveSuiteCase drops a test case from a suite.
func (h *ActionHandler) RemoveSuiteCase(w http.ResponseWriter, r *http.Request) {
	apply[testsuite.TestSuite](h, w, r, h.suites, "test suite", testsuite.RemoveTestCase(mux.Vars(r)["caseId"]))
}

// TestCaseStats counts test cases by status.
func (h *ActionHandler) TestCaseStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, testcase.CountByStatus(h.cases.List(r.Context())))
}

// CoverageResponse is one matrix row with its derived coverage.
type CoverageResponse struct {
	rtm.Entry
	Coverage rtm.Coverage `json:"coverage"`
}

// Coverage lists matrix entries with coverage derived from current test
// case results.
func (h *ActionHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	cases := h.cases.List(r.Context())
	entries := h.matrix.List(r.Context())
	items := make([]CoverageResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, CoverageResponse{Entry: e, Coverage: rtm.CoverageOf(e, cases)})
	}
	respondJSON(w, http.StatusOK, ListResponse{Items: items, Total: len(items)})
}

// CoverageSummary counts matrix entries by coverage.
func (h *ActionHandler) CoverageSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rtm.Summary(h.matrix.List(r.Context()), h.cases.List(r.Context())))
}

// GenerateMatrix replaces the matrix with one entry per requirement ID
// referenced by test cases. It requires confirm=true.
func (h *ActionHandler) GenerateMatrix(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		respondError(w, http.StatusBadRequest, "regeneration must be confirmed with confirm=true")
		return
	}
	entries := rtm.FromTestCases(h.cases.List(r.Context()))
	if err := h.matrix.Replace(r.Context(), entries); err != nil {
		h.logger.Error(r.Context(), "failed to regenerate matrix", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to regenerate matrix")
		return
	}
	respondJSON(w, http.StatusOK, ListResponse{Items: entries, Total: len(entries)})
}
