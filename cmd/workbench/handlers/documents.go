package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/pdfexport"
	"github.com/hairizuanbinnoorazman/qa-workbench/qareport"
	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
	"github.com/hairizuanbinnoorazman/qa-workbench/testplan"
)

// DocumentHandler renders PDF documents.
type DocumentHandler struct {
	reports qareport.Store
	plans   testplan.Store
	blobs   storage.BlobStorage
	logger  logger.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(reports qareport.Store, plans testplan.Store, blobs storage.BlobStorage, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		reports: reports,
		plans:   plans,
		blobs:   blobs,
		logger:  log,
	}
}

// ArchiveResponse points at an archived document.
type ArchiveResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// QAReportPDF renders a QA report.
func (h *DocumentHandler) QAReportPDF(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.reports.Get(r.Context(), mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "qa report not found")
		return
	}
	a, err := pdfexport.QAReport(rep)
	h.deliver(w, r, a, err)
}

// TestPlanPDF renders a test plan.
func (h *DocumentHandler) TestPlanPDF(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.plans.Get(r.Context(), mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "test plan not found")
		return
	}
	a, err := pdfexport.TestPlan(plan)
	h.deliver(w, r, a, err)
}

// deliver downloads the artifact, or stores it in blob storage and returns
// its location when archive=true.
func (h *DocumentHandler) deliver(w http.ResponseWriter, r *http.Request, a *pdfexport.Artifact, err error) {
	if err != nil {
		h.logger.Error(r.Context(), "failed to render document", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to render document")
		return
	}
	if r.URL.Query().Get("archive") != "true" {
		respondFile(w, a.Filename, a.ContentType, a.Data)
		return
	}
	if h.blobs == nil {
		respondError(w, http.StatusServiceUnavailable, "document archive is not configured")
		return
	}
	url, err := pdfexport.Archive(r.Context(), h.blobs, a)
	if err != nil {
		h.logger.Error(r.Context(), "failed to archive document", map[string]interface{}{
			"error":    err.Error(),
			"filename": a.Filename,
		})
		if errors.Is(err, storage.ErrInvalidPath) {
			respondError(w, http.StatusBadRequest, "document name is not storable")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to archive document")
		return
	}
	h.logger.Info(r.Context(), "document archived", map[string]interface{}{"filename": a.Filename})
	respondJSON(w, http.StatusCreated, ArchiveResponse{Filename: a.Filename, URL: url})
}
