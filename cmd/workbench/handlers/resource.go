package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
)

// maxUploadSize bounds import uploads.
const maxUploadSize = 10 << 20

// Resource serves CRUD, spreadsheet export and import for one entity type.
// Creates and updates go through the entity's form controller so they get
// the same defaults, required-field checks and ID generation as the dialog.
type Resource[T any] struct {
	// Name is the singular noun used in messages, e.g. "bug report".
	Name  string
	Store entitystore.Repository[T]
	Form  func() *form.Controller[T]
	// Filter narrows List and Export by query parameters. Nil keeps all.
	Filter       func(r *http.Request, records []T) []T
	Columns      func() []spreadsheet.Column[T]
	ExportPrefix string
	Now          func() time.Time
	Logger       logger.Logger
}

// Register mounts the resource under path on r.
func (h *Resource[T]) Register(r *mux.Router, path string) {
	r.HandleFunc(path, h.List).Methods(http.MethodGet)
	r.HandleFunc(path, h.Create).Methods(http.MethodPost)
	r.HandleFunc(path+"/export", h.Export).Methods(http.MethodGet)
	r.HandleFunc(path+"/import", h.Import).Methods(http.MethodPost)
	r.HandleFunc(path+"/reset", h.Reset).Methods(http.MethodPost)
	r.HandleFunc(path+"/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc(path+"/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc(path+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *Resource[T]) filtered(r *http.Request) []T {
	records := h.Store.List(r.Context())
	if h.Filter != nil {
		records = h.Filter(r, records)
	}
	return records
}

// List returns the records matching the query parameters.
func (h *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	records := h.filtered(r)
	respondJSON(w, http.StatusOK, ListResponse{Items: records, Total: len(records)})
}

// Get returns the first record with the path ID.
func (h *Resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, ok := h.Store.Get(r.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, h.Name+" not found")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// Create submits the request body as a new record. Omitted fields keep
// the form defaults.
func (h *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, nil, http.StatusCreated)
}

// Update merges the request body into the stored record. Omitted fields
// keep their stored values.
func (h *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	existing, ok := h.Store.Get(r.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, h.Name+" not found")
		return
	}
	h.submit(w, r, &existing, http.StatusOK)
}

func (h *Resource[T]) submit(w http.ResponseWriter, r *http.Request, existing *T, status int) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctrl := h.Form()
	if err := ctrl.Open(existing); err != nil {
		h.Logger.Error(r.Context(), "failed to open form", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to save "+h.Name)
		return
	}
	var decodeErr error
	if err := ctrl.Edit(func(draft *T) { decodeErr = json.Unmarshal(raw, draft) }); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if decodeErr != nil {
		h.Logger.Error(r.Context(), "failed to parse JSON", map[string]interface{}{"error": decodeErr.Error()})
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := ctrl.Submit(r.Context())
	if err != nil {
		h.respondSubmitError(w, r, err)
		return
	}
	respondJSON(w, status, saved)
}

func (h *Resource[T]) respondSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, form.ErrRecordGone):
		respondError(w, http.StatusNotFound, h.Name+" not found")
	case errors.Is(err, form.ErrSubmitInProgress):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, entitystore.ErrPersist):
		h.Logger.Error(r.Context(), "failed to save "+h.Name, map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to save "+h.Name)
	default:
		respondError(w, http.StatusBadRequest, err.Error())
	}
}

// Delete removes every record with the path ID. It requires confirm=true.
func (h *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		respondError(w, http.StatusBadRequest, "deletion must be confirmed with confirm=true")
		return
	}
	id := mux.Vars(r)["id"]
	n, err := h.Store.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error(r.Context(), "failed to delete "+h.Name, map[string]interface{}{"error": err.Error(), "id": id})
		respondError(w, http.StatusInternalServerError, "failed to delete "+h.Name)
		return
	}
	if n == 0 {
		respondError(w, http.StatusNotFound, h.Name+" not found")
		return
	}
	respondSuccess(w, fmt.Sprintf("deleted %d %s record(s)", n, h.Name))
}

// Reset restores the seed dataset. It requires confirm=true.
func (h *Resource[T]) Reset(w http.ResponseWriter, r *http.Request) {
	if !confirmed(r) {
		respondError(w, http.StatusBadRequest, "reset must be confirmed with confirm=true")
		return
	}
	if err := h.Store.ResetToSeed(r.Context()); err != nil {
		h.Logger.Error(r.Context(), "failed to reset "+h.Name+" store", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to reset")
		return
	}
	respondSuccess(w, "restored sample data")
}

// Export downloads the filtered records as an .xlsx workbook.
func (h *Resource[T]) Export(w http.ResponseWriter, r *http.Request) {
	data, err := spreadsheet.Export(h.ExportPrefix, h.filtered(r), h.Columns())
	if err != nil {
		h.Logger.Error(r.Context(), "failed to export "+h.Name, map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "failed to export")
		return
	}
	respondFile(w, spreadsheet.Filename(h.ExportPrefix, h.Now()), spreadsheet.ContentType, data)
}

// ImportResponse reports how many records an upload added.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// Import appends the records of an uploaded .xlsx, .xls or .csv file sent
// as the multipart field "file".
func (h *Resource[T]) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "a file upload named \"file\" is required")
		return
	}
	defer file.Close()

	format, err := spreadsheet.FormatFromFilename(header.Filename)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := spreadsheet.ImportInto[T](r.Context(), h.Store, file, format, h.Columns())
	if err != nil {
		if errors.Is(err, entitystore.ErrPersist) {
			h.Logger.Error(r.Context(), "failed to store import", map[string]interface{}{"error": err.Error()})
			respondError(w, http.StatusInternalServerError, "failed to store imported records")
			return
		}
		h.Logger.Warn(r.Context(), "rejected import", map[string]interface{}{"error": err.Error(), "file": header.Filename})
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.Logger.Info(r.Context(), "records imported", map[string]interface{}{"count": n, "file": header.Filename, "store": h.Name})
	respondJSON(w, http.StatusOK, ImportResponse{Imported: n})
}
