package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"finlens/internal/core"
	"finlens/internal/log"
	"finlens/internal/report"
)

// homeDateLayout matches the anchor format users pass to the home report,
// e.g. "2020-05-02 20:00:00".
const homeDateLayout = "2006-01-02 15:04:05"

type Handlers struct {
	composer *report.Composer
}

func NewHandlers(composer *report.Composer) *Handlers {
	return &Handlers{composer: composer}
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Home serves the composite home report for an anchor datetime.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: date")
		return
	}
	anchor, err := time.Parse(homeDateLayout, dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD HH:MM:SS")
		return
	}

	payload, err := h.composer.Home(r.Context(), anchor)
	if err != nil {
		h.writeComposerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Spending serves the 90-day category spend report. With save=1 the payload
// is also persisted through the report sink.
func (h *Handlers) Spending(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: category")
		return
	}
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}
	month, ok := intParam(w, r, "month")
	if !ok {
		return
	}
	day, ok := intParam(w, r, "day")
	if !ok {
		return
	}

	payload, err := h.composer.SpendingByCategory(r.Context(), category, year, month, day)
	if err != nil {
		h.writeComposerError(w, r, err)
		return
	}

	if r.URL.Query().Get("save") == "1" {
		if err := h.composer.WriteReport(r.Context(), "spending_report.json", report.KindSpending, payload); err != nil {
			log.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to persist spending report", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to persist report")
			return
		}
	}
	writeJSON(w, http.StatusOK, payload)
}

// Cashback serves the top-3 cashback ranking for a calendar month.
func (h *Handlers) Cashback(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}
	month, ok := intParam(w, r, "month")
	if !ok {
		return
	}

	payload, err := h.composer.CashbackCategories(r.Context(), year, month)
	if err != nil {
		h.writeComposerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Search serves the free-text search over the full ledger.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	payload, err := h.composer.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeComposerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handlers) writeComposerError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.FromContext(r.Context())
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrMissingCredential):
		logger.ErrorContext(r.Context(), "Report composition failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		logger.ErrorContext(r.Context(), "Report composition failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: "+name)
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter "+name+": must be an integer")
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = report.Encode(w, payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, report.ErrorPayload{Error: msg})
}
