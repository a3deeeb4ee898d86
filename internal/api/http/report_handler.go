package http

import (
	"net/http"

	"carrental-backoffice/internal/service"
)

// ReportHandler serves the dashboard read paths backed by the
// precomputed aggregates.
type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Revenue(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load revenue report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) Utilization(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Utilization(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load utilization report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.Overdue(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load overdue report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.TopCustomers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load top customers report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) Maintenance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.MaintenanceSummaries(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load maintenance report")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) CarStatus(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.CarStatusSummary(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load car status summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
