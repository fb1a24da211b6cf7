package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/white/fluxx-sales/internal/report"
	"github.com/white/fluxx-sales/internal/services"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PendingSOReporter builds the pending sales order view and its export.
type PendingSOReporter interface {
	PendingSO(ctx context.Context, q services.PendingSOQuery) (*report.View, error)
	ExportPendingSO(ctx context.Context, q services.PendingSOQuery, w io.Writer) error
}

type ReportHandler struct {
	reports PendingSOReporter
	logger  *zap.Logger
}

func NewReportHandler(reports PendingSOReporter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

func parsePendingSOQuery(r *http.Request) (services.PendingSOQuery, error) {
	q := r.URL.Query()
	query := services.PendingSOQuery{
		ReferenceID: q.Get("referenceid"),
		Start:       q.Get("start"),
		End:         q.Get("end"),
		Page:        1,
	}
	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("pageSize must be a number")
		}
		query.PageSize = n
	}
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return query, errors.New("page must be a number")
		}
		query.Page = n
	}
	return query, nil
}

func (h *ReportHandler) writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMissingReference):
		respondWithError(w, http.StatusBadRequest, msgMissingReference)
	case errors.Is(err, services.ErrInvalidQuery):
		respondWithError(w, http.StatusBadRequest, report.ErrPageSize.Error())
	default:
		h.logger.Error("Error building pending SO report", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch pending sales orders.")
	}
}

// GetPendingSO godoc
// @Summary Pending sales orders
// @Description Date-range filtered, amount-sorted, paged pending sales orders.
// @Tags Reports
// @Produce json
// @Param referenceid query string true "Owner reference ID"
// @Param start query string false "Inclusive lower date bound"
// @Param end query string false "Inclusive upper date bound; a plain date covers the whole day"
// @Param pageSize query int false "10, 25, 50 or 100"
// @Param page query int false "1-based page, clamped"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Router /api/v1/reports/pending-so [get]
// @Security BearerAuth
func (h *ReportHandler) GetPendingSO(w http.ResponseWriter, r *http.Request) {
	query, err := parsePendingSOQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.reports.PendingSO(r.Context(), query)
	if err != nil {
		h.writeQueryError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, view)
}

// ExportPendingSO godoc
// @Summary Export pending sales orders
// @Description Same filter and order as the report, every page, as an XLSX workbook.
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param referenceid query string true "Owner reference ID"
// @Param start query string false "Inclusive lower date bound"
// @Param end query string false "Inclusive upper date bound"
// @Success 200 {file} file
// @Failure 400 {object} envelope
// @Router /api/v1/reports/pending-so/export [get]
// @Security BearerAuth
func (h *ReportHandler) ExportPendingSO(w http.ResponseWriter, r *http.Request) {
	query, err := parsePendingSOQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.reports.ExportPendingSO(r.Context(), query, &buf); err != nil {
		h.writeQueryError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": "pending-so-" + query.ReferenceID + ".xlsx",
	}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
