package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/white/fluxx-sales/internal/activity"
	"github.com/white/fluxx-sales/internal/events"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/services"
	"go.uber.org/zap"
)

// ActivityLogger records activity entries and lists them per user.
type ActivityLogger interface {
	Log(ctx context.Context, payload models.ActivityPayload) (*models.ActivityRecord, error)
	List(ctx context.Context, referenceID string, limit int) ([]models.ActivityRecord, error)
}

type ActivityHandler struct {
	activities ActivityLogger
	audit      *events.AuditPublisher
	logger     *zap.Logger
}

func NewActivityHandler(activities ActivityLogger, audit *events.AuditPublisher, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activities: activities, audit: audit, logger: logger}
}

// CreateActivity godoc
// @Summary Log an activity
// @Description Validates and stores one activity submitted from the activity form.
// @Tags Activities
// @Accept json
// @Produce json
// @Param activity body models.ActivityPayload true "Activity"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 500 {object} envelope
// @Router /api/v1/activities [post]
// @Security BearerAuth
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var payload models.ActivityPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := h.activities.Log(r.Context(), payload)
	if err != nil {
		if errors.Is(err, activity.ErrInvalidActivity) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Error logging activity", zap.String("referenceid", payload.ReferenceID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to log activity.")
		return
	}

	h.audit.PublishFromRequest(r, &events.AuditEvent{
		ReferenceID: record.ReferenceID,
		Action:      events.ActionActivityLogged,
		Resource:    events.ResourceActivity,
		ResourceID:  record.ID,
		Details:     record.ActivityStatus,
		Success:     true,
	})
	respondWithData(w, http.StatusCreated, record)
}

// ListActivities godoc
// @Summary List logged activities
// @Tags Activities
// @Produce json
// @Param referenceid query string true "Owner reference ID"
// @Param limit query int false "Maximum rows (default 50, max 500)"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Router /api/v1/activities [get]
// @Security BearerAuth
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	referenceID := q.Get("referenceid")
	if referenceID == "" {
		respondWithError(w, http.StatusBadRequest, msgMissingReference)
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = n
	}

	records, err := h.activities.List(r.Context(), referenceID, limit)
	if err != nil {
		if errors.Is(err, services.ErrMissingReference) {
			respondWithError(w, http.StatusBadRequest, msgMissingReference)
			return
		}
		h.logger.Error("Error listing activities", zap.String("referenceid", referenceID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch activities.")
		return
	}
	if records == nil {
		records = []models.ActivityRecord{}
	}
	respondWithData(w, http.StatusOK, records)
}
