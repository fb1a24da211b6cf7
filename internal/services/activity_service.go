package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/white/fluxx-sales/internal/activity"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/uuid"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

var ErrMissingReference = errors.New("missing reference ID")

type ActivityStore interface {
	Create(ctx context.Context, record *models.ActivityRecord) error
	ListByReference(ctx context.Context, referenceID string, limit int) ([]models.ActivityRecord, error)
}

type ActivityService struct {
	store ActivityStore
	now   func() time.Time
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store, now: time.Now}
}

// Log validates a submitted payload and stores it as a new row. Validation
// failures wrap activity.ErrInvalidActivity.
func (s *ActivityService) Log(ctx context.Context, payload models.ActivityPayload) (*models.ActivityRecord, error) {
	record, err := activity.Validate(payload)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewActivityID()
	if err != nil {
		return nil, err
	}
	record.ID = id
	record.DateCreated = s.now().UTC()

	if err := s.store.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to store activity: %w", err)
	}
	return &record, nil
}

// List returns the newest activities of referenceID. A non-positive limit
// uses the default; larger limits are capped.
func (s *ActivityService) List(ctx context.Context, referenceID string, limit int) ([]models.ActivityRecord, error) {
	if referenceID == "" {
		return nil, ErrMissingReference
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.store.ListByReference(ctx, referenceID, limit)
}
