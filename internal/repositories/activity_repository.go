package repositories

import (
	"context"
	"fmt"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/postgres"
)

// ActivityRepository persists logged activities.
type ActivityRepository struct {
	conn *postgres.Lazy
}

func NewActivityRepository(conn *postgres.Lazy) *ActivityRepository {
	return &ActivityRepository{conn: conn}
}

// Migrate creates the activity table when missing.
func (r *ActivityRepository) Migrate(ctx context.Context) error {
	db, err := r.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("error connecting to activity store: %w", err)
	}
	if err := db.AutoMigrate(&models.ActivityRecord{}); err != nil {
		return fmt.Errorf("error migrating activity table: %w", err)
	}
	return nil
}

// Create inserts one activity row.
func (r *ActivityRepository) Create(ctx context.Context, record *models.ActivityRecord) error {
	db, err := r.conn.Get(ctx)
	if err != nil {
		return fmt.Errorf("error connecting to activity store: %w", err)
	}
	if err := db.Create(record).Error; err != nil {
		return fmt.Errorf("error creating activity: %w", err)
	}
	return nil
}

// ListByReference returns an agent's activities, newest first.
func (r *ActivityRepository) ListByReference(ctx context.Context, referenceID string, limit int) ([]models.ActivityRecord, error) {
	db, err := r.conn.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error connecting to activity store: %w", err)
	}

	var records []models.ActivityRecord
	err = db.Where("referenceid = ?", referenceID).
		Order("startdate DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	return records, nil
}
