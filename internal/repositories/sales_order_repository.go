package repositories

import (
	"context"
	"fmt"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/postgres"
)

// SalesOrderRepository reads sales-order progress rows.
type SalesOrderRepository struct {
	conn *postgres.Lazy
}

func NewSalesOrderRepository(conn *postgres.Lazy) *SalesOrderRepository {
	return &SalesOrderRepository{conn: conn}
}

// ListPending returns referenceID's orders whose status is one of statuses.
// Ordering is left to the reporting table.
func (r *SalesOrderRepository) ListPending(ctx context.Context, referenceID string, statuses []string) ([]models.PendingSalesOrder, error) {
	db, err := r.conn.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sales-order store: %w", err)
	}

	var orders []models.PendingSalesOrder
	err = db.Where("referenceid = ? AND activitystatus IN ?", referenceID, statuses).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("error listing pending sales orders: %w", err)
	}
	return orders, nil
}
