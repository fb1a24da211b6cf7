package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/fluxx-sales/internal/models"
)

func pendingOrders(n int) []models.PendingSalesOrder {
	orders := make([]models.PendingSalesOrder, n)
	for i := range orders {
		created := time.Date(2025, 1, 1+i, 9, 0, 0, 0, time.UTC)
		orders[i] = models.PendingSalesOrder{
			ID:             int64(i + 1),
			DateCreated:    &created,
			CompanyName:    fmt.Sprintf("company %d", i+1),
			SOAmount:       sql.NullString{String: strconv.Itoa(1000 * (i + 1)), Valid: true},
			ActivityStatus: "SO-Done",
		}
	}
	return orders
}

func TestReportService_PendingSO(t *testing.T) {
	store := &fakeSalesOrderStore{orders: pendingOrders(23)}
	svc := NewReportService(store, []string{"SO-Done"})

	view, err := svc.PendingSO(context.Background(), PendingSOQuery{ReferenceID: "REF-001", Page: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"SO-Done"}, store.lastStatuses)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 3, view.Page)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, "₱3,000.00", view.Rows[0].SOAmount)
}

func TestReportService_PendingSOFilters(t *testing.T) {
	svc := NewReportService(&fakeSalesOrderStore{orders: pendingOrders(23)}, []string{"SO-Done"})

	view, err := svc.PendingSO(context.Background(), PendingSOQuery{
		ReferenceID: "REF-001",
		Start:       "2025-01-10",
		End:         "2025-01-12",
		PageSize:    25,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalRows)
	assert.Equal(t, "COMPANY 12", view.Rows[0].CompanyName)
}

func TestReportService_InvalidQueries(t *testing.T) {
	svc := NewReportService(&fakeSalesOrderStore{}, nil)

	_, err := svc.PendingSO(context.Background(), PendingSOQuery{})
	assert.ErrorIs(t, err, ErrMissingReference)

	_, err = svc.PendingSO(context.Background(), PendingSOQuery{ReferenceID: "REF-001", PageSize: 7})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestReportService_StoreFailure(t *testing.T) {
	svc := NewReportService(&fakeSalesOrderStore{err: errStoreDown}, nil)
	_, err := svc.PendingSO(context.Background(), PendingSOQuery{ReferenceID: "REF-001"})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestReportService_Export(t *testing.T) {
	svc := NewReportService(&fakeSalesOrderStore{orders: pendingOrders(3)}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPendingSO(context.Background(), PendingSOQuery{ReferenceID: "REF-001"}, &buf))
	// XLSX files are zip archives.
	assert.Equal(t, []byte("PK"), buf.Bytes()[:2])
}

func TestReportService_NonNumericAmount(t *testing.T) {
	orders := pendingOrders(2)
	orders[1].SOAmount = sql.NullString{String: "TBD", Valid: true}
	svc := NewReportService(&fakeSalesOrderStore{orders: orders}, nil)

	view, err := svc.PendingSO(context.Background(), PendingSOQuery{ReferenceID: "REF-001"})
	require.NoError(t, err)
	require.Len(t, view.Rows, 2)
	// Sorted by amount descending; the non-numeric amount counts as zero.
	assert.Equal(t, "₱1,000.00", view.Rows[0].SOAmount)
	assert.Equal(t, "TBD", view.Rows[1].SOAmount)
}
