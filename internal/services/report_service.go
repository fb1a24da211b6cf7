package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/report"
)

var ErrInvalidQuery = errors.New("invalid report query")

type SalesOrderStore interface {
	ListPending(ctx context.Context, referenceID string, statuses []string) ([]models.PendingSalesOrder, error)
}

// PendingSOQuery selects one page of an agent's pending sales orders.
type PendingSOQuery struct {
	ReferenceID string
	Start       string
	End         string
	PageSize    int // zero keeps the default
	Page        int
}

type ReportService struct {
	orders   SalesOrderStore
	statuses []string
}

// NewReportService reports orders whose status is one of statuses.
func NewReportService(orders SalesOrderStore, statuses []string) *ReportService {
	return &ReportService{orders: orders, statuses: statuses}
}

func (s *ReportService) table(ctx context.Context, q PendingSOQuery) (*report.Table, error) {
	if q.ReferenceID == "" {
		return nil, ErrMissingReference
	}

	orders, err := s.orders.ListPending(ctx, q.ReferenceID, s.statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending sales orders: %w", err)
	}

	t := report.NewTable(report.FromOrders(orders))
	t.SetStartDate(q.Start)
	t.SetEndDate(q.End)
	if q.PageSize != 0 {
		if err := t.SetPageSize(q.PageSize); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
	}
	t.GoToPage(q.Page)
	return t, nil
}

// PendingSO renders the requested page.
func (s *ReportService) PendingSO(ctx context.Context, q PendingSOQuery) (*report.View, error) {
	t, err := s.table(ctx, q)
	if err != nil {
		return nil, err
	}
	v := t.View()
	return &v, nil
}

// ExportPendingSO writes every filtered row, sorted, as an XLSX workbook.
// Paging is ignored.
func (s *ReportService) ExportPendingSO(ctx context.Context, q PendingSOQuery, w io.Writer) error {
	t, err := s.table(ctx, q)
	if err != nil {
		return err
	}
	return report.WriteXLSX(w, t.Sorted())
}
