package repositories

import (
	"context"
	"fmt"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/postgres"
)

// AccountRepository reads company accounts from the relational store.
type AccountRepository struct {
	conn *postgres.Lazy
}

func NewAccountRepository(conn *postgres.Lazy) *AccountRepository {
	return &AccountRepository{conn: conn}
}

// ListActiveByReference returns every account owned by referenceID whose
// status is not Inactive. ErrNoAccounts is returned when nothing matches.
func (r *AccountRepository) ListActiveByReference(ctx context.Context, referenceID string) ([]models.Account, error) {
	db, err := r.conn.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error connecting to account store: %w", err)
	}

	var rows []map[string]interface{}
	err = db.Table("accounts").
		Where("referenceid = ? AND status <> ?", referenceID, models.AccountStatusInactive).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNoAccounts
	}

	accounts := make([]models.Account, len(rows))
	for i, row := range rows {
		accounts[i] = models.Account(row)
	}
	return accounts, nil
}
