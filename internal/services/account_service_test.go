package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/fluxx-sales/internal/cache"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/repositories"
	"go.uber.org/zap"
)

func TestAccountService_ListActive(t *testing.T) {
	store := &fakeAccountStore{accounts: []models.Account{{"referenceid": "REF-001", "companyname": "ACME", "status": "Active"}}}
	svc := NewAccountService(store, cache.NewAccountCache(nil, 0), zap.NewNop())

	accounts, err := svc.ListActive(context.Background(), "REF-001")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ACME", accounts[0]["companyname"])
	assert.Equal(t, 1, store.calls)
}

func TestAccountService_PropagatesNotFound(t *testing.T) {
	store := &fakeAccountStore{err: repositories.ErrNoAccounts}
	svc := NewAccountService(store, nil, zap.NewNop())

	_, err := svc.ListActive(context.Background(), "REF-404")
	assert.ErrorIs(t, err, repositories.ErrNoAccounts)
	assert.True(t, repositories.IsNotFound(err))
}
