package services

import (
	"context"
	"errors"

	"github.com/white/fluxx-sales/internal/cache"
	"github.com/white/fluxx-sales/internal/models"
	"go.uber.org/zap"
)

type AccountStore interface {
	ListActiveByReference(ctx context.Context, referenceID string) ([]models.Account, error)
}

// AccountService serves an agent's active accounts, reading through the
// Redis cache when one is configured.
type AccountService struct {
	store  AccountStore
	cache  *cache.AccountCache
	logger *zap.Logger
}

func NewAccountService(store AccountStore, accountCache *cache.AccountCache, logger *zap.Logger) *AccountService {
	return &AccountService{store: store, cache: accountCache, logger: logger}
}

// ListActive returns the non-inactive accounts of referenceID. Cache failures
// fall through to the store; an empty result is never cached.
func (s *AccountService) ListActive(ctx context.Context, referenceID string) ([]models.Account, error) {
	accounts, err := s.cache.Get(ctx, referenceID)
	if err == nil {
		return accounts, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Account cache read failed", zap.String("referenceid", referenceID), zap.Error(err))
	}

	accounts, err = s.store.ListActiveByReference(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, referenceID, accounts); err != nil {
		s.logger.Warn("Account cache write failed", zap.String("referenceid", referenceID), zap.Error(err))
	}
	return accounts, nil
}
