package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryUserStore struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	err     error
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{byEmail: map[string]*models.User{}}
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *memoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[user.Email]; ok {
		return fmt.Errorf("user with email %s: %w", user.Email, repositories.ErrEmailExists)
	}
	user.ID = primitive.NewObjectID()
	s.byEmail[user.Email] = user
	return nil
}

type staticIssuer struct{ err error }

func (i staticIssuer) GenerateAccessToken(user *models.User) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	return "token-for-" + user.Email, nil
}

type fakeAccountStore struct {
	accounts []models.Account
	err      error
	calls    int
}

func (s *fakeAccountStore) ListActiveByReference(ctx context.Context, referenceID string) ([]models.Account, error) {
	s.calls++
	return s.accounts, s.err
}

type fakeActivityStore struct {
	created   []models.ActivityRecord
	lastLimit int
	err       error
}

func (s *fakeActivityStore) Create(ctx context.Context, record *models.ActivityRecord) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *record)
	return nil
}

func (s *fakeActivityStore) ListByReference(ctx context.Context, referenceID string, limit int) ([]models.ActivityRecord, error) {
	s.lastLimit = limit
	return s.created, s.err
}

type fakeSalesOrderStore struct {
	orders       []models.PendingSalesOrder
	lastStatuses []string
	err          error
}

func (s *fakeSalesOrderStore) ListPending(ctx context.Context, referenceID string, statuses []string) ([]models.PendingSalesOrder, error) {
	s.lastStatuses = statuses
	return s.orders, s.err
}

var errStoreDown = errors.New("store down")
