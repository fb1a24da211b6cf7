package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func TestWrapNotFound(t *testing.T) {
	err := WrapNotFound(mongo.ErrNoDocuments, ErrUserNotFound)
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
	assert.True(t, IsNotFound(err))

	err = WrapNotFound(gorm.ErrRecordNotFound, ErrNoAccounts)
	assert.True(t, errors.Is(err, ErrNoAccounts))
	assert.True(t, IsNotFound(err))

	other := errors.New("connection reset")
	assert.Same(t, other, WrapNotFound(other, ErrUserNotFound))
	assert.Nil(t, WrapNotFound(nil, ErrUserNotFound))
}

func TestDomainErrorsWrapGeneric(t *testing.T) {
	assert.True(t, IsNotFound(ErrNoAccounts))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrUserNotFound)))
	assert.True(t, IsDuplicateKey(ErrEmailExists))
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsNotFound(errors.New("boom")))
}
