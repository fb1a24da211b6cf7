package repositories

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Common repository errors
var (
	// ErrNotFound is returned when a document or row is not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when trying to insert a duplicate document
	ErrDuplicateKey = errors.New("duplicate key error")

	// ErrInvalidInput is returned when the input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// Domain-specific errors. The "not found" ones wrap ErrNotFound so handlers
// can check either the domain error or the generic one.
var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrNoAccounts is returned when an owner has no active accounts
	ErrNoAccounts = fmt.Errorf("accounts %w", ErrNotFound)

	// ErrEmailExists is returned when registering an email that is taken
	ErrEmailExists = fmt.Errorf("email already exists: %w", ErrDuplicateKey)
)

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, mongo.ErrNoDocuments) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, ErrDuplicateKey)
}

// WrapNotFound wraps a driver "no rows" error with a domain-specific error,
// preserving the original for errors.Is checks. Other errors pass through.
//
//	err := r.collection.FindOne(ctx, filter).Decode(&user)
//	if err != nil {
//	    return nil, WrapNotFound(err, ErrUserNotFound)
//	}
func WrapNotFound(err error, domainErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", domainErr, err)
	}
	return err
}
