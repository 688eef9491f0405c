package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var errNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction executes fn within a transaction while propagating context.
// The tx passed to fn already carries ctx; returning an error rolls back.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Create(ctx, tx, entity)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}

// InTransaction is WithTransaction for units of work that produce a value.
// The zero value of T is returned whenever fn fails.
//
// Usage:
//
//	page, err := InTransaction(ctx, db, func(tx *gorm.DB) (Page, error) {
//	    return repo.FindAll(ctx, tx, req)
//	})
func InTransaction[T any](ctx context.Context, db *gorm.DB, fn func(*gorm.DB) (T, error)) (T, error) {
	var result T
	if fn == nil {
		return result, errNilTransactionFunc
	}

	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
		value, err := fn(tx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
