package services

import (
	"context"
	"database/sql"
	stderrors "errors"

	apperrors "frontdesk/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dbError maps a gorm failure onto the error taxonomy. AppErrors pass through.
func dbError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.GetAppError(err) != nil {
		return err
	}
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound(entity)
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Validation(entity + " already exists")
	}
	return apperrors.Internal("database error on "+entity, err)
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// forUpdate adds a row lock where the dialect supports one.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if isPostgres(tx) {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// readSnapshot runs fn in a read-only transaction so every query sees the same data.
func readSnapshot(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var opts []*sql.TxOptions
	if isPostgres(db) {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	}
	return db.WithContext(ctx).Transaction(fn, opts...)
}
