package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound no record matched.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID the identifier cannot name any record.
	ErrInvalidID = errors.New("malformed identifier")
	// ErrDuplicate a unique index was violated.
	ErrDuplicate = errors.New("duplicate record")
)

// checkID rejects identifiers that are not UUIDs before they reach the database.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

// translate maps GORM errors onto the package errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// overwrite rewrites every column of an existing row, keyed by its primary key.
// Unlike gorm's Save it never falls back to an insert.
func overwrite(tx *gorm.DB, model interface{}) error {
	result := tx.Model(model).Select("*").Omit("id", clause.Associations).Updates(model)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
