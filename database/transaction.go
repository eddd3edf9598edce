package database

import "gorm.io/gorm"

// WithTx runs fn inside one transaction. Any error (or panic) rolls the
// whole unit back, so a settlement can never be half-applied.
func WithTx(fn func(tx *gorm.DB) error) error {
	tx := DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
