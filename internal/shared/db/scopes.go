package db

import (
	"time"

	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records. Every
// normal read path over the session ledger must apply it explicitly; soft
// delete is an orthogonal state, not a storage detail.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.NotDeleted()).Where("plate_number = ?", plate).Count(&count)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotDeletedWithAlias is a GORM scope that filters out soft-deleted records
// with a table alias. Use this when joining tables and the deleted_at column
// must be qualified.
//
// Example usage:
//
//	db.Table("parking_sessions ps").Scopes(db.NotDeletedWithAlias("ps")).Find(&results)
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}

// ExitedWithin restricts parking session rows to those whose exit falls
// inside [start, end]. Open sessions (NULL exit_time) never match.
func ExitedWithin(start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("exit_time IS NOT NULL AND exit_time >= ? AND exit_time <= ?", start, end)
	}
}
