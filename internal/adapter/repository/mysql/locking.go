package mysql

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row lock on dialects that support it. SQLite (used by
// the in-memory tests) has no SELECT ... FOR UPDATE; its transactions
// serialize writers instead.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
