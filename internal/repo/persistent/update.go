package persistent

import (
	"videau/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// updateColumns writes only columns on the row with id. An empty set is a
// no-op; callers re-read the row to detect a missing one.
func updateColumns(query *gorm.DB, id string, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	result := query.Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// lockRow loads the row with id into dest and holds it until tx ends.
// Back-reference lists are read and written under this lock so concurrent
// appends to the same row are serialized.
func lockRow(tx *gorm.DB, dest interface{}, id string) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(dest).Error
	return translate(err)
}
