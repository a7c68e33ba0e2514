package repositories

import (
	"gorm.io/gorm"
)

// IRecordRepository is the generic store shared by every row type with an
// integer id and a creation timestamp.
type IRecordRepository[T any] interface {
	Find(id uint) (*T, error)
	FindPage(offset int, limit int) (*[]T, error)
	Create(row T) (*T, error)
	Save(row *T) (*T, error)
	Remove(id uint) (*T, error)
}

type RecordRepository[T any] struct {
	db *gorm.DB
}

func NewRecordRepository[T any](db *gorm.DB) *RecordRepository[T] {
	return &RecordRepository[T]{db: db}
}

func (r *RecordRepository[T]) Find(id uint) (*T, error) {
	var row T
	result := r.db.First(&row, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &row, nil
}

// FindPage returns up to limit rows starting at offset, in primary-key order.
// The limit is passed through to the database as-is; capping it is the
// caller's concern.
func (r *RecordRepository[T]) FindPage(offset int, limit int) (*[]T, error) {
	var rows []T
	result := r.db.Order("id").Offset(offset).Limit(limit).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return &rows, nil
}

func (r *RecordRepository[T]) Create(row T) (*T, error) {
	result := r.db.Create(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return &row, nil
}

// Save persists an already-merged row. Merging a patch onto the row happens
// in the service layer; id and created_at are never touched there.
func (r *RecordRepository[T]) Save(row *T) (*T, error) {
	result := r.db.Save(row)
	if result.Error != nil {
		return nil, result.Error
	}
	return row, nil
}

// Remove deletes the row with the given id and returns it as it existed just
// before deletion. A vanished id yields gorm.ErrRecordNotFound.
func (r *RecordRepository[T]) Remove(id uint) (*T, error) {
	row, err := r.Find(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Delete(row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}
