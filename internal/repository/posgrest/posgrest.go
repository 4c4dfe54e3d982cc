package posgrest

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is a generic GORM-based repository keyed by a single column.
type repository[T interface{}] struct {
	db  *gorm.DB
	key string
}

// New creates a repository for T whose primary key lives in keyColumn.
func New[T interface{}](db *gorm.DB, keyColumn string) *repository[T] {
	return &repository[T]{
		db:  db,
		key: keyColumn,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetBy retrieves entities matching a specific field value.
// The key parameter is the column name, and value is the value to match.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", key), value).Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// UpdateFields writes only the given columns, so concurrent updates of
// different fields do not overwrite each other. It reports the rows touched.
func (r *repository[T]) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	var entity T
	result := r.db.WithContext(ctx).Model(&entity).Where(fmt.Sprintf("%s = ?", r.key), id).Updates(fields)
	return result.RowsAffected, result.Error
}

// Upsert inserts entity or replaces every column of the existing row.
func (r *repository[T]) Upsert(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: r.key}},
		UpdateAll: true,
	}).Create(entity).Error
}
