package repositories

import (
	"context"
	"errors"
	"fmt"

	"finflow/internal/models"

	"gorm.io/gorm"
)

// GormRepository is the durable store, used when a DATABASE_URL is
// configured. The auto-increment Seq column preserves insertion order and
// serves as the query tie-break, same as the memory store.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository backed by the given database.
func NewGormRepository(db *gorm.DB) *GormRepository {
	if db == nil {
		panic("db is required")
	}
	return &GormRepository{db: db}
}

func (r *GormRepository) Append(ctx context.Context, userID string, txn *models.Transaction) error {
	txn.UserID = userID
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func (r *GormRepository) ListAll(ctx context.Context, userID string) ([]models.Transaction, error) {
	var records []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return records, nil
}
