package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/imharvol/bog-utils-bot/internal/domain"
	"github.com/imharvol/bog-utils-bot/internal/ports"
)

// UserRepository stores chat users and their default address.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserStore = (*UserRepository)(nil)

// EnsureUser registers the user on first contact. The username recorded at
// registration time is kept on subsequent calls.
func (r *UserRepository) EnsureUser(ctx context.Context, id int64, username string) error {
	record := userRecord{ID: id}
	if username != "" {
		record.Username = &username
	}
	err := r.db.WithContext(ctx).
		Where(userRecord{ID: id}).
		FirstOrCreate(&record).Error
	if err != nil {
		return fmt.Errorf("failed to ensure user %d: %w", id, err)
	}
	return nil
}

func (r *UserRepository) SetAddress(ctx context.Context, id int64, address string) error {
	result := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", id).
		Update("address", address)
	if result.Error != nil {
		return fmt.Errorf("failed to set address for user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

func (r *UserRepository) ClearAddress(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", id).
		Update("address", nil)
	if result.Error != nil {
		return fmt.Errorf("failed to clear address for user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

func (r *UserRepository) GetAddress(ctx context.Context, id int64) (string, error) {
	var record userRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", domain.ErrNotRegistered
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user %d: %w", id, err)
	}
	if record.Address == nil {
		return "", nil
	}
	return *record.Address, nil
}
