// internal/repository/gorm_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crownshop/storefront/internal/models"
)

// GormCatalog backs Catalog with the Postgres product table.
type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (r *GormCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (r *GormCatalog) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (r *GormCatalog) InsertProducts(ctx context.Context, rows []models.Product) ([]models.Product, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	// One Create call for the whole batch; the store applies it
	// all-or-nothing.
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}
	return rows, nil
}

func (r *GormCatalog) UpdateProduct(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotPermitted
	}
	return nil
}

func (r *GormCatalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotPermitted
	}
	return nil
}

// GormOwnership backs Ownership with the stores / store_admins tables.
type GormOwnership struct {
	db *gorm.DB
}

func NewGormOwnership(db *gorm.DB) *GormOwnership {
	return &GormOwnership{db: db}
}

func (r *GormOwnership) StoreByOwner(ctx context.Context, ownerID int64) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &store, nil
}

func (r *GormOwnership) StoreAdminByTelegramID(ctx context.Context, telegramID int64) (*models.StoreAdmin, error) {
	var admin models.StoreAdmin
	if err := r.db.WithContext(ctx).First(&admin, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &admin, nil
}
