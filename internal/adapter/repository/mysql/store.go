package mysql

import (
	"context"

	"gorm.io/gorm"

	storeDomain "fieldops-backend/internal/domain/store"
)

type StoreRepository struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) *StoreRepository { return &StoreRepository{db: db} }

func (r *StoreRepository) GetByStoreID(ctx context.Context, storeID string) (*storeDomain.Store, error) {
	var out storeDomain.Store
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *StoreRepository) ListActiveBrands(ctx context.Context) ([]storeDomain.Brand, error) {
	var out []storeDomain.Brand
	res := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *StoreRepository) ListActiveProducts(ctx context.Context) ([]storeDomain.Product, error) {
	var out []storeDomain.Product
	res := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *StoreRepository) ListContactsByStoreID(ctx context.Context, storeNumericID uint64) ([]storeDomain.Contact, error) {
	var out []storeDomain.Contact
	res := r.db.WithContext(ctx).
		Where("store_id = ?", storeNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *StoreRepository) GetQuestionnaireByStoreID(ctx context.Context, storeNumericID uint64) (*storeDomain.Questionnaire, error) {
	var out storeDomain.Questionnaire
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeNumericID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *StoreRepository) ListInventoryByStoreID(ctx context.Context, storeNumericID uint64) ([]storeDomain.InventoryLevel, error) {
	var out []storeDomain.InventoryLevel
	res := r.db.WithContext(ctx).
		Where("store_id = ?", storeNumericID).
		Order("product_id ASC").
		Find(&out)
	return out, res.Error
}
