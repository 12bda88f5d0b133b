package storemock

import (
	"context"

	domain "fieldops-backend/internal/domain/store"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled getters return empty
// results so the loader's degrade-to-defaults path stays quiet by default.
type Repo struct {
	GetByStoreIDFn              func(ctx context.Context, storeID string) (*domain.Store, error)
	ListActiveBrandsFn          func(ctx context.Context) ([]domain.Brand, error)
	ListActiveProductsFn        func(ctx context.Context) ([]domain.Product, error)
	ListContactsByStoreIDFn     func(ctx context.Context, storeNumericID uint64) ([]domain.Contact, error)
	GetQuestionnaireByStoreIDFn func(ctx context.Context, storeNumericID uint64) (*domain.Questionnaire, error)
	ListInventoryByStoreIDFn    func(ctx context.Context, storeNumericID uint64) ([]domain.InventoryLevel, error)
}

func (m *Repo) GetByStoreID(ctx context.Context, storeID string) (*domain.Store, error) {
	if m.GetByStoreIDFn != nil {
		return m.GetByStoreIDFn(ctx, storeID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveBrands(ctx context.Context) ([]domain.Brand, error) {
	if m.ListActiveBrandsFn != nil {
		return m.ListActiveBrandsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListActiveProductsFn != nil {
		return m.ListActiveProductsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListContactsByStoreID(ctx context.Context, storeNumericID uint64) ([]domain.Contact, error) {
	if m.ListContactsByStoreIDFn != nil {
		return m.ListContactsByStoreIDFn(ctx, storeNumericID)
	}
	return nil, nil
}

func (m *Repo) GetQuestionnaireByStoreID(ctx context.Context, storeNumericID uint64) (*domain.Questionnaire, error) {
	if m.GetQuestionnaireByStoreIDFn != nil {
		return m.GetQuestionnaireByStoreIDFn(ctx, storeNumericID)
	}
	return nil, nil
}

func (m *Repo) ListInventoryByStoreID(ctx context.Context, storeNumericID uint64) ([]domain.InventoryLevel, error) {
	if m.ListInventoryByStoreIDFn != nil {
		return m.ListInventoryByStoreIDFn(ctx, storeNumericID)
	}
	return nil, nil
}
