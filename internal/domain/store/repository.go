package store

import "context"

type Repository interface {
	// GetByStoreID resolves a store by its public 32-hex id.
	GetByStoreID(ctx context.Context, storeID string) (*Store, error)

	ListActiveBrands(ctx context.Context) ([]Brand, error)
	ListActiveProducts(ctx context.Context) ([]Product, error)

	ListContactsByStoreID(ctx context.Context, storeNumericID uint64) ([]Contact, error)
	GetQuestionnaireByStoreID(ctx context.Context, storeNumericID uint64) (*Questionnaire, error)
	ListInventoryByStoreID(ctx context.Context, storeNumericID uint64) ([]InventoryLevel, error)
}
