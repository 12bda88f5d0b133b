package visit

import "context"

type VisitRepository interface {
	Create(ctx context.Context, v *Visit) error
	GetByVisitID(ctx context.Context, visitID string) (*Visit, error)
}

type ChangeListRepository interface {
	Create(ctx context.Context, cl *ChangeList) error
	// CreateItems inserts the whole batch in one statement.
	CreateItems(ctx context.Context, items []ChangeListItem) error

	GetByChangeListID(ctx context.Context, changeListID string) (*ChangeList, error)
	ListItems(ctx context.Context, changeListNumericID uint64) ([]ChangeListItem, error)
	ListByStoreID(ctx context.Context, storeNumericID uint64, status ChangeListStatus) ([]ChangeList, error)
}
