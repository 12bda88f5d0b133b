package visitmock

import (
	"context"

	domain "fieldops-backend/internal/domain/visit"
)

var (
	_ domain.VisitRepository      = (*VisitRepo)(nil)
	_ domain.ChangeListRepository = (*ChangeListRepo)(nil)
)

// VisitRepo is a function-backed mock that satisfies domain.VisitRepository.
type VisitRepo struct {
	CreateFn       func(ctx context.Context, v *domain.Visit) error
	GetByVisitIDFn func(ctx context.Context, visitID string) (*domain.Visit, error)
}

func (m *VisitRepo) Create(ctx context.Context, v *domain.Visit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *VisitRepo) GetByVisitID(ctx context.Context, visitID string) (*domain.Visit, error) {
	if m.GetByVisitIDFn != nil {
		return m.GetByVisitIDFn(ctx, visitID)
	}
	return nil, context.Canceled
}

// ChangeListRepo is a function-backed mock that satisfies
// domain.ChangeListRepository.
type ChangeListRepo struct {
	CreateFn            func(ctx context.Context, cl *domain.ChangeList) error
	CreateItemsFn       func(ctx context.Context, items []domain.ChangeListItem) error
	GetByChangeListIDFn func(ctx context.Context, changeListID string) (*domain.ChangeList, error)
	ListItemsFn         func(ctx context.Context, changeListNumericID uint64) ([]domain.ChangeListItem, error)
	ListByStoreIDFn     func(ctx context.Context, storeNumericID uint64, status domain.ChangeListStatus) ([]domain.ChangeList, error)
}

func (m *ChangeListRepo) Create(ctx context.Context, cl *domain.ChangeList) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cl)
	}
	return nil
}

func (m *ChangeListRepo) CreateItems(ctx context.Context, items []domain.ChangeListItem) error {
	if m.CreateItemsFn != nil {
		return m.CreateItemsFn(ctx, items)
	}
	return nil
}

func (m *ChangeListRepo) GetByChangeListID(ctx context.Context, changeListID string) (*domain.ChangeList, error) {
	if m.GetByChangeListIDFn != nil {
		return m.GetByChangeListIDFn(ctx, changeListID)
	}
	return nil, context.Canceled
}

func (m *ChangeListRepo) ListItems(ctx context.Context, changeListNumericID uint64) ([]domain.ChangeListItem, error) {
	if m.ListItemsFn != nil {
		return m.ListItemsFn(ctx, changeListNumericID)
	}
	return nil, nil
}

func (m *ChangeListRepo) ListByStoreID(ctx context.Context, storeNumericID uint64, status domain.ChangeListStatus) ([]domain.ChangeList, error) {
	if m.ListByStoreIDFn != nil {
		return m.ListByStoreIDFn(ctx, storeNumericID, status)
	}
	return nil, nil
}
