package mysql

import (
	"context"

	"gorm.io/gorm"

	visitDomain "fieldops-backend/internal/domain/visit"
)

type ChangeListRepository struct{ db *gorm.DB }

func NewChangeListRepository(db *gorm.DB) *ChangeListRepository {
	return &ChangeListRepository{db: db}
}

func (r *ChangeListRepository) Create(ctx context.Context, cl *visitDomain.ChangeList) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

// CreateItems inserts the whole batch with one INSERT.
func (r *ChangeListRepository) CreateItems(ctx context.Context, items []visitDomain.ChangeListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *ChangeListRepository) GetByChangeListID(ctx context.Context, changeListID string) (*visitDomain.ChangeList, error) {
	var out visitDomain.ChangeList
	if err := r.db.WithContext(ctx).Where("change_list_id = ?", changeListID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ChangeListRepository) ListItems(ctx context.Context, changeListNumericID uint64) ([]visitDomain.ChangeListItem, error) {
	var out []visitDomain.ChangeListItem
	res := r.db.WithContext(ctx).
		Where("change_list_id = ?", changeListNumericID).
		Order("position ASC").
		Find(&out)
	return out, res.Error
}

func (r *ChangeListRepository) ListByStoreID(ctx context.Context, storeNumericID uint64, status visitDomain.ChangeListStatus) ([]visitDomain.ChangeList, error) {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeNumericID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []visitDomain.ChangeList
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
