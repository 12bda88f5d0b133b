package mysql

import (
	"context"

	"gorm.io/gorm"

	visitDomain "fieldops-backend/internal/domain/visit"
)

type VisitRepository struct{ db *gorm.DB }

func NewVisitRepository(db *gorm.DB) *VisitRepository { return &VisitRepository{db: db} }

func (r *VisitRepository) Create(ctx context.Context, v *visitDomain.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitRepository) GetByVisitID(ctx context.Context, visitID string) (*visitDomain.Visit, error) {
	var out visitDomain.Visit
	if err := r.db.WithContext(ctx).Where("visit_id = ?", visitID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
