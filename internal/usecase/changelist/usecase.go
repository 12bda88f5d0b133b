package changelist

import (
	"context"
	"encoding/json"
	"time"

	"fieldops-backend/internal/domain/store"
	"fieldops-backend/internal/domain/visit"
)

// Usecase is the read surface consumed by the Change Control Center: it never
// mutates anything, approval transitions happen elsewhere.
type Usecase struct {
	stores store.Repository
	lists  visit.ChangeListRepository
}

func NewUsecase(stores store.Repository, lists visit.ChangeListRepository) *Usecase {
	return &Usecase{stores: stores, lists: lists}
}

type ItemDTO struct {
	Position   int             `json:"position"`
	EntityType string          `json:"entity_type"`
	EntityID   uint64          `json:"entity_id"`
	FieldName  string          `json:"field_name"`
	NewValue   json.RawMessage `json:"new_value"`
}

type ChangeListDTO struct {
	ChangeListID  string    `json:"change_list_id"`
	SubmitterID   string    `json:"submitter_id"`
	SubmitterRole string    `json:"submitter_role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Items         []ItemDTO `json:"items,omitempty"`
}

func (u *Usecase) Get(ctx context.Context, changeListID string) (*ChangeListDTO, error) {
	cl, err := u.lists.GetByChangeListID(ctx, changeListID)
	if err != nil {
		return nil, visit.ErrNotFound
	}
	items, err := u.lists.ListItems(ctx, cl.ID)
	if err != nil {
		return nil, err
	}

	dto := toDTO(cl)
	dto.Items = make([]ItemDTO, 0, len(items))
	for _, it := range items {
		dto.Items = append(dto.Items, ItemDTO{
			Position:   it.Position,
			EntityType: it.EntityType,
			EntityID:   it.EntityID,
			FieldName:  it.FieldName,
			NewValue:   json.RawMessage(it.NewValue),
		})
	}
	return dto, nil
}

// ListByStore returns a store's change-list headers, optionally filtered by
// status. Items are not expanded here.
func (u *Usecase) ListByStore(ctx context.Context, storeID string, status visit.ChangeListStatus) ([]ChangeListDTO, error) {
	st, err := u.stores.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, store.ErrNotFound
	}
	lists, err := u.lists.ListByStoreID(ctx, st.ID, status)
	if err != nil {
		return nil, err
	}
	out := make([]ChangeListDTO, 0, len(lists))
	for i := range lists {
		out = append(out, *toDTO(&lists[i]))
	}
	return out, nil
}

func toDTO(cl *visit.ChangeList) *ChangeListDTO {
	return &ChangeListDTO{
		ChangeListID:  cl.ChangeListID,
		SubmitterID:   cl.SubmitterID,
		SubmitterRole: cl.SubmitterRole,
		Status:        string(cl.Status),
		CreatedAt:     cl.CreatedAt,
	}
}
