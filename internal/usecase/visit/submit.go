package visit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"fieldops-backend/internal/domain/uow"
	domainVisit "fieldops-backend/internal/domain/visit"
	"fieldops-backend/pkg/id"
)

// Identity of the field worker submitting a visit.
type Identity struct {
	VisitorID string
	Role      string
}

func (i Identity) valid() bool { return i.VisitorID != "" && i.Role != "" }

type SubmitResult struct {
	VisitID      string `json:"visit_id"`
	ChangeListID string `json:"change_list_id"`
	ItemCount    int    `json:"item_count"`
}

// Submitter persists a finished visit session as a Visit, a ChangeList and
// its item batch. All three writes run in one unit of work: a failure at any
// stage rolls back the whole chain, so no orphaned Visit or empty ChangeList
// can survive a failed submission.
type Submitter struct {
	uow uow.UnitOfWork
}

func NewSubmitter(tx uow.UnitOfWork) *Submitter { return &Submitter{uow: tx} }

func (s *Submitter) Submit(ctx context.Context, sess *Session, ident Identity) (*SubmitResult, error) {
	if !ident.valid() {
		return nil, domainVisit.ErrNotAuthenticated
	}
	if s.uow == nil {
		return nil, domainVisit.ErrSubmitFailed
	}

	d := sess.Draft()
	items := sess.Compile()

	var res SubmitResult
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		v := &domainVisit.Visit{
			VisitID:     id.NewID32(),
			StoreID:     d.Store.NumericID,
			VisitorID:   ident.VisitorID,
			VisitorRole: ident.Role,
			VisitType:   domainVisit.TypeCheck,
			Status:      domainVisit.StatusCompleted,
			Notes:       d.InternalNotes,
		}
		if err := r.Visits.Create(ctx, v); err != nil {
			return fmt.Errorf("create visit: %w", err)
		}

		cl := &domainVisit.ChangeList{
			ChangeListID:  id.NewID32(),
			VisitID:       v.ID,
			StoreID:       d.Store.NumericID,
			SubmitterID:   ident.VisitorID,
			SubmitterRole: ident.Role,
			Status:        domainVisit.StatusSubmitted,
		}
		if err := r.ChangeLists.Create(ctx, cl); err != nil {
			return fmt.Errorf("create change list: %w", err)
		}

		rows, err := buildItemRows(cl.ID, items)
		if err != nil {
			return err
		}
		// A visit with nothing to propose is valid; skip the batch insert.
		if len(rows) > 0 {
			if err := r.ChangeLists.CreateItems(ctx, rows); err != nil {
				return fmt.Errorf("create change list items: %w", err)
			}
		}

		res = SubmitResult{VisitID: v.VisitID, ChangeListID: cl.ChangeListID, ItemCount: len(rows)}
		return nil
	})
	if err != nil {
		log.Error().Err(err).
			Str("store_id", d.Store.StoreID).
			Str("visitor_id", ident.VisitorID).
			Msg("visit submission rolled back")
		return nil, fmt.Errorf("%w: %v", domainVisit.ErrSubmitFailed, err)
	}

	log.Info().
		Str("store_id", d.Store.StoreID).
		Str("visit_id", res.VisitID).
		Int("items", res.ItemCount).
		Msg("visit submitted")
	return &res, nil
}

// buildItemRows keeps only the compiler output that belongs in the approval
// payload (inventory, stickers, questionnaire). Position preserves the
// compiler's ordering.
func buildItemRows(changeListID uint64, items []ChangeItem) ([]domainVisit.ChangeListItem, error) {
	var rows []domainVisit.ChangeListItem
	for _, it := range items {
		if it.EntityType == "" {
			continue
		}
		payload, err := json.Marshal(it.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode item payload for %q: %w", it.Label, err)
		}
		rows = append(rows, domainVisit.ChangeListItem{
			ChangeListID: changeListID,
			Position:     len(rows),
			EntityType:   it.EntityType,
			EntityID:     it.EntityID,
			FieldName:    it.FieldName,
			NewValue:     payload,
		})
	}
	return rows, nil
}
