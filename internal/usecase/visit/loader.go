package visit

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"fieldops-backend/internal/domain/store"
)

// Loader assembles the reference data for a new visit session.
type Loader struct {
	stores store.Repository
}

func NewLoader(r store.Repository) *Loader { return &Loader{stores: r} }

// Start resolves the store and loads brands, products, contacts,
// questionnaire and the approved inventory snapshot, then returns a session
// seeded with them. Only the store fetch is mandatory; the five collection
// fetches run concurrently and fall back to empty defaults on failure so the
// visit can proceed with partial reference data.
func (l *Loader) Start(ctx context.Context, storeID string) (*Session, error) {
	st, err := l.stores.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var (
		wg sync.WaitGroup

		brands    []store.Brand
		products  []store.Product
		contacts  []store.Contact
		quest     *store.Questionnaire
		inventory []store.InventoryLevel
	)
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				log.Warn().Err(err).
					Str("store_id", storeID).
					Str("fetch", name).
					Msg("reference fetch degraded to defaults")
			}
		}()
	}

	fetch("brands", func() (err error) {
		brands, err = l.stores.ListActiveBrands(ctx)
		return
	})
	fetch("products", func() (err error) {
		products, err = l.stores.ListActiveProducts(ctx)
		return
	})
	fetch("contacts", func() (err error) {
		contacts, err = l.stores.ListContactsByStoreID(ctx, st.ID)
		return
	})
	fetch("questionnaire", func() (err error) {
		quest, err = l.stores.GetQuestionnaireByStoreID(ctx, st.ID)
		return
	})
	fetch("inventory", func() (err error) {
		inventory, err = l.stores.ListInventoryByStoreID(ctx, st.ID)
		return
	})
	wg.Wait()

	d := NewDraft()
	d.Store = StoreIdentity{
		StoreID:   st.StoreID,
		NumericID: st.ID,
		Name:      st.Name,
		Address:   st.Address,
	}

	// One checklist per brand, one zero count per product. The compiler later
	// suppresses anything still at these defaults.
	for _, b := range brands {
		d.Stickers[b.ID] = StickerChecklist{}
	}
	for _, p := range products {
		d.Inventory[p.ID] = 0
	}
	for _, c := range contacts {
		cid := c.ID
		d.Contacts = append(d.Contacts, ContactForm{
			ContactID:          &cid,
			Name:               c.Name,
			Role:               c.Role,
			Phone:              c.Phone,
			AnswersCalls:       c.AnswersCalls,
			RespondsToMessages: c.RespondsToMessages,
			LastRespondedAt:    c.LastRespondedAt,
			Notes:              c.Notes,
		})
	}
	if quest != nil {
		d.Questionnaire = questionnaireForm(quest)
	}

	snapshot := make(map[uint64]int, len(inventory))
	for _, lvl := range inventory {
		snapshot[lvl.ProductID] = lvl.Quantity
	}

	return NewSession(d, brands, products, snapshot), nil
}

func questionnaireForm(q *store.Questionnaire) QuestionnaireForm {
	f := QuestionnaireForm{
		StoreCount:           q.StoreCount,
		SecurityLevel:        q.SecurityLevel,
		SellsFlowers:         q.SellsFlowers,
		ClothingSize:         q.ClothingSize,
		InterestedInCleaning: q.InterestedInCleaning,
	}
	if f.StoreCount < 1 {
		f.StoreCount = 1
	}
	if f.SecurityLevel == "" {
		f.SecurityLevel = store.SecurityMedium
	}
	if len(q.Wholesalers) > 0 {
		var names []string
		if err := json.Unmarshal(q.Wholesalers, &names); err != nil {
			log.Warn().Err(err).Uint64("store_id", q.StoreID).Msg("bad wholesalers payload, ignoring")
		}
		f.Wholesalers = names
	}
	return f
}
