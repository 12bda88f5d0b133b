package visit

import (
	"errors"
	"time"

	"fieldops-backend/internal/domain/store"
)

var errNegativeCount = errors.New("inventory count must be >= 0")

type BillingMethod string

const (
	BillingInvoice    BillingMethod = "bill"
	BillingPayUpfront BillingMethod = "pay_upfront"
)

type StoreIdentity struct {
	StoreID   string `json:"store_id"`
	NumericID uint64 `json:"-"`
	Name      string `json:"name"`
	Address   string `json:"address"`
}

// StickerChecklist tracks brand-sticker placement at the store plus free-text
// remarks for the brand.
type StickerChecklist struct {
	OnDoor    bool   `json:"on_door"`
	OnWindow  bool   `json:"on_window"`
	OnCounter bool   `json:"on_counter"`
	OnShelf   bool   `json:"on_shelf"`
	Notes     string `json:"notes"`
}

func (c StickerChecklist) empty() bool {
	return !c.OnDoor && !c.OnWindow && !c.OnCounter && !c.OnShelf && c.Notes == ""
}

type ContactForm struct {
	// ContactID is set when editing an existing contact, nil for a new one.
	ContactID          *uint64    `json:"contact_id,omitempty"`
	Name               string     `json:"name"`
	Role               string     `json:"role"`
	Phone              string     `json:"phone"`
	AnswersCalls       bool       `json:"answers_calls"`
	RespondsToMessages bool       `json:"responds_to_messages"`
	LastRespondedAt    *time.Time `json:"last_responded_at,omitempty"`
	Notes              string     `json:"notes"`
}

type QuestionnaireForm struct {
	StoreCount           int                 `json:"store_count"`
	SecurityLevel        store.SecurityLevel `json:"security_level"`
	SellsFlowers         bool                `json:"sells_flowers"`
	Wholesalers          []string            `json:"wholesalers"`
	ClothingSize         string              `json:"clothing_size"`
	InterestedInCleaning bool                `json:"interested_in_cleaning"`
}

// DefaultQuestionnaire is the no-change baseline the compiler diffs against.
func DefaultQuestionnaire() QuestionnaireForm {
	return QuestionnaireForm{StoreCount: 1, SecurityLevel: store.SecurityMedium}
}

// Draft is the unpersisted working state of one store visit. It lives only in
// memory for the lifetime of its Session and is discarded after submission.
type Draft struct {
	Store             StoreIdentity               `json:"store"`
	Billing           BillingMethod               `json:"billing"`
	Stickers          map[uint64]StickerChecklist `json:"stickers"`
	Inventory         map[uint64]int              `json:"inventory"`
	Contacts          []ContactForm               `json:"contacts"`
	Questionnaire     QuestionnaireForm           `json:"questionnaire"`
	InternalNotes     string                      `json:"internal_notes"`
	RelationshipNotes string                      `json:"relationship_notes"`
	FollowUpNotes     string                      `json:"follow_up_notes"`
	FollowUpDate      *time.Time                  `json:"follow_up_date,omitempty"`
}

func NewDraft() *Draft {
	return &Draft{
		Billing:       BillingInvoice,
		Stickers:      map[uint64]StickerChecklist{},
		Inventory:     map[uint64]int{},
		Questionnaire: DefaultQuestionnaire(),
	}
}

// Session owns the draft for a single in-progress visit together with the
// read-only reference data loaded at visit start. One session per visit; it
// is never shared across goroutines.
type Session struct {
	draft    *Draft
	brands   []store.Brand
	products []store.Product
	snapshot map[uint64]int
}

func NewSession(d *Draft, brands []store.Brand, products []store.Product, snapshot map[uint64]int) *Session {
	if d == nil {
		d = NewDraft()
	}
	if snapshot == nil {
		snapshot = map[uint64]int{}
	}
	return &Session{draft: d, brands: brands, products: products, snapshot: snapshot}
}

func (s *Session) Draft() *Draft { return s.draft }

// ApprovedCount returns the snapshot quantity for a product, zero when the
// product was never stocked.
func (s *Session) ApprovedCount(productID uint64) int { return s.snapshot[productID] }

func (s *Session) SetBilling(m BillingMethod) { s.draft.Billing = m }

func (s *Session) SetStickers(brandID uint64, c StickerChecklist) {
	s.draft.Stickers[brandID] = c
}

// SetInventoryCount records a proposed count and reports whether it trips the
// large-change warning. The flag is advisory; it never blocks the entry.
func (s *Session) SetInventoryCount(productID uint64, count int) (bool, error) {
	if count < 0 {
		return false, errNegativeCount
	}
	s.draft.Inventory[productID] = count
	return LargeChange(s.snapshot[productID], count), nil
}

func (s *Session) UpsertContact(i int, c ContactForm) {
	if i >= 0 && i < len(s.draft.Contacts) {
		s.draft.Contacts[i] = c
		return
	}
	s.draft.Contacts = append(s.draft.Contacts, c)
}

func (s *Session) SetQuestionnaire(q QuestionnaireForm) { s.draft.Questionnaire = q }

func (s *Session) SetNotes(internal, relationship, followUp string) {
	s.draft.InternalNotes = internal
	s.draft.RelationshipNotes = relationship
	s.draft.FollowUpNotes = followUp
}

// Compile diffs the current draft against the category baselines. The result
// feeds both the on-screen preview and the submission payload.
func (s *Session) Compile() []ChangeItem {
	return Compile(s.draft, s.snapshot, s.brands, s.products)
}
