package visit

import (
	"fmt"
	"strconv"
	"strings"

	"fieldops-backend/internal/domain/store"
	domainVisit "fieldops-backend/internal/domain/visit"
)

type Category string

const (
	CategoryInventory     Category = "inventory"
	CategoryStickers      Category = "stickers"
	CategoryQuestionnaire Category = "questionnaire"
	CategoryContacts      Category = "contacts"
	CategoryNotes         Category = "notes"
)

// oldValuePlaceholder: per-field previous values are not carried into change
// items; the approved snapshot is used for anomaly detection only.
const oldValuePlaceholder = "—"

const noteDisplayLimit = 50

// ChangeItem is one proposed change. Category/Label/OldValue/NewValue are the
// preview surface; EntityType and friends route the item into a persisted
// ChangeListItem row. Items with an empty EntityType (contacts, notes) stay
// preview-only: contact edits and notes are not part of the approval payload,
// internal notes travel on the Visit row instead.
type ChangeItem struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	OldValue string   `json:"old_value"`
	NewValue string   `json:"new_value"`

	EntityType string         `json:"-"`
	EntityID   uint64         `json:"-"`
	FieldName  string         `json:"-"`
	Payload    map[string]any `json:"-"`
}

// Compile diffs a draft against the per-category no-change baselines and
// returns the full ordered change list. Pure and deterministic: brand and
// product iteration follows the catalog slices, categories always come out
// as Inventory, Stickers, Questionnaire, Contacts, Notes.
func Compile(d *Draft, snapshot map[uint64]int, brands []store.Brand, products []store.Product) []ChangeItem {
	var items []ChangeItem
	items = append(items, compileInventory(d, snapshot, products)...)
	items = append(items, compileStickers(d, brands)...)
	items = append(items, compileQuestionnaire(d)...)
	items = append(items, compileContacts(d)...)
	items = append(items, compileNotes(d)...)
	return items
}

// A count of 0 is treated as "no observation", not as confirmed empty stock,
// so it never produces an item.
func compileInventory(d *Draft, snapshot map[uint64]int, products []store.Product) []ChangeItem {
	var items []ChangeItem
	for _, p := range products {
		count := d.Inventory[p.ID]
		if count <= 0 {
			continue
		}
		items = append(items, ChangeItem{
			Category:   CategoryInventory,
			Label:      p.Name,
			OldValue:   oldValuePlaceholder,
			NewValue:   strconv.Itoa(count),
			EntityType: domainVisit.EntityInventory,
			EntityID:   p.ID,
			FieldName:  "quantity",
			Payload: map[string]any{
				"quantity":     count,
				"large_change": LargeChange(snapshot[p.ID], count),
			},
		})
	}
	return items
}

func compileStickers(d *Draft, brands []store.Brand) []ChangeItem {
	var items []ChangeItem
	for _, b := range brands {
		c, ok := d.Stickers[b.ID]
		if !ok || c.empty() {
			continue
		}
		flags := []struct {
			set   bool
			field string
			label string
		}{
			{c.OnDoor, "on_door", "door sticker"},
			{c.OnWindow, "on_window", "window sticker"},
			{c.OnCounter, "on_counter", "counter sticker"},
			{c.OnShelf, "on_shelf", "shelf sticker"},
		}
		for _, f := range flags {
			if !f.set {
				continue
			}
			items = append(items, ChangeItem{
				Category:   CategoryStickers,
				Label:      b.Name + " " + f.label,
				OldValue:   oldValuePlaceholder,
				NewValue:   "Yes",
				EntityType: domainVisit.EntityStickers,
				EntityID:   b.ID,
				FieldName:  f.field,
				Payload:    map[string]any{"value": true},
			})
		}
		if c.Notes != "" {
			items = append(items, ChangeItem{
				Category:   CategoryStickers,
				Label:      b.Name + " sticker notes",
				OldValue:   oldValuePlaceholder,
				NewValue:   c.Notes,
				EntityType: domainVisit.EntityStickers,
				EntityID:   b.ID,
				FieldName:  "notes",
				Payload:    map[string]any{"text": c.Notes},
			})
		}
	}
	return items
}

func compileQuestionnaire(d *Draft) []ChangeItem {
	q := d.Questionnaire
	storeID := d.Store.NumericID

	item := func(field, label, display string, value any) ChangeItem {
		return ChangeItem{
			Category:   CategoryQuestionnaire,
			Label:      label,
			OldValue:   oldValuePlaceholder,
			NewValue:   display,
			EntityType: domainVisit.EntityQuestionnaire,
			EntityID:   storeID,
			FieldName:  field,
			Payload:    map[string]any{"value": value},
		}
	}

	var items []ChangeItem
	if q.StoreCount > 1 {
		items = append(items, item("store_count", "Store count", strconv.Itoa(q.StoreCount), q.StoreCount))
	}
	if q.SecurityLevel != store.SecurityMedium {
		items = append(items, item("security_level", "Security level", string(q.SecurityLevel), string(q.SecurityLevel)))
	}
	if q.SellsFlowers {
		items = append(items, item("sells_flowers", "Sells flowers", "Yes", true))
	}
	if len(q.Wholesalers) > 0 {
		joined := strings.Join(q.Wholesalers, ", ")
		items = append(items, item("wholesalers", "Wholesalers", joined, q.Wholesalers))
	}
	if q.ClothingSize != "" {
		items = append(items, item("clothing_size", "Clothing size", q.ClothingSize, q.ClothingSize))
	}
	if q.InterestedInCleaning {
		items = append(items, item("interested_in_cleaning", "Interested in cleaning", "Yes", true))
	}
	return items
}

func compileContacts(d *Draft) []ChangeItem {
	var items []ChangeItem
	for i, c := range d.Contacts {
		if c.Name == "" {
			continue
		}
		old := "New"
		if c.ContactID != nil {
			old = "Updated"
		}
		items = append(items, ChangeItem{
			Category: CategoryContacts,
			Label:    fmt.Sprintf("Contact #%d", i+1),
			OldValue: old,
			NewValue: fmt.Sprintf("%s (%s) - %s", c.Name, c.Role, c.Phone),
		})
	}
	return items
}

func compileNotes(d *Draft) []ChangeItem {
	fields := []struct {
		label string
		text  string
	}{
		{"Internal notes", d.InternalNotes},
		{"Relationship notes", d.RelationshipNotes},
		{"Follow-up notes", d.FollowUpNotes},
	}
	var items []ChangeItem
	for _, f := range fields {
		if f.text == "" {
			continue
		}
		items = append(items, ChangeItem{
			Category: CategoryNotes,
			Label:    f.label,
			OldValue: oldValuePlaceholder,
			NewValue: truncateNote(f.text, noteDisplayLimit),
		})
	}
	return items
}

func truncateNote(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
