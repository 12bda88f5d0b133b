package visit

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("visit not found")
	ErrNotAuthenticated = errors.New("caller identity not resolved")
	ErrSubmitFailed     = errors.New("could not submit changes")
)

// Visit types and statuses. The check-visit flow only ever writes
// TypeCheck/StatusCompleted; other values belong to flows outside this
// service.
const (
	TypeCheck = "check"

	StatusCompleted = "completed"
)

type ChangeListStatus string

const (
	// StatusSubmitted is the only status this service writes. The Change
	// Control Center moves lists to approved/rejected.
	StatusSubmitted ChangeListStatus = "submitted"
	StatusApproved  ChangeListStatus = "approved"
	StatusRejected  ChangeListStatus = "rejected"
)

// EntityType values carried on persisted change-list items.
const (
	EntityInventory     = "inventory"
	EntityStickers      = "stickers"
	EntityQuestionnaire = "questionnaire"
)

type Visit struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	VisitID     string         `gorm:"column:visit_id;type:char(32);not null;uniqueIndex:ux_visits_visit_id_active"`
	StoreID     uint64         `gorm:"column:store_id;not null;index"`
	VisitorID   string         `gorm:"column:visitor_id;type:char(32);not null;index"`
	VisitorRole string         `gorm:"column:visitor_role;size:32;not null"`
	VisitType   string         `gorm:"column:visit_type;size:16;not null"`
	Status      string         `gorm:"column:status;size:16;not null"`
	Notes       string         `gorm:"column:notes;type:text"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Visit) TableName() string { return "visits" }

type ChangeList struct {
	ID            uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	ChangeListID  string           `gorm:"column:change_list_id;type:char(32);not null;uniqueIndex:ux_change_lists_public_id"`
	VisitID       uint64           `gorm:"column:visit_id;not null;uniqueIndex:ux_change_lists_visit"`
	StoreID       uint64           `gorm:"column:store_id;not null;index"`
	SubmitterID   string           `gorm:"column:submitter_id;type:char(32);not null"`
	SubmitterRole string           `gorm:"column:submitter_role;size:32;not null"`
	Status        ChangeListStatus `gorm:"column:status;size:16;not null;default:'submitted'"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt   `gorm:"column:deleted_at;index"`
}

func (ChangeList) TableName() string { return "change_lists" }

// ChangeListItem is one proposed field-level change. Position preserves the
// compiler's emit order. NewValue is an opaque JSON payload whose shape
// depends on EntityType.
type ChangeListItem struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	ChangeListID uint64         `gorm:"column:change_list_id;not null;index"`
	Position     int            `gorm:"column:position;not null"`
	EntityType   string         `gorm:"column:entity_type;size:32;not null"`
	EntityID     uint64         `gorm:"column:entity_id;not null"`
	FieldName    string         `gorm:"column:field_name;size:64;not null"`
	NewValue     datatypes.JSON `gorm:"column:new_value"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (ChangeListItem) TableName() string { return "change_list_items" }
