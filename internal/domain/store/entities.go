package store

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrNotFound = errors.New("store not found")
)

type SecurityLevel string

const (
	SecurityLow    SecurityLevel = "low"
	SecurityMedium SecurityLevel = "medium"
	SecurityHigh   SecurityLevel = "high"
)

type Store struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	StoreID   string    `gorm:"column:store_id;type:char(32);not null;uniqueIndex:ux_stores_store_id"`
	Name      string    `gorm:"column:name;size:255;not null"`
	Address   string    `gorm:"column:address;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Store) TableName() string { return "stores" }

type Brand struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;size:255;not null"`
	Active bool   `gorm:"column:active;not null"`
}

func (Brand) TableName() string { return "brands" }

type Product struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `gorm:"column:name;size:255;not null"`
	Active bool   `gorm:"column:active;not null"`
}

func (Product) TableName() string { return "products" }

type Contact struct {
	ID                 uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	StoreID            uint64     `gorm:"column:store_id;not null;index"`
	Name               string     `gorm:"column:name;size:255;not null"`
	Role               string     `gorm:"column:role;size:100"`
	Phone              string     `gorm:"column:phone;size:32"`
	AnswersCalls       bool       `gorm:"column:answers_calls"`
	RespondsToMessages bool       `gorm:"column:responds_to_messages"`
	LastRespondedAt    *time.Time `gorm:"column:last_responded_at"`
	Notes              string     `gorm:"column:notes;type:text"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Contact) TableName() string { return "store_contacts" }

// Questionnaire holds at most one row per store; Wholesalers is a JSON array
// of supplier names.
type Questionnaire struct {
	ID                   uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	StoreID              uint64         `gorm:"column:store_id;not null;uniqueIndex:ux_questionnaires_store"`
	StoreCount           int            `gorm:"column:store_count;default:1"`
	SecurityLevel        SecurityLevel  `gorm:"column:security_level;size:16;default:'medium'"`
	SellsFlowers         bool           `gorm:"column:sells_flowers"`
	Wholesalers          datatypes.JSON `gorm:"column:wholesalers"`
	ClothingSize         string         `gorm:"column:clothing_size;size:16"`
	InterestedInCleaning bool           `gorm:"column:interested_in_cleaning"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Questionnaire) TableName() string { return "store_questionnaires" }

// InventoryLevel is the last approved on-hand quantity for a product at a
// store. Read-only for the visit flow; the Change Control Center owns updates.
type InventoryLevel struct {
	ID              uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	StoreID         uint64     `gorm:"column:store_id;not null;uniqueIndex:ux_inventory_store_product"`
	ProductID       uint64     `gorm:"column:product_id;not null;uniqueIndex:ux_inventory_store_product"`
	Quantity        int        `gorm:"column:quantity;not null;default:0"`
	LastRestockedAt *time.Time `gorm:"column:last_restocked_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (InventoryLevel) TableName() string { return "inventory_levels" }
