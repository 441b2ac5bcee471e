package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name     string    `gorm:"not null"`
	Category string    `gorm:"default:'General'"`
	Quantity int       `gorm:"default:0"`
	Unit     string    `gorm:"default:'pcs'"`
	// Restock alert fires when Quantity falls to or below this value
	ReorderLevel int     `gorm:"default:5"`
	Price        float64 `gorm:"type:decimal(10,2);default:0.0"`

	gorm.Model
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}

func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}
