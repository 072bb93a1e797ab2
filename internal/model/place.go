package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location holds geocoded coordinates for a place.
type Location struct {
	Lat float64 `json:"lat" gorm:"column:lat"`
	Lng float64 `json:"lng" gorm:"column:lng"`
}

// Place represents a user-created record describing a location.
type Place struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Address     string    `json:"address" gorm:"size:512;not null"`
	Location    Location  `json:"location" gorm:"embedded"`
	Image       string    `json:"image" gorm:"size:512"`
	CreatorID   uuid.UUID `json:"creator" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Creator *User `json:"-" gorm:"foreignKey:CreatorID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Place) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
