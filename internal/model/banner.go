package model

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a hero-slider entry on the landing page.
type Banner struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ImageURL  string    `gorm:"not null"`
	Link      string
	AltText   string
	SortOrder int  `gorm:"column:sort_order;not null;default:0"`
	Enabled   bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Banner) TableName() string { return "banners" }

// MarqueeSetting configures the scrolling announcement strip.
type MarqueeSetting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Text      string    `gorm:"not null"`
	Link      string
	Speed     int  `gorm:"not null;default:30"`
	Enabled   bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MarqueeSetting) TableName() string { return "marquee_settings" }
