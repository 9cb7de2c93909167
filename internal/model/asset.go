package model

import (
	"time"

	"github.com/google/uuid"
)

// Asset types.
const (
	AssetImage = "image"
	AssetVideo = "video"
)

// Asset stores metadata for externally hosted media. The bytes themselves
// live in object storage; this table only knows where and how big.
type Asset struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Type        string    `gorm:"not null"` // "image" | "video"
	StoragePath string    `gorm:"not null"`
	URL         string    `gorm:"not null"`
	SizeBytes   int64     `gorm:"not null;default:0"`
	MimeType    string
	UsedIn      []string `gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Asset) TableName() string { return "assets" }
