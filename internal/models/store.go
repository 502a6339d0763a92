// internal/models/store.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Store relates the catalog to its primary owner. OwnerID is the
// numeric user id handed over by the chat-client host.
type Store struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	OwnerID   int64     `json:"owner_id" gorm:"not null;uniqueIndex"`
}

// StoreAdmin grants secondary admin rights on a store to a host user.
type StoreAdmin struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt  time.Time `json:"created_at"`
	StoreID    uuid.UUID `json:"store_id" gorm:"type:uuid;not null;index"`
	TelegramID int64     `json:"telegram_id" gorm:"not null;index"`

	Store Store `json:"store,omitempty" gorm:"foreignKey:StoreID"`
}

// AdminAccess is the once-per-session result of the ownership probe.
type AdminAccess struct {
	Authorized bool      `json:"authorized"`
	StoreID    uuid.UUID `json:"store_id,omitempty"`
}
