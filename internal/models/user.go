package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// User backs the auth endpoints that issue access tokens. Tasks reference
// users by ID; the reference is not enforced at the database level.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
