package models

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// TaskStatuses lists the accepted values for Task.Status, in the order
// they are reported to clients.
var TaskStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

type Task struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status" gorm:"not null;default:'Pending'"`
	CreatedAt   time.Time `json:"createdAt"`
	Deleted     bool      `json:"-" gorm:"not null;default:false"`
}

// TaskPatch carries a partial update. Pointer fields distinguish
// "not provided" (nil) from "set to empty".
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
