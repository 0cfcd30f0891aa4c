package models

import (
	"github.com/gofrs/uuid"
)

// PlaceholderImageURL is assigned when a book is created without a cover image.
const PlaceholderImageURL = "https://via.placeholder.com/150"

type Book struct {
	ID              uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Title           string    `json:"title" gorm:"not null"`
	Author          string    `json:"author" gorm:"not null"`
	Genre           string    `json:"genre,omitempty"`
	PublicationYear *int      `json:"publicationYear,omitempty"`
	ImageURL        string    `json:"imageUrl"`
	ISBN            *string   `json:"isbn,omitempty" gorm:"uniqueIndex"`
	Description     string    `json:"description,omitempty"`
}

// BookPatch carries a partial update. Pointer fields distinguish
// "not provided" (nil) from "set to empty".
type BookPatch struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	Genre           *string `json:"genre"`
	PublicationYear *int    `json:"publicationYear"`
	ImageURL        *string `json:"imageUrl"`
	ISBN            *string `json:"isbn"`
	Description     *string `json:"description"`
}
