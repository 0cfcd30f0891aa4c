package store

import (
	"errors"
	"fmt"

	"library-services/internal/models"
	"library-services/internal/validation"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type BookStore struct {
	db          *gorm.DB
	maxPageSize int
}

func NewBookStore(db *gorm.DB, maxPageSize int) *BookStore {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &BookStore{db: db, maxPageSize: maxPageSize}
}

// Create validates book against the schema rules, assigns its identifier
// and persists it. Defaults are applied before validation so the stored
// record is exactly what validation saw.
func (s *BookStore) Create(book *models.Book) (*models.Book, error) {
	if book.ImageURL == "" {
		book.ImageURL = models.PlaceholderImageURL
	}
	if errs := validation.Validate(book.Fields(), models.BookRules); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate book id: %w", err)
	}
	book.ID = id

	if err := s.db.Create(book).Error; err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// List returns one page of books matching filter plus the unpaginated
// match count. Filter keys are column names with exact-match values.
func (s *BookStore) List(filter map[string]any, page, pageSize int) ([]models.Book, int64, error) {
	page, pageSize = clampPage(page, pageSize, s.maxPageSize)

	query := s.db.Model(&models.Book{})
	if len(filter) > 0 {
		query = query.Where(filter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	books := []models.Book{}
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&books).Error; err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return books, total, nil
}

func (s *BookStore) GetByID(id uuid.UUID) (*models.Book, error) {
	if id == uuid.Nil {
		return nil, ErrNotFound
	}
	var book models.Book
	if err := s.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &book, nil
}

// UpdateByID merges the provided fields into the stored record,
// re-validates the merged result and persists it.
func (s *BookStore) UpdateByID(id uuid.UUID, patch *models.BookPatch) (*models.Book, error) {
	book, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.Genre != nil {
		book.Genre = *patch.Genre
	}
	if patch.PublicationYear != nil {
		book.PublicationYear = patch.PublicationYear
	}
	if patch.ImageURL != nil {
		book.ImageURL = *patch.ImageURL
	}
	if patch.ISBN != nil {
		book.ISBN = patch.ISBN
	}
	if patch.Description != nil {
		book.Description = *patch.Description
	}

	// Blanking the image URL re-applies the default, matching Create.
	if book.ImageURL == "" {
		book.ImageURL = models.PlaceholderImageURL
	}

	if errs := validation.Validate(book.Fields(), models.BookRules); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Save(book).Error; err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return book, nil
}

func (s *BookStore) DeleteByID(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrNotFound
	}
	result := s.db.Delete(&models.Book{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
