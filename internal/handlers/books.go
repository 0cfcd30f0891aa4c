package handlers

import (
	"net/http"
	"strconv"

	"library-services/internal/models"
	"library-services/internal/store"
	"library-services/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type BookHandler struct {
	store *store.BookStore
}

func NewBookHandler(store *store.BookStore) *BookHandler {
	return &BookHandler{store: store}
}

func (h *BookHandler) Create(c *gin.Context) {
	var input struct {
		Title           string  `json:"title"`
		Author          string  `json:"author"`
		Genre           string  `json:"genre"`
		PublicationYear *int    `json:"publicationYear"`
		ImageURL        string  `json:"imageUrl"`
		ISBN            *string `json:"isbn"`
		Description     string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	// Request-level gate: the same rules the store re-applies at write time.
	fields := map[string]any{
		"title":    input.Title,
		"author":   input.Author,
		"imageUrl": input.ImageURL,
	}
	if errs := validation.Validate(fields, models.BookRules); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	book := models.Book{
		Title:           input.Title,
		Author:          input.Author,
		Genre:           input.Genre,
		PublicationYear: input.PublicationYear,
		ImageURL:        input.ImageURL,
		ISBN:            input.ISBN,
		Description:     input.Description,
	}
	created, err := h.store.Create(&book)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookHandler) List(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", store.DefaultPageSize)

	filter := map[string]any{}
	if genre := c.Query("genre"); genre != "" {
		filter["genre"] = genre
	}
	if author := c.Query("author"); author != "" {
		filter["author"] = author
	}
	if year := c.Query("publicationYear"); year != "" {
		n, err := strconv.Atoi(year)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "publicationYear must be a number"})
			return
		}
		filter["publication_year"] = n
	}

	books, total, err := h.store.List(filter, page, limit)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": books, "total": total})
}

func (h *BookHandler) Get(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	book, err := h.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Update(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	var patch models.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	fields := map[string]any{
		"title":    patch.Title,
		"author":   patch.Author,
		"imageUrl": patch.ImageURL,
	}
	if errs := validation.ValidatePatch(fields, models.BookRules); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	book, err := h.store.UpdateByID(id, &patch)
	if err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	if err := h.store.DeleteByID(id); err != nil {
		respondStoreError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted"})
}
