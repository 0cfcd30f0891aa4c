package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-services/internal/handlers"
	"library-services/internal/models"
	"library-services/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

func setupBookRouter(t *testing.T) (*gin.Engine, *store.BookStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Book{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	books := store.NewBookStore(db, 0)
	handler := handlers.NewBookHandler(books)

	router := gin.New()
	router.POST("/books", handler.Create)
	router.GET("/books", handler.List)
	router.GET("/books/:id", handler.Get)
	router.PUT("/books/:id", handler.Update)
	router.DELETE("/books/:id", handler.Delete)

	return router, books
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateBookScenario(t *testing.T) {
	router, _ := setupBookRouter(t)

	w := doJSON(router, "POST", "/books", map[string]any{
		"title":  "Dune",
		"author": "Herbert",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var created models.Book
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if created.ImageURL != models.PlaceholderImageURL {
		t.Errorf("Expected placeholder image URL, got %q", created.ImageURL)
	}
	if created.ISBN != nil {
		t.Errorf("Expected absent ISBN, got %q", *created.ISBN)
	}

	// The created book is findable by its filterable fields.
	w = doJSON(router, "GET", "/books?author=Herbert", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var listing struct {
		Items []models.Book `json:"items"`
		Total int64         `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if listing.Total != 1 || len(listing.Items) != 1 {
		t.Fatalf("Expected exactly one match, got total=%d items=%d", listing.Total, len(listing.Items))
	}
	if listing.Items[0].Title != "Dune" {
		t.Errorf("Expected title 'Dune', got %q", listing.Items[0].Title)
	}
}

func TestCreateBookValidationErrors(t *testing.T) {
	router, books := setupBookRouter(t)

	w := doJSON(router, "POST", "/books", map[string]any{
		"genre": "Sci-Fi",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var response struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Errors) != 2 {
		t.Fatalf("Expected 2 field errors, got %d", len(response.Errors))
	}
	if response.Errors[0].Field != "title" || response.Errors[0].Message != "Title is required" {
		t.Errorf("Unexpected first error: %+v", response.Errors[0])
	}

	// Nothing reached the store.
	_, total, err := books.List(nil, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected no persisted records, got %d", total)
	}
}

func TestCreateBookInvalidJSON(t *testing.T) {
	router, _ := setupBookRouter(t)

	req, _ := http.NewRequest("POST", "/books", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestGetBookNotFound(t *testing.T) {
	router, _ := setupBookRouter(t)

	w := doJSON(router, "GET", "/books/"+uuid.Must(uuid.NewV4()).String(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}

	// A malformed identifier is not found, never a server error.
	w = doJSON(router, "GET", "/books/not-a-uuid", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d for malformed id, got %d", http.StatusNotFound, w.Code)
	}
}

func TestUpdateBook(t *testing.T) {
	router, books := setupBookRouter(t)

	created, err := books.Create(&models.Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	w := doJSON(router, "PUT", "/books/"+created.ID.String(), map[string]any{
		"genre": "Sci-Fi",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var updated models.Book
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if updated.Title != "Dune" || updated.Genre != "Sci-Fi" {
		t.Errorf("Unexpected merged record: %+v", updated)
	}

	w = doJSON(router, "PUT", "/books/"+uuid.Must(uuid.NewV4()).String(), map[string]any{
		"genre": "Sci-Fi",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestUpdateBookRejectsBlankTitle(t *testing.T) {
	router, books := setupBookRouter(t)

	created, err := books.Create(&models.Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	w := doJSON(router, "PUT", "/books/"+created.ID.String(), map[string]any{
		"title": "",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestDeleteBook(t *testing.T) {
	router, books := setupBookRouter(t)

	created, err := books.Create(&models.Book{Title: "Dune", Author: "Herbert"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	w := doJSON(router, "DELETE", "/books/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	expected := `{"message":"book deleted"}`
	if w.Body.String() != expected {
		t.Errorf("Expected body %s, got %s", expected, w.Body.String())
	}

	w = doJSON(router, "DELETE", "/books/"+created.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestListBooksRejectsBadYearFilter(t *testing.T) {
	router, _ := setupBookRouter(t)

	w := doJSON(router, "GET", "/books?publicationYear=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestListBooksIgnoresUnknownFilters(t *testing.T) {
	router, books := setupBookRouter(t)

	if _, err := books.Create(&models.Book{Title: "Dune", Author: "Herbert"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Unrecognized query parameters never reach the filter.
	w := doJSON(router, "GET", "/books?title=Dune&isbn=123", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var listing struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if listing.Total != 1 {
		t.Errorf("Expected unfiltered total 1, got %d", listing.Total)
	}
}
