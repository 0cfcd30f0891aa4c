package models

import "library-services/internal/validation"

// BookRules is the field constraint table for books. The store applies it
// to every record before a write; handlers apply it to request payloads.
var BookRules = []validation.Rule{
	{Field: "title", Required: true, Message: "Title is required"},
	{Field: "author", Required: true, Message: "Author is required"},
	{Field: "imageUrl", Pattern: validation.URLPattern, Message: "Invalid URL format"},
}

// TaskRules is the field constraint table for tasks.
var TaskRules = []validation.Rule{
	{Field: "userId", Required: true, Message: "UserId is required"},
	{Field: "title", Required: true, Message: "Title is required"},
	{Field: "status", OneOf: TaskStatuses, Message: "Invalid status value"},
}

// Fields exposes the constrained fields of a book to the validator.
func (b *Book) Fields() map[string]any {
	return map[string]any{
		"title":    b.Title,
		"author":   b.Author,
		"imageUrl": b.ImageURL,
	}
}

// Fields exposes the constrained fields of a task to the validator.
func (t *Task) Fields() map[string]any {
	return map[string]any{
		"userId": t.UserID,
		"title":  t.Title,
		"status": t.Status,
	}
}
