package store

import (
	"errors"
	"fmt"

	"library-services/internal/models"
	"library-services/internal/validation"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskStore struct {
	db          *gorm.DB
	maxPageSize int
}

func NewTaskStore(db *gorm.DB, maxPageSize int) *TaskStore {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &TaskStore{db: db, maxPageSize: maxPageSize}
}

// active scopes every read to records whose soft-delete flag is unset.
func (s *TaskStore) active() *gorm.DB {
	return s.db.Where("deleted = ?", false)
}

func (s *TaskStore) Create(task *models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if errs := validation.Validate(task.Fields(), models.TaskRules); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generate task id: %w", err)
	}
	task.ID = id

	if err := s.db.Create(task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *TaskStore) List(filter map[string]any, page, pageSize int) ([]models.Task, int64, error) {
	page, pageSize = clampPage(page, pageSize, s.maxPageSize)

	query := s.active().Model(&models.Task{})
	if len(filter) > 0 {
		query = query.Where(filter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	tasks := []models.Task{}
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&tasks).Error; err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

func (s *TaskStore) GetByID(id uuid.UUID) (*models.Task, error) {
	if id == uuid.Nil {
		return nil, ErrNotFound
	}
	var task models.Task
	if err := s.active().First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

func (s *TaskStore) UpdateByID(id uuid.UUID, patch *models.TaskPatch) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	// A stored task always carries a status, so a blank one here can only
	// come from the patch. The enum check skips absent values; catch it.
	if task.Status == "" {
		return nil, &ValidationError{Fields: []validation.FieldError{
			{Field: "status", Message: "Invalid status value"},
		}}
	}
	if errs := validation.Validate(task.Fields(), models.TaskRules); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.db.Save(task).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// DeleteByID soft-deletes: the record stays in the table with its flag
// set and disappears from every read.
func (s *TaskStore) DeleteByID(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrNotFound
	}
	result := s.db.Model(&models.Task{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
