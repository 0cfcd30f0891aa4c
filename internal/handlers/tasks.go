package handlers

import (
	"net/http"

	"library-services/internal/models"
	"library-services/internal/store"
	"library-services/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type TaskHandler struct {
	store *store.TaskStore
}

func NewTaskHandler(store *store.TaskStore) *TaskHandler {
	return &TaskHandler{store: store}
}

func (h *TaskHandler) Create(c *gin.Context) {
	var input struct {
		UserID      string `json:"userId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	fields := map[string]any{
		"userId": input.UserID,
		"title":  input.Title,
		"status": input.Status,
	}
	if errs := validation.Validate(fields, models.TaskRules); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []validation.FieldError{
			{Field: "userId", Message: "UserId must be a valid id"},
		}})
		return
	}

	task := models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	created, err := h.store.Create(&task)
	if err != nil {
		respondStoreError(c, err, "task")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TaskHandler) List(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", store.DefaultPageSize)

	filter := map[string]any{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if userID := c.Query("userId"); userID != "" {
		uid, err := uuid.FromString(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "userId must be a valid id"})
			return
		}
		filter["user_id"] = uid
	}

	tasks, total, err := h.store.List(filter, page, limit)
	if err != nil {
		respondStoreError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": tasks, "total": total})
}

func (h *TaskHandler) Get(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	task, err := h.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))

	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	fields := map[string]any{
		"title":  patch.Title,
		"status": patch.Status,
	}
	if errs := validation.ValidatePatch(fields, models.TaskRules); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	task, err := h.store.UpdateByID(id, &patch)
	if err != nil {
		respondStoreError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id := uuid.FromStringOrNil(c.Param("id"))
	if err := h.store.DeleteByID(id); err != nil {
		respondStoreError(c, err, "task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
