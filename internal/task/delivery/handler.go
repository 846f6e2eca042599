package delivery

import (
	"errors"
	"io"
	"net/http"

	"ankiplan-backend/internal/task/domain"
	"ankiplan-backend/internal/task/usecase"
	"ankiplan-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	proofs      storage.Storage
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase, proofs storage.Storage) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		proofs:      proofs,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Priority    int    `json:"priority"`
	Value       int    `json:"value"`
}

// GetTasks returns the user's tasks sorted by priority
// GET /api/tasks?status=pending&category=daily
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	var statusPtr, categoryPtr *string
	if status := c.Query("status"); status != "" {
		statusPtr = &status
	}
	if category := c.Query("category"); category != "" {
		categoryPtr = &category
	}

	tasks, err := h.taskUsecase.GetUserTasks(userID, statusPtr, categoryPtr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetPriorityQueue returns only actionable tasks in priority order
// GET /api/tasks/priority_queue
func (h *TaskHandler) GetPriorityQueue(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetPriorityQueue(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTaskByID(userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, usecase.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Value:       req.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task as completed and applies gamification
// POST /api/tasks/:id/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	result, err := h.taskUsecase.CompleteTask(userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	// The task transition committed even if gamification failed; report the
	// degradation without pretending the request fully succeeded.
	if result.GamificationErr != "" {
		c.JSON(http.StatusMultiStatus, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SkipTask marks a task as skipped and applies the penalty
// POST /api/tasks/:id/skip
func (h *TaskHandler) SkipTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	result, err := h.taskUsecase.SkipTask(userID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.GamificationErr != "" {
		c.JSON(http.StatusMultiStatus, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateTaskStatus moves a task between pending and in_progress
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.SetStatus(userID, taskID, domain.TaskStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadProof stores a proof artifact and attaches its reference to the task
// POST /api/tasks/:id/proof
func (h *TaskHandler) UploadProof(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	// Check ownership before writing anything to disk.
	if _, err := h.taskUsecase.GetTaskByID(userID, taskID); err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ref, err := h.proofs.Save(taskID, fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.AttachProof(userID, taskID, ref)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// respondError maps domain errors onto HTTP statuses. Not-found and forbidden
// are deliberately the same response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCategory), errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
