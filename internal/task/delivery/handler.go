package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"taskflow-backend/internal/task/domain"
	"taskflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns one page of the authenticated user's tasks
// GET /api/tasks?page=1&limit=10&status=PENDING&search=foo
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	in := usecase.ListTasksInput{
		Page:   parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		Limit:  parsePositiveInt(c.DefaultQuery("limit", "10"), 10),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	tasks, pagination, err := h.taskUsecase.List(userID, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	// Return empty array instead of null
	if tasks == nil {
		tasks = []domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":      tasks,
		"pagination": pagination,
	})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetByID(userID, taskID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var in usecase.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.taskUsecase.Create(userID, in)
	if err != nil {
		h.respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    task,
	})
}

// UpdateTask applies a partial patch to an existing task
// PATCH /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var in usecase.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.taskUsecase.Update(userID, taskID, in)
	if err != nil {
		h.respondError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.Delete(userID, taskID); err != nil {
		h.respondError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ToggleTaskStatus flips a task's status
// POST /api/tasks/:id/toggle
func (h *TaskHandler) ToggleTaskStatus(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.ToggleStatus(userID, taskID)
	if err != nil {
		h.respondError(c, err, "Failed to toggle task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task status toggled successfully",
		"task":    task,
	})
}

func (h *TaskHandler) respondError(c *gin.Context, err error, fallback string) {
	var verrs usecase.ValidationErrors
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
