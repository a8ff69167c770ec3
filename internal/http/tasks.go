package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov/tasklist/internal/database/tasks"
	"github.com/akarpov/tasklist/internal/entities"
)

// TaskStore defines database operations for task management. Every
// operation is scoped to the owning user.
type TaskStore interface {
	CreateTask(ctx context.Context, userID uint, title string) (*entities.Task, error)
	GetTasksForUser(ctx context.Context, userID uint) ([]entities.Task, error)
	MarkTaskComplete(ctx context.Context, id, userID uint) (*entities.Task, error)
	DeleteTask(ctx context.Context, id, userID uint) error
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// TasksController handles the task CRUD endpoints.
type TasksController struct {
	store TaskStore
}

// NewTasksController creates a new tasks controller.
func NewTasksController(store TaskStore) *TasksController {
	return &TasksController{store: store}
}

// CreateTask creates a new task owned by the authenticated user.
// POST /todos/
func (tc *TasksController) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}

	task, err := tc.store.CreateTask(c.Request.Context(), GetUserID(c), req.Title)
	if err != nil {
		respondInternalError(c, err, "create task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks returns the authenticated user's tasks.
// GET /todos/
func (tc *TasksController) ListTasks(c *gin.Context) {
	list, err := tc.store.GetTasksForUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list tasks")
		return
	}

	c.JSON(http.StatusOK, list)
}

// MarkComplete marks the user's task as completed. A task owned by someone
// else is a 404, same as a task that does not exist.
// PUT /todos/:id
func (tc *TasksController) MarkComplete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := tc.store.MarkTaskComplete(c.Request.Context(), id, GetUserID(c))
	if err != nil {
		if errors.Is(err, tasks.ErrTaskNotFound) {
			respondNotFound(c, "task")
			return
		}
		respondInternalError(c, err, "mark task complete")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes the user's task.
// DELETE /todos/:id
func (tc *TasksController) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.store.DeleteTask(c.Request.Context(), id, GetUserID(c)); err != nil {
		if errors.Is(err, tasks.ErrTaskNotFound) {
			respondNotFound(c, "task")
			return
		}
		respondInternalError(c, err, "delete task")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "task deleted"})
}
