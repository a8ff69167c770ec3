// Package tasks provides database operations for task management.
//
// Every read and write is scoped to the owning user: a task that exists but
// belongs to someone else is reported as not found, never as forbidden.
package tasks

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/akarpov/tasklist/internal/entities"
)

// ErrTaskNotFound is returned when a task does not exist or is not owned
// by the requesting user.
var ErrTaskNotFound = errors.New("task not found")

// Repository handles all task database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tasks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateTask creates a new incomplete task owned by userID.
func (r *Repository) CreateTask(ctx context.Context, userID uint, title string) (*entities.Task, error) {
	task := &entities.Task{
		UserID:    userID,
		Title:     title,
		Completed: false,
	}
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// GetTasksForUser returns all tasks owned by userID.
func (r *Repository) GetTasksForUser(ctx context.Context, userID uint) ([]entities.Task, error) {
	tasks := []entities.Task{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error
	return tasks, err
}

// GetTaskForUser returns the task with the given id owned by userID.
func (r *Repository) GetTaskForUser(ctx context.Context, id, userID uint) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// MarkTaskComplete sets completed on the task owned by userID and returns
// the updated task.
func (r *Repository) MarkTaskComplete(ctx context.Context, id, userID uint) (*entities.Task, error) {
	task, err := r.GetTaskForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Completed = true
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task owned by userID.
func (r *Repository) DeleteTask(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
