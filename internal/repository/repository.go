package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todolist/internal/models"
)

// ErrNotFound is returned when a scoped lookup or mutation matches no row.
// A record owned by another user is deliberately indistinguishable from a
// record that does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert hits a uniqueness constraint.
var ErrDuplicate = errors.New("record already exists")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// TodoRepo persists todos. Every method except Create is scoped by
// (userID, todoID); a mismatched owner behaves exactly like a missing row.
type TodoRepo interface {
	Create(ctx context.Context, t models.Todo) (int, error)
	ListActive(ctx context.Context, userID int) ([]models.Todo, error)
	ListCompleted(ctx context.Context, userID int) ([]models.Todo, error)
	GetByID(ctx context.Context, userID, todoID int) (*models.Todo, error)
	Update(ctx context.Context, userID, todoID int, title, memo string, important bool) error
	SetCompleted(ctx context.Context, userID, todoID int, at time.Time) error
	Delete(ctx context.Context, userID, todoID int) error
}

type Repository struct {
	Auth  Authorization
	Todos TodoRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(db),
		Todos: NewTodoSQLite(db),
	}
}
