package service

import (
	"context"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Todos exposes per-user todo operations. Every call that names a todoID is
// owner-scoped: a todo owned by another user yields ErrNotFound.
type Todos interface {
	Create(ctx context.Context, userID int, in TodoInput) (int, error)
	ListActive(ctx context.Context, userID int) ([]models.Todo, error)
	ListCompleted(ctx context.Context, userID int) ([]models.Todo, error)
	GetByID(ctx context.Context, userID, todoID int) (models.Todo, error)
	Update(ctx context.Context, userID, todoID int, in TodoInput) error
	Complete(ctx context.Context, userID, todoID int) error
	Delete(ctx context.Context, userID, todoID int) error
}

// TodoInput carries validated form fields for create/edit.
type TodoInput struct {
	Title     string
	Memo      string
	Important bool
}

// AuthConfig holds token issuing parameters, read from config in main.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Todos
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Todos:         NewTodoService(repos.Todos),
	}
}
