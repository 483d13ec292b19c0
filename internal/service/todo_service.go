package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todolist/internal/models"
	"todolist/internal/repository"
)

const maxTitleLen = 100

// Validation and lookup errors for todo flows.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title is too long")
	ErrNotFound      = errors.New("todo not found")
)

// IsInvalidInput reports whether err is a form-validation failure, as opposed
// to a lookup failure or an infrastructure fault.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrTitleTooLong)
}

type TodoService struct {
	todoRepo repository.TodoRepo
}

func NewTodoService(todoRepo repository.TodoRepo) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

// normalizeInput trims whitespace; the important flag passes through as-is.
func normalizeInput(in TodoInput) TodoInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Memo = strings.TrimSpace(in.Memo)
	return in
}

func validateInput(in TodoInput) error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if len(in.Title) > maxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// mapRepoErr translates the repository's not-found sentinel into the service
// one; everything else passes through untouched.
func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Create validates the input and persists a new todo owned by userID.
func (s *TodoService) Create(ctx context.Context, userID int, in TodoInput) (int, error) {
	in = normalizeInput(in)
	if err := validateInput(in); err != nil {
		return 0, err
	}
	return s.todoRepo.Create(ctx, models.Todo{
		Title:     in.Title,
		Memo:      in.Memo,
		Important: in.Important,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	})
}

func (s *TodoService) ListActive(ctx context.Context, userID int) ([]models.Todo, error) {
	return s.todoRepo.ListActive(ctx, userID)
}

func (s *TodoService) ListCompleted(ctx context.Context, userID int) ([]models.Todo, error) {
	return s.todoRepo.ListCompleted(ctx, userID)
}

// GetByID fetches an owned todo; ErrNotFound covers both a missing id and an
// id owned by someone else.
func (s *TodoService) GetByID(ctx context.Context, userID, todoID int) (models.Todo, error) {
	t, err := s.todoRepo.GetByID(ctx, userID, todoID)
	if err != nil {
		return models.Todo{}, mapRepoErr(err)
	}
	return *t, nil
}

// Update validates and applies title/memo/important changes to an owned todo.
func (s *TodoService) Update(ctx context.Context, userID, todoID int, in TodoInput) error {
	in = normalizeInput(in)
	if err := validateInput(in); err != nil {
		return err
	}
	return mapRepoErr(s.todoRepo.Update(ctx, userID, todoID, in.Title, in.Memo, in.Important))
}

// Complete stamps the completion time. Completing an already-completed todo
// moves the timestamp but keeps the record in the completed set.
func (s *TodoService) Complete(ctx context.Context, userID, todoID int) error {
	return mapRepoErr(s.todoRepo.SetCompleted(ctx, userID, todoID, time.Now().UTC()))
}

// Delete removes an owned todo permanently.
func (s *TodoService) Delete(ctx context.Context, userID, todoID int) error {
	return mapRepoErr(s.todoRepo.Delete(ctx, userID, todoID))
}
