package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todolist/internal/models"
)

type TodoSQLite struct {
	db *sql.DB
}

func NewTodoSQLite(db *sql.DB) *TodoSQLite {
	return &TodoSQLite{db: db}
}

var _ TodoRepo = (*TodoSQLite)(nil)

const (
	insertTodoSQL = `
		INSERT INTO todos (title, memo, important, created_at, completed_at, user_id)
		VALUES (?, ?, ?, ?, NULL, ?)
	`

	// Active list: important items first, insertion order within a tier.
	selectActiveTodosSQL = `
		SELECT id, title, memo, important, created_at, completed_at, user_id
		FROM todos WHERE user_id = ? AND completed_at IS NULL
		ORDER BY important DESC, id ASC
	`

	// Completed list: most recently completed first.
	selectCompletedTodosSQL = `
		SELECT id, title, memo, important, created_at, completed_at, user_id
		FROM todos WHERE user_id = ? AND completed_at IS NOT NULL
		ORDER BY completed_at DESC
	`

	selectTodoByIDSQL = `
		SELECT id, title, memo, important, created_at, completed_at, user_id
		FROM todos WHERE id = ? AND user_id = ?
	`

	updateTodoSQL = `
		UPDATE todos SET title = ?, memo = ?, important = ?
		WHERE id = ? AND user_id = ?
	`

	completeTodoSQL = `UPDATE todos SET completed_at = ? WHERE id = ? AND user_id = ?`

	deleteTodoSQL = `DELETE FROM todos WHERE id = ? AND user_id = ?`
)

// Create inserts a new todo and returns its ID. CreatedAt is set if zero.
func (r *TodoSQLite) Create(ctx context.Context, t models.Todo) (int, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertTodoSQL,
		t.Title, t.Memo, t.Important, t.CreatedAt, t.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert todo for user %d: %w", t.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for todo: %w", err)
	}
	return int(lastID), nil
}

func (r *TodoSQLite) ListActive(ctx context.Context, userID int) ([]models.Todo, error) {
	return r.list(ctx, selectActiveTodosSQL, userID)
}

func (r *TodoSQLite) ListCompleted(ctx context.Context, userID int) ([]models.Todo, error) {
	return r.list(ctx, selectCompletedTodosSQL, userID)
}

func (r *TodoSQLite) list(ctx context.Context, query string, userID int) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select todos for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Todo, 0, 16)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a todo scoped to its owner. Returns ErrNotFound when no row
// matches, including when the id exists under a different owner.
func (r *TodoSQLite) GetByID(ctx context.Context, userID, todoID int) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx, selectTodoByIDSQL, todoID, userID)
	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select todo %d for user %d: %w", todoID, userID, err)
	}
	return &t, nil
}

// Update rewrites title/memo/important of an owned todo.
func (r *TodoSQLite) Update(ctx context.Context, userID, todoID int, title, memo string, important bool) error {
	res, err := r.db.ExecContext(ctx, updateTodoSQL, title, memo, important, todoID, userID)
	if err != nil {
		return fmt.Errorf("update todo %d for user %d: %w", todoID, userID, err)
	}
	return requireRow(res)
}

// SetCompleted stamps the completion time of an owned todo.
func (r *TodoSQLite) SetCompleted(ctx context.Context, userID, todoID int, at time.Time) error {
	res, err := r.db.ExecContext(ctx, completeTodoSQL, at.UTC(), todoID, userID)
	if err != nil {
		return fmt.Errorf("complete todo %d for user %d: %w", todoID, userID, err)
	}
	return requireRow(res)
}

// Delete removes an owned todo permanently.
func (r *TodoSQLite) Delete(ctx context.Context, userID, todoID int) error {
	res, err := r.db.ExecContext(ctx, deleteTodoSQL, todoID, userID)
	if err != nil {
		return fmt.Errorf("delete todo %d for user %d: %w", todoID, userID, err)
	}
	return requireRow(res)
}

// requireRow maps "zero rows affected" to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (models.Todo, error) {
	var (
		t           models.Todo
		completedAt sql.NullTime
	)
	if err := s.Scan(&t.ID, &t.Title, &t.Memo, &t.Important, &t.CreatedAt, &completedAt, &t.UserID); err != nil {
		return models.Todo{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	if completedAt.Valid {
		utc := completedAt.Time.UTC()
		t.CompletedAt = &utc
	}
	return t, nil
}
