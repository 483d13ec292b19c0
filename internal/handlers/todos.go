package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

const errBadTodoInput = "bad data passed in, try again"

// todoForm maps the create/edit form. The checkbox submits value="true", so
// Important binds cleanly to bool; validation proper lives in the service.
type todoForm struct {
	Title     string `form:"title"`
	Memo      string `form:"memo"`
	Important bool   `form:"important"`
}

func (f todoForm) input() service.TodoInput {
	return service.TodoInput{Title: f.Title, Memo: f.Memo, Important: f.Important}
}

// parseTodoID reads the :id path param. A non-numeric id gets the same 404 as
// a missing record.
func (h *Handler) parseTodoID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

func (h *Handler) createTodoForm(c *gin.Context) {
	c.HTML(http.StatusOK, "todo_form.html", gin.H{})
}

func (h *Handler) createTodo(c *gin.Context) {
	var form todoForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "todo_form.html", gin.H{
			"Error": errBadTodoInput,
			"Form":  form,
		})
		return
	}

	userID := currentUserID(c)
	if _, err := h.services.Todos.Create(c.Request.Context(), userID, form.input()); err != nil {
		if service.IsInvalidInput(err) {
			c.HTML(http.StatusBadRequest, "todo_form.html", gin.H{
				"Error": errBadTodoInput,
				"Form":  form,
			})
			return
		}
		h.fail(c, "todo_create_failed", err, "userId", userID)
		return
	}
	c.Redirect(http.StatusSeeOther, activeListPath)
}

func (h *Handler) listActive(c *gin.Context) {
	userID := currentUserID(c)
	todos, err := h.services.Todos.ListActive(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "todo_list_active_failed", err, "userId", userID)
		return
	}
	c.HTML(http.StatusOK, "todos_active.html", gin.H{"Todos": todos})
}

func (h *Handler) listCompleted(c *gin.Context) {
	userID := currentUserID(c)
	todos, err := h.services.Todos.ListCompleted(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, "todo_list_completed_failed", err, "userId", userID)
		return
	}
	c.HTML(http.StatusOK, "todos_completed.html", gin.H{"Todos": todos})
}

func (h *Handler) viewTodo(c *gin.Context) {
	todoID, ok := h.parseTodoID(c)
	if !ok {
		return
	}
	userID := currentUserID(c)

	todo, err := h.services.Todos.GetByID(c.Request.Context(), userID, todoID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.fail(c, "todo_view_failed", err, "userId", userID, "todoId", todoID)
		return
	}
	c.HTML(http.StatusOK, "todo_edit.html", gin.H{"Todo": todo})
}

func (h *Handler) editTodo(c *gin.Context) {
	todoID, ok := h.parseTodoID(c)
	if !ok {
		return
	}
	userID := currentUserID(c)

	var form todoForm
	if err := c.ShouldBind(&form); err != nil {
		h.rerenderEdit(c, userID, todoID)
		return
	}

	err := h.services.Todos.Update(c.Request.Context(), userID, todoID, form.input())
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, activeListPath)
	case service.IsInvalidInput(err):
		h.rerenderEdit(c, userID, todoID)
	case errors.Is(err, service.ErrNotFound):
		h.notFound(c)
	default:
		h.fail(c, "todo_edit_failed", err, "userId", userID, "todoId", todoID)
	}
}

// rerenderEdit re-fetches the record and shows the edit form again with the
// input error inline.
func (h *Handler) rerenderEdit(c *gin.Context, userID, todoID int) {
	todo, err := h.services.Todos.GetByID(c.Request.Context(), userID, todoID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.fail(c, "todo_edit_failed", err, "userId", userID, "todoId", todoID)
		return
	}
	c.HTML(http.StatusBadRequest, "todo_edit.html", gin.H{
		"Error": errBadTodoInput,
		"Todo":  todo,
	})
}

func (h *Handler) completeTodo(c *gin.Context) {
	todoID, ok := h.parseTodoID(c)
	if !ok {
		return
	}
	userID := currentUserID(c)

	if err := h.services.Todos.Complete(c.Request.Context(), userID, todoID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.fail(c, "todo_complete_failed", err, "userId", userID, "todoId", todoID)
		return
	}
	c.Redirect(http.StatusSeeOther, activeListPath)
}

func (h *Handler) deleteTodo(c *gin.Context) {
	todoID, ok := h.parseTodoID(c)
	if !ok {
		return
	}
	userID := currentUserID(c)

	if err := h.services.Todos.Delete(c.Request.Context(), userID, todoID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.fail(c, "todo_delete_failed", err, "userId", userID, "todoId", todoID)
		return
	}
	c.Redirect(http.StatusSeeOther, activeListPath)
}
