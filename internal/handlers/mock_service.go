package handlers

import (
	"context"
	"html/template"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTodos struct {
	createID     int
	createErr    error
	active       []models.Todo
	activeErr    error
	completed    []models.Todo
	completedErr error
	getTodo      models.Todo
	getErr       error
	updateErr    error
	completeErr  error
	deleteErr    error

	lastUserID     int
	lastTodoID     int
	lastInput      service.TodoInput
	createCalls    int
	updateCalls    int
	completeCalls  int
	deleteCalls    int
	listActiveCall int
}

func (m *mockTodos) Create(ctx context.Context, userID int, in service.TodoInput) (int, error) {
	m.createCalls++
	m.lastUserID = userID
	m.lastInput = in
	return m.createID, m.createErr
}
func (m *mockTodos) ListActive(ctx context.Context, userID int) ([]models.Todo, error) {
	m.listActiveCall++
	m.lastUserID = userID
	return m.active, m.activeErr
}
func (m *mockTodos) ListCompleted(ctx context.Context, userID int) ([]models.Todo, error) {
	m.lastUserID = userID
	return m.completed, m.completedErr
}
func (m *mockTodos) GetByID(ctx context.Context, userID, todoID int) (models.Todo, error) {
	m.lastUserID = userID
	m.lastTodoID = todoID
	return m.getTodo, m.getErr
}
func (m *mockTodos) Update(ctx context.Context, userID, todoID int, in service.TodoInput) error {
	m.updateCalls++
	m.lastUserID = userID
	m.lastTodoID = todoID
	m.lastInput = in
	return m.updateErr
}
func (m *mockTodos) Complete(ctx context.Context, userID, todoID int) error {
	m.completeCalls++
	m.lastUserID = userID
	m.lastTodoID = todoID
	return m.completeErr
}
func (m *mockTodos) Delete(ctx context.Context, userID, todoID int) error {
	m.deleteCalls++
	m.lastUserID = userID
	m.lastTodoID = todoID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

// Trimmed-down stand-ins for the real templates; handlers only care that the
// named views exist and that key data lands in the body.
const testTemplates = `
{{define "home.html"}}home{{end}}
{{define "signup.html"}}signup:{{.Error}}{{end}}
{{define "login.html"}}login:{{.Error}}{{end}}
{{define "todo_form.html"}}form:{{.Error}}{{end}}
{{define "todo_edit.html"}}edit:{{.Todo.Title}}:{{.Error}}{{end}}
{{define "todos_active.html"}}active:{{range .Todos}}{{.Title}};{{end}}{{end}}
{{define "todos_completed.html"}}completed:{{range .Todos}}{{.Title}};{{end}}{{end}}
{{define "404.html"}}not found{{end}}
`

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	r := h.InitRoutes()
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))
	return r
}
