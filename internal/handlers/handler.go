package handlers

import (
	"net/http"

	"todolist/internal/logger"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The caller is expected to load HTML templates onto the returned engine.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// POST-only routes (logout, complete, delete) answer GET with an explicit
	// 405 instead of silently falling through.
	router.HandleMethodNotAllowed = true

	// Health endpoint
	router.GET("/health", h.health)

	h.registerGuestRoutes(router)
	h.registerTodoRoutes(router)

	// Live active-list stream (HTTP upgrade), served on the same port
	router.GET("/ws", h.requireUser, h.wsConnect)

	return router
}

// registerGuestRoutes covers pages that only make sense without a session;
// an authenticated caller is bounced to the active list.
func (h *Handler) registerGuestRoutes(r *gin.Engine) {
	guest := r.Group("/", h.requireGuest)
	{
		guest.GET("/", h.landing)
		guest.GET("/signup", h.signupForm)
		guest.POST("/signup", h.signUp)
		guest.GET("/login", h.loginForm)
		guest.POST("/login", h.logIn)
	}

	// Logout needs no gate: clearing an absent session is harmless.
	r.POST("/logout", h.logOut)
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todos := r.Group("/todos", h.requireUser)
	{
		todos.GET("/create", h.createTodoForm)
		todos.POST("/create", h.createTodo)
		todos.GET("/current", h.listActive)
		todos.GET("/completed", h.listCompleted)
		todos.GET("/:id", h.viewTodo)
		todos.POST("/:id", h.editTodo)
		todos.POST("/:id/complete", h.completeTodo)
		todos.POST("/:id/delete", h.deleteTodo)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// notFound renders the generic 404 page. Used both for missing records and
// for records owned by another user, so the two are indistinguishable.
func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

// fail logs an unexpected fault and ends the request with a plain 500.
func (h *Handler) fail(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.String(http.StatusInternalServerError, "something went wrong")
}
