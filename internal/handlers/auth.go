package handlers

import (
	"errors"
	"net/http"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// Inline form error messages.
const (
	errPasswordMismatch = "passwords did not match"
	errFieldsRequired   = "all fields are required"
	errUsernameTaken    = "that username is already registered"
	errWrongCredentials = "username and password did not match"
)

type signupForm struct {
	Username  string `form:"username" binding:"required"`
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required"`
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) landing(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (h *Handler) signupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *Handler) signUp(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error":    errFieldsRequired,
			"Username": form.Username,
		})
		return
	}

	if form.Password1 != form.Password2 {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error":    errPasswordMismatch,
			"Username": form.Username,
		})
		return
	}

	if _, err := h.services.SignUp(form.Username, form.Password1); err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			if h.log != nil {
				h.log.Infow("signup_duplicate_username", "username", form.Username)
			}
			c.HTML(http.StatusBadRequest, "signup.html", gin.H{
				"Error":    errUsernameTaken,
				"Username": form.Username,
			})
			return
		}
		h.fail(c, "signup_failed", err, "username", form.Username)
		return
	}

	// Establish the session for the freshly created user.
	token, err := h.services.GenerateToken(form.Username, form.Password1)
	if err != nil {
		h.fail(c, "signup_session_failed", err, "username", form.Username)
		return
	}
	setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, activeListPath)
}

func (h *Handler) logIn(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error":    errFieldsRequired,
			"Username": form.Username,
		})
		return
	}

	token, err := h.services.GenerateToken(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_invalid_credentials", "username", form.Username)
			}
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Error":    errWrongCredentials,
				"Username": form.Username,
			})
			return
		}
		h.fail(c, "login_failed", err, "username", form.Username)
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, activeListPath)
}

func (h *Handler) logOut(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, homePath)
}
