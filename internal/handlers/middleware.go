package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "todo_session"
	userIDKey         = "userId"

	homePath       = "/"
	loginEntryPath = "/login"
	activeListPath = "/todos/current"
)

// sessionUserID resolves the current session to a user id. Returns false when
// there is no cookie or the token does not parse.
func (h *Handler) sessionUserID(c *gin.Context) (int, bool) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		return 0, false
	}
	userID, err := h.services.ParseToken(token)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// requireUser guards handlers that need an authenticated session: without one
// the caller is redirected to the login page, otherwise the user id is stored
// in the request context and the chain continues.
func (h *Handler) requireUser(c *gin.Context) {
	userID, ok := h.sessionUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, loginEntryPath)
		c.Abort()
		return
	}
	c.Set(userIDKey, userID)
	c.Next()
}

// requireGuest short-circuits to the active list when the caller already has
// a session; landing, signup and login make no sense while logged in.
func (h *Handler) requireGuest(c *gin.Context) {
	if _, ok := h.sessionUserID(c); ok {
		c.Redirect(http.StatusFound, activeListPath)
		c.Abort()
		return
	}
	c.Next()
}

// currentUserID reads the user id placed in the context by requireUser.
func currentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}

// setSessionCookie attaches the session token to the response. Expiry is
// enforced by the token itself, so the cookie lives for the browser session.
func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
