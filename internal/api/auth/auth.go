package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"portfolio/internal/api/models"
	"portfolio/internal/storage"
)

// Session keys for the signed-in identity. The session cookie is the only
// credential: the guard trusts a well-formed session without re-reading the
// user from storage.
const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "user_username"
)

// Handler serves the login, logout and identity endpoints.
type Handler struct {
	store storage.Storage
}

func New(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// RequireAuth rejects requests whose session is missing or lacks the identity
// fields. A tampered cookie fails signature verification in the session store
// and comes through here as an empty session, so it falls into the same 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(sessionKeyUserID).(string)
		username, _ := session.Get(sessionKeyUsername).(string)
		if userID == "" || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set("userID", userID)
		c.Set("username", username)
		c.Next()
	}
}

// Identity returns the authenticated user from the request context. Only valid
// downstream of RequireAuth.
func Identity(c *gin.Context) models.SessionUser {
	return models.SessionUser{
		ID:       c.GetString("userID"),
		Username: c.GetString("username"),
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	user, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		log.Error("failed to look up user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	// Same response for unknown user and wrong password so the endpoint
	// doesn't leak which usernames exist.
	if user == nil || !CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	log.Info("user logged in", "username", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    models.SessionUser{ID: user.ID, Username: user.Username},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": Identity(c)})
}
