package motivation

import (
	"net/http"
	"time"

	authdomain "ankiplan-backend/internal/auth/domain"

	"github.com/gin-gonic/gin"
)

// Handler serves motivational messages and task suggestions for the
// authenticated user.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Motivate returns a context-aware motivational message
// GET /api/ai/motivate
func (h *Handler) Motivate(c *gin.Context) {
	value, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user := value.(*authdomain.User)
	c.JSON(http.StatusOK, gin.H{"message": Message(user)})
}

// Suggest returns a task proposal based on the user's performance
// GET /api/ai/suggest
func (h *Handler) Suggest(c *gin.Context) {
	value, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	user := value.(*authdomain.User)
	c.JSON(http.StatusOK, Suggest(user, time.Now().UTC()))
}
