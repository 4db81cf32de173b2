package auth

import (
	"net/http"

	"house-rental-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the session middleware
const (
	ContextOwnerID   = logger.OwnerIDKey
	ContextSessionID = "session_id"
)

// SessionMiddleware exposes the session owner to handlers
type SessionMiddleware struct {
	manager *SessionManager
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(manager *SessionManager) *SessionMiddleware {
	return &SessionMiddleware{manager: manager}
}

// LoadSession resolves the session cookie if present and sets the owner context.
// Requests without a valid session pass through anonymously.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := m.manager.Resolve(c)
		if err == nil {
			c.Set(ContextOwnerID, session.OwnerID)
			c.Set(ContextSessionID, session.ID)
		}
		c.Next()
	}
}

// RequireSession rejects requests that carry no valid session
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetOwnerID(c); !ok {
			session, err := m.manager.Resolve(c)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				c.Abort()
				return
			}
			c.Set(ContextOwnerID, session.OwnerID)
			c.Set(ContextSessionID, session.ID)
		}
		c.Next()
	}
}

// GetOwnerID is a helper function to extract the session owner from context
func GetOwnerID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextOwnerID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
