package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "house-rental-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "house-rental-backend"

// SessionConfig configures the session cookie
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// SessionClaims is the signed content of the session cookie. Only the session id is
// carried; the owner is always resolved through the store.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionManager issues, resolves and destroys cookie-backed sessions
type SessionManager struct {
	store  SessionStore
	config SessionConfig
}

// NewSessionManager creates a session manager on top of store
func NewSessionManager(store SessionStore, config SessionConfig) (*SessionManager, error) {
	if config.Secret == "" {
		return nil, apperrors.ErrSessionSecretMissing
	}
	if config.TTL <= 0 {
		config.TTL = 24 * time.Hour
	}
	if config.CookieName == "" {
		config.CookieName = "connect.sid"
	}
	return &SessionManager{store: store, config: config}, nil
}

// CookieName returns the name of the session cookie
func (m *SessionManager) CookieName() string {
	return m.config.CookieName
}

// Issue starts a session for ownerID and sets the signed session cookie on the response
func (m *SessionManager) Issue(c *gin.Context, ownerID uuid.UUID) (*Session, error) {
	session, err := m.store.Create(ownerID, m.config.TTL)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := m.sign(session)
	if err != nil {
		_ = m.store.Delete(session.ID)
		return nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.config.CookieName, token, int(m.config.TTL.Seconds()), "/", "", m.config.Secure, true)
	return session, nil
}

// Resolve returns the live session referenced by the request cookie
func (m *SessionManager) Resolve(c *gin.Context) (*Session, error) {
	token, err := c.Cookie(m.config.CookieName)
	if err != nil || token == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	sessionID, err := m.parse(token)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	session, err := m.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, err
	}
	return session, nil
}

// Destroy deletes the request's session, if any, and clears the cookie
func (m *SessionManager) Destroy(c *gin.Context) error {
	if token, err := c.Cookie(m.config.CookieName); err == nil && token != "" {
		if sessionID, err := m.parse(token); err == nil {
			if err := m.store.Delete(sessionID); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.config.CookieName, "", -1, "/", "", m.config.Secure, true)
	return nil
}

func (m *SessionManager) sign(session *Session) (string, error) {
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.Secret))
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

func (m *SessionManager) parse(tokenString string) (string, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
	)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", fmt.Errorf("session cookie has no id")
	}
	return claims.ID, nil
}
