package handlers

import (
	"errors"
	"net/http"

	"house-rental-backend/internal/auth"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnerHandlerConfig holds the owner handler settings taken from the application config
type OwnerHandlerConfig struct {
	LoginRedirectURL     string
	ResetTokenInResponse bool
}

// OwnerHandler handles owner account and session endpoints
type OwnerHandler struct {
	ownerService service.OwnerServiceInterface
	sessions     *auth.SessionManager
	config       OwnerHandlerConfig
}

// NewOwnerHandler creates a new owner handler
func NewOwnerHandler(ownerService service.OwnerServiceInterface, sessions *auth.SessionManager, config OwnerHandlerConfig) *OwnerHandler {
	if config.LoginRedirectURL == "" {
		config.LoginRedirectURL = "/display.html"
	}
	return &OwnerHandler{
		ownerService: ownerService,
		sessions:     sessions,
		config:       config,
	}
}

// Signup handles POST /signup-owner
// @Summary Register an owner
// @Description Create an owner account. Accepts a form post or JSON.
// @Tags owners
// @Accept json,x-www-form-urlencoded
// @Produce plain
// @Param owner body service.SignupRequest true "Owner data"
// @Success 200 {string} string "Owner registered successfully"
// @Failure 400 {string} string "Username or email already exists"
// @Failure 500 {string} string "Error registering owner"
// @Router /signup-owner [post]
func (h *OwnerHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid signup details")
		return
	}

	owner, err := h.ownerService.Signup(&req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.String(http.StatusBadRequest, "Username or email already exists")
		case apperrors.IsValidation(err):
			c.String(http.StatusBadRequest, "Invalid signup details: "+err.Error())
		default:
			logger.WithContext(c).WithError(err).Error("failed to register owner")
			c.String(http.StatusInternalServerError, "Error registering owner")
		}
		return
	}

	logger.WithContext(c).WithField("owner", owner.ID).Info("owner registered")
	c.String(http.StatusOK, "Owner registered successfully")
}

// Login handles POST /login-owner
// @Summary Log in an owner
// @Description Verify the credentials and start a cookie session
// @Tags owners
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {string} string "Invalid username or password"
// @Failure 500 {string} string "Error logging in"
// @Router /login-owner [post]
func (h *OwnerHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusUnauthorized, "Invalid username or password")
		return
	}

	owner, err := h.ownerService.Login(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.String(http.StatusUnauthorized, "Invalid username or password")
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to log in owner")
		c.String(http.StatusInternalServerError, "Error logging in")
		return
	}

	if _, err := h.sessions.Issue(c, owner.ID); err != nil {
		logger.WithContext(c).WithError(err).Error("failed to start session")
		c.String(http.StatusInternalServerError, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"redirectUrl": h.config.LoginRedirectURL,
	})
}

// Logout handles POST /logout-owner
// @Summary Log out
// @Tags owners
// @Produce json
// @Success 200 {object} map[string]interface{} "Logout successful"
// @Router /logout-owner [post]
func (h *OwnerHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		logger.WithContext(c).WithError(err).Warn("failed to destroy session")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// ForgotPassword handles POST /forgot-password
// @Summary Request a password reset token
// @Tags owners
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body service.ForgotPasswordRequest true "Owner email"
// @Success 200 {object} map[string]interface{} "Token issued"
// @Failure 404 {object} map[string]interface{} "Email not found"
// @Failure 500 {object} map[string]interface{} "Error generating reset token"
// @Router /forgot-password [post]
func (h *OwnerHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Email not found"})
		return
	}

	token, err := h.ownerService.RequestPasswordReset(c, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Email not found"})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to generate reset token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating reset token"})
		return
	}

	response := gin.H{"success": true}
	if h.config.ResetTokenInResponse {
		response["token"] = token.Token
	}
	c.JSON(http.StatusOK, response)
}

// ResetPassword handles POST /reset-password
// @Summary Reset a password with a reset token
// @Tags owners
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body service.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} map[string]interface{} "Password reset successful"
// @Failure 400 {object} map[string]interface{} "Invalid or expired token"
// @Failure 500 {object} map[string]interface{} "Error resetting password"
// @Router /reset-password [post]
func (h *OwnerHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		return
	}

	if err := h.ownerService.ResetPassword(c, &req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidResetToken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			logger.WithContext(c).WithError(err).Error("failed to reset password")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error resetting password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful", "success": true})
}
