package handlers

import (
	"net/http"

	"house-rental-backend/internal/auth"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles tenant request endpoints
type RequestHandler struct {
	requestService service.RequestServiceInterface
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService service.RequestServiceInterface) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// CreateRequest handles POST /request-house
// @Summary Request a listing
// @Description Record a tenant's interest in a listing for its owner
// @Tags requests
// @Accept json,x-www-form-urlencoded
// @Produce plain
// @Param request body service.CreateTenantRequest true "Tenant details"
// @Success 200 {string} string "Request submitted successfully"
// @Failure 404 {string} string "House not found"
// @Failure 500 {string} string "Error submitting request"
// @Router /request-house [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.WithContext(c).WithError(err).Warn("invalid request form")
		c.String(http.StatusInternalServerError, "Error submitting request")
		return
	}

	request, err := h.requestService.CreateRequest(c, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.String(http.StatusNotFound, "House not found")
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to submit request")
		c.String(http.StatusInternalServerError, "Error submitting request")
		return
	}

	logger.WithContext(c).WithField("request", request.ID).Info("request submitted")
	c.String(http.StatusOK, "Request submitted successfully")
}

// ListOwnerRequests handles GET /api/owner-requests
// @Summary List requests for the owner's listings
// @Tags requests
// @Produce json
// @Success 200 {array} service.TenantRequestResponse "Requests, newest first"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error fetching requests"
// @Router /api/owner-requests [get]
func (h *RequestHandler) ListOwnerRequests(c *gin.Context) {
	ownerID, ok := auth.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requests, err := h.requestService.ListOwnerRequests(ownerID)
	if err != nil {
		logger.WithContext(c).WithError(err).Error("failed to list owner requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}
