package handlers

import (
	"errors"
	"math"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"house-rental-backend/internal/auth"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/logger"
	"house-rental-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	imageFormField = "image"
	// room for the text fields and part headers next to the image
	multipartFormOverhead = 64 << 10
)

// HouseHandler handles listing endpoints
type HouseHandler struct {
	houseService   service.HouseServiceInterface
	uploadMaxBytes int64
}

// NewHouseHandler creates a new house handler. uploadMaxBytes <= 0 disables the image and request body size limits.
func NewHouseHandler(houseService service.HouseServiceInterface, uploadMaxBytes int64) *HouseHandler {
	return &HouseHandler{
		houseService:   houseService,
		uploadMaxBytes: uploadMaxBytes,
	}
}

// PostHouse handles POST /post-house
// @Summary Post a listing
// @Description Create a listing for the logged-in owner from a multipart form with an image
// @Tags houses
// @Accept multipart/form-data
// @Produce plain
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param location formData string true "Location"
// @Param locationLink formData string false "Map link"
// @Param price formData number true "Monthly price"
// @Param houseType formData string true "House type"
// @Param phone formData string true "Ten digit phone number"
// @Param email formData string true "Contact email"
// @Param image formData file true "Listing image"
// @Success 200 {string} string "House posted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {string} string "Error posting house"
// @Router /post-house [post]
func (h *HouseHandler) PostHouse(c *gin.Context) {
	ownerID, ok := auth.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if h.uploadMaxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMaxBytes+multipartFormOverhead)
	}

	var req service.CreateHouseRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.WithContext(c).WithError(err).Warn("invalid listing form")
		c.String(http.StatusInternalServerError, "Error posting house")
		return
	}

	var image *service.ImageUpload
	header, err := c.FormFile(imageFormField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		logger.WithContext(c).WithError(err).Warn("failed to read listing image")
		c.String(http.StatusInternalServerError, "Error posting house")
		return
	default:
		if h.uploadMaxBytes > 0 && header.Size > h.uploadMaxBytes {
			logger.WithContext(c).WithError(apperrors.ErrImageTooLarge).Warnf("image of %d bytes rejected", header.Size)
			c.String(http.StatusInternalServerError, "Error posting house")
			return
		}
		file, err := header.Open()
		if err != nil {
			logger.WithContext(c).WithError(err).Error("failed to open listing image")
			c.String(http.StatusInternalServerError, "Error posting house")
			return
		}
		defer file.Close()
		image = &service.ImageUpload{Filename: header.Filename, Size: header.Size, Content: file}
	}

	house, err := h.houseService.CreateHouse(c, ownerID, &req, image)
	if err != nil {
		entry := logger.WithContext(c).WithError(err)
		if apperrors.IsValidation(err) {
			entry.Warn("listing rejected")
		} else {
			entry.Error("failed to post house")
		}
		c.String(http.StatusInternalServerError, "Error posting house")
		return
	}

	logger.WithContext(c).WithField("house", house.ID).Info("house posted")
	c.String(http.StatusOK, "House posted successfully")
}

// ListHouses handles GET /api/houses
// @Summary List listings
// @Description List all listings, optionally filtered. Filters combine with AND.
// @Tags houses
// @Produce json
// @Param location query string false "Case-insensitive substring of the location"
// @Param type query string false "Exact house type"
// @Param budget query number false "Maximum price"
// @Success 200 {array} service.HouseResponse "Listings"
// @Failure 500 {object} map[string]interface{} "Error fetching houses"
// @Router /api/houses [get]
func (h *HouseHandler) ListHouses(c *gin.Context) {
	filter := service.HouseListFilter{
		Location:  c.Query("location"),
		HouseType: c.Query("type"),
		Budget:    parseBudget(c.Query("budget")),
	}

	houses, err := h.houseService.ListHouses(filter)
	if err != nil {
		logger.WithContext(c).WithError(err).Error("failed to list houses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching houses"})
		return
	}

	c.JSON(http.StatusOK, houses)
}

// ListOwnerHouses handles GET /api/owner-houses
// @Summary List the owner's listings
// @Tags houses
// @Produce json
// @Success 200 {array} service.HouseResponse "Listings"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error fetching houses"
// @Router /api/owner-houses [get]
func (h *HouseHandler) ListOwnerHouses(c *gin.Context) {
	ownerID, ok := auth.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	houses, err := h.houseService.ListOwnerHouses(ownerID)
	if err != nil {
		logger.WithContext(c).WithError(err).Error("failed to list owner houses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching houses"})
		return
	}

	c.JSON(http.StatusOK, houses)
}

// DeleteHouse handles DELETE /api/owner-houses/:id
// @Summary Delete one of the owner's listings
// @Description Deleting a listing that does not exist still succeeds
// @Tags houses
// @Produce json
// @Param id path string true "House ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]interface{} "Invalid house ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Error deleting house"
// @Router /api/owner-houses/{id} [delete]
func (h *HouseHandler) DeleteHouse(c *gin.Context) {
	ownerID, ok := auth.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid house ID"})
		return
	}

	if err := h.houseService.DeleteHouse(c, ownerID, id); err != nil {
		logger.WithContext(c).WithError(err).Error("failed to delete house")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting house"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ServeImage handles GET /uploads/:name
// @Summary Get a listing image
// @Tags houses
// @Produce octet-stream
// @Param name path string true "Image name as found in imagePath"
// @Success 200 {file} file "Image bytes"
// @Failure 404 {object} map[string]interface{} "Image not found"
// @Router /uploads/{name} [get]
func (h *HouseHandler) ServeImage(c *gin.Context) {
	name := c.Param("name")

	rc, err := h.houseService.OpenImage(c, name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to open image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching image"})
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

// parseBudget returns nil for an empty or non-numeric budget so that it is ignored
func parseBudget(raw string) *float64 {
	if raw == "" {
		return nil
	}
	budget, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return nil
	}
	return &budget
}
