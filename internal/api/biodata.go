package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikahlink/backend/internal/middleware"
	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/types"
)

// BiodataHandler serves the profile endpoints. Listing is public;
// anything returning a single profile's sensitive fields sits behind
// the access gate.
type BiodataHandler struct {
	biodatas service.IBiodataService
	premium  service.IPremiumService
	photos   *service.PhotoService
}

func NewBiodataHandler(biodatas service.IBiodataService, premium service.IPremiumService, photos *service.PhotoService) *BiodataHandler {
	return &BiodataHandler{biodatas: biodatas, premium: premium, photos: photos}
}

func (h *BiodataHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/profiles", h.List)
	public.GET("/profiles/related", h.ListRelated)
	protected.GET("/profiles/by-biodata-id", h.GetByBiodataID)
	protected.GET("/profiles/:id", h.GetByID)
	protected.PUT("/profiles", h.Upsert)
	protected.POST("/profiles/photo", h.UploadPhoto)
	protected.GET("/dashboard/profile", h.DashboardProfile)
}

func (h *BiodataHandler) List(c *gin.Context) {
	biodatas, err := h.biodatas.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, biodatas)
}

func (h *BiodataHandler) ListRelated(c *gin.Context) {
	biodataType := c.Query("biodata_type")
	if biodataType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "biodata_type is required"})
		return
	}

	biodatas, err := h.biodatas.ListByType(c.Request.Context(), biodataType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, biodatas)
}

func (h *BiodataHandler) GetByID(c *gin.Context) {
	biodata, err := h.biodatas.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBiodataNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}
	c.JSON(http.StatusOK, biodata)
}

func (h *BiodataHandler) GetByBiodataID(c *gin.Context) {
	biodataID, err := strconv.Atoi(c.Query("biodata_id"))
	if err != nil || biodataID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "biodata_id must be a positive integer"})
		return
	}

	biodata, err := h.biodatas.GetByBiodataID(c.Request.Context(), biodataID)
	if err != nil {
		if errors.Is(err, service.ErrBiodataNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}
	c.JSON(http.StatusOK, biodata)
}

// Upsert creates or updates the caller's own biodata. The owner email
// always comes from the session token.
func (h *BiodataHandler) Upsert(c *gin.Context) {
	email := c.GetString(middleware.ContextEmailKey)

	var req types.UpsertBiodataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	biodata, err := h.biodatas.Upsert(c.Request.Context(), email, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, biodata)
}

// DashboardProfile returns the caller's biodata together with the
// premium request status for the owner dashboard.
func (h *BiodataHandler) DashboardProfile(c *gin.Context) {
	email := c.GetString(middleware.ContextEmailKey)

	biodata, err := h.biodatas.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrBiodataNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	status, err := h.premium.StatusFor(c.Request.Context(), biodata.BiodataID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get premium status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"biodata": biodata, "premium_status": status})
}

// UploadPhoto stores a profile photo for the caller's biodata.
func (h *BiodataHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil || !h.photos.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage is not configured"})
		return
	}

	email := c.GetString(middleware.ContextEmailKey)

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.photos.Upload(c.Request.Context(), email, file, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrBiodataNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_image": url})
}
