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

// FavoriteHandler manages the caller's bookmarks. The viewer is always
// the authenticated email; it never comes from request input.
type FavoriteHandler struct {
	favorites service.IFavoriteService
}

func NewFavoriteHandler(favorites service.IFavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) RegisterRoutes(protected *gin.RouterGroup) {
	favorites := protected.Group("/favorites")
	{
		favorites.POST("", h.Add)
		favorites.GET("", h.List)
		favorites.DELETE("", h.Remove)
	}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	viewer := c.GetString(middleware.ContextEmailKey)

	var req types.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := h.favorites.Add(c.Request.Context(), viewer, req.BiodataID)
	if err != nil {
		if errors.Is(err, service.ErrBiodataNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	viewer := c.GetString(middleware.ContextEmailKey)

	links, err := h.favorites.List(c.Request.Context(), viewer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, links)
}

// Remove deletes the caller's bookmark. Removing a bookmark that does
// not exist succeeds with deleted=0.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	viewer := c.GetString(middleware.ContextEmailKey)

	biodataID, err := strconv.Atoi(c.Query("biodata_id"))
	if err != nil || biodataID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "biodata_id must be a positive integer"})
		return
	}

	deleted, err := h.favorites.Remove(c.Request.Context(), viewer, biodataID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
