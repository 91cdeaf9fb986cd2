package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// GET /menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// PUT /admin/menu/:name
// --------------------------------------------------
func (h *AdminHandler) Upsert(c *gin.Context) {
	var req struct {
		UnitPrice *float64 `json:"unitPrice"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.UnitPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unitPrice is required"})
		return
	}

	item := Item{Name: c.Param("name"), UnitPrice: *req.UnitPrice}

	if err := h.service.UpsertItem(c.Request.Context(), item); err != nil {
		if errors.Is(err, ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save menu item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// DELETE /admin/menu/:name
// --------------------------------------------------
func (h *AdminHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	if err := h.service.DeleteItem(c.Request.Context(), name); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "menu item deleted",
		"name":    name,
	})
}

// --------------------------------------------------
// POST /admin/menu/reload
// --------------------------------------------------
func (h *AdminHandler) Reload(c *gin.Context) {
	n, err := h.service.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": n})
}

// --------------------------------------------------
// POST /admin/menu/import
// --------------------------------------------------
func (h *AdminHandler) Import(c *gin.Context) {
	n, err := h.service.ImportSeed(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": n})
}

// --------------------------------------------------
// POST /admin/menu/export
// --------------------------------------------------
func (h *AdminHandler) Export(c *gin.Context) {
	url, err := h.service.ExportSnapshot(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func writeStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidSeed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu storage request failed"})
	}
}
