package handlers

import (
	"net/http"
	"strconv"

	"smart_canteen/internal/models"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

type createMenuItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Available       *bool   `json:"available"`
	PrepTimeMinutes int     `json:"prep_time_minutes"`
}

// ListItems handles GET /menu?available_only=&category=.
func (h *MenuHandler) ListItems(c *gin.Context) {
	availableOnly := c.Query("available_only") == "true"
	items, err := h.menuService.ListItems(availableOnly, c.Query("category"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListCategories handles GET /menu/categories.
func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.menuService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetItem handles GET /menu/:id.
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	item, err := h.menuService.GetItem(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateItem handles POST /menu. Staff only.
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req createMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item := &models.MenuItem{
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		Price:           req.Price,
		Available:       true,
		PrepTimeMinutes: req.PrepTimeMinutes,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if item.PrepTimeMinutes == 0 {
		item.PrepTimeMinutes = 15
	}

	if err := h.menuService.CreateItem(item); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /menu/:id. Staff only; only availability, price,
// prep time and description are mutable.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var update services.MenuItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuService.UpdateItem(uint(id), update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /menu/:id. Staff only.
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := h.menuService.DeleteItem(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}
