package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"web-store/models"
	"web-store/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	itemService *services.ItemService
}

func NewItemController(itemService *services.ItemService) *ItemController {
	return &ItemController{itemService: itemService}
}

// List godoc
// @Summary List items
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/item [get]
func (ctrl *ItemController) List(c *gin.Context) {
	items, err := ctrl.itemService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve items",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Items retrieved successfully",
		Data:    items,
	})
}

// GetByID godoc
// @Summary Get item by ID
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item/{id} [get]
func (ctrl *ItemController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid item ID",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondItemLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item retrieved successfully",
		Data:    item,
	})
}

// GetByName godoc
// @Summary Get items by name
// @Tags Items
// @Security BearerAuth
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/item/name/{name} [get]
func (ctrl *ItemController) GetByName(c *gin.Context) {
	items, err := ctrl.itemService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondItemLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Items retrieved successfully",
		Data:    items,
	})
}

func respondItemLookupError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Item not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Failed to retrieve item",
		Error:   err.Error(),
	})
}
