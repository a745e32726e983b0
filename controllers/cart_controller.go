package controllers

import (
	"errors"
	"net/http"

	"web-store/logging"
	"web-store/models"
	"web-store/services"
	"web-store/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add quantity of an item to the caller's own cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ModifyCartRequest true "Cart Request"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/addToCart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	req, ok := ctrl.bindOwnedCartRequest(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.AddToCart(c.Request.Context(), req.Username, req.ItemID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	logging.From(c).Info("cart updated", "username", req.Username, "item_id", req.ItemID)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// RemoveFromCart godoc
// @Summary Remove item from cart
// @Description Remove quantity of an item from the caller's own cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ModifyCartRequest true "Cart Request"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/removeFromCart [post]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	req, ok := ctrl.bindOwnedCartRequest(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.RemoveFromCart(c.Request.Context(), req.Username, req.ItemID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    cart,
	})
}

// bindOwnedCartRequest binds the body and enforces that the cart
// being mutated belongs to the authenticated principal.
func (ctrl *CartController) bindOwnedCartRequest(c *gin.Context) (models.ModifyCartRequest, bool) {
	var req models.ModifyCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return req, false
	}

	if !utils.IsOwner(c.GetString("principal"), req.Username) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
		return req, false
	}
	return req, true
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Item not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update cart",
			Error:   err.Error(),
		})
	}
}
