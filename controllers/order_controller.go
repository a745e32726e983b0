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

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Submit godoc
// @Summary Submit order
// @Description Turn the caller's cart into an order and clear the cart
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 201 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/order/submit/{username} [post]
func (ctrl *OrderController) Submit(c *gin.Context) {
	username := c.Param("username")
	if !utils.IsOwner(c.GetString("principal"), username) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
		return
	}

	order, err := ctrl.orderService.Submit(c.Request.Context(), username)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	logging.From(c).Info("order submitted", "username", username, "order_id", order.ID, "total", order.Total)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order submitted successfully",
		Data:    order,
	})
}

// History godoc
// @Summary Order history
// @Description List the caller's past orders, oldest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/order/history/{username} [get]
func (ctrl *OrderController) History(c *gin.Context) {
	username := c.Param("username")
	if !utils.IsOwner(c.GetString("principal"), username) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied",
		})
		return
	}

	orders, err := ctrl.orderService.History(c.Request.Context(), username)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order history retrieved successfully",
		Data:    orders,
	})
}

func respondOrderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Failed to process order",
		Error:   err.Error(),
	})
}
