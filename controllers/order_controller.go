package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/services"
	"github.com/appfrabric/roilux/services/container"
)

// InterfaceOrderController defines the order inquiry controller
type InterfaceOrderController interface {
	SubmitOrder()
	GetOrders()
	ArchiveOrder()
	UpdateOrderStatus()
	DeleteOrder()
}

// OrderController handles order inquiry requests
type OrderController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewOrderController creates a new order controller
func NewOrderController(ctx *gin.Context, container *container.ServiceContainer) *OrderController {
	return &OrderController{
		Ctx:       ctx,
		Container: container,
	}
}

// OrderProductRequest is one product line of an order inquiry
type OrderProductRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"premium-plywood"`
	Title     string `json:"title" example:"Premium Plywood"`
	Quantity  int    `json:"quantity" binding:"required,min=1" example:"100"`
	Notes     string `json:"notes" example:"18mm, okoume faces"`
}

// SubmitOrderRequest is the order inquiry payload
type SubmitOrderRequest struct {
	Name        string                `json:"name" binding:"required" example:"Jane Smith"`
	Email       string                `json:"email" binding:"required,email" example:"jane@example.com"`
	Company     string                `json:"company" example:"Smith Furniture"`
	Phone       string                `json:"phone" example:"+1 555 010 0000"`
	Products    []OrderProductRequest `json:"products" binding:"required,min=1,dive"`
	TotalAmount string                `json:"total_amount" example:"12500.00"`
	Currency    string                `json:"currency" example:"USD"`
	Notes       string                `json:"notes" example:"Quote including shipping to Rotterdam"`
	Language    string                `json:"language" example:"en"`
	Country     string                `json:"country" example:"US"`
}

// HandleOrderFunc returns a Gin handler dispatching to the order controller
func HandleOrderFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewOrderController(ctx, container)

		switch method {
		case "submitOrder":
			controller.SubmitOrder()
		case "getOrders":
			controller.GetOrders()
		case "archiveOrder":
			controller.ArchiveOrder()
		case "updateOrderStatus":
			controller.UpdateOrderStatus()
		case "deleteOrder":
			controller.DeleteOrder()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// SubmitOrder stores an order inquiry
// @Summary      Submit an order inquiry
// @Description  Store an order inquiry and mint its order number
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        request body SubmitOrderRequest true "Order inquiry payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /orders [post]
func (c *OrderController) SubmitOrder() {
	var req SubmitOrderRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	products := make([]services.OrderProduct, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, services.OrderProduct{
			ProductID: p.ProductID,
			Title:     p.Title,
			Quantity:  p.Quantity,
			Notes:     p.Notes,
		})
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	order, confirmation, err := orderService.SubmitOrder(services.OrderSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Phone:       req.Phone,
		Products:    products,
		TotalAmount: req.TotalAmount,
		Currency:    req.Currency,
		Notes:       req.Notes,
		Language:    req.Language,
		Country:     req.Country,
	})
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      confirmation,
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
}

// GetOrders lists order inquiries
// @Summary      List orders
// @Description  Paginated order inquiries, archived last then newest first
// @Tags         Order
// @Produce      json
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Page size, default 20"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.Response
// @Router       /orders [get]
func (c *OrderController) GetOrders() {
	var query models.PaginationQuery
	_ = c.Ctx.ShouldBindQuery(&query)
	query.Normalize()

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	orders, total, err := orderService.ListOrders(query.Page, query.Limit)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	result := models.NewPaginationResult(total, query.Page, query.Limit)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  result.Total,
		"page":   result.Page,
		"limit":  result.Limit,
		"pages":  result.Pages,
	})
}

// ArchiveOrder archives an order inquiry
// @Summary      Archive an order
// @Description  Set status to archived; archiving twice is a no-op success
// @Tags         Order
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /orders/{id}/archive [put]
func (c *OrderController) ArchiveOrder() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.ArchiveOrder(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order archived successfully",
	})
}

// UpdateOrderStatus transitions an order status
// @Summary      Update order status
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        id path int true "Order ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /orders/{id}/status [put]
func (c *OrderController) UpdateOrderStatus() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.UpdateOrderStatus(id, models.OrderStatus(req.Status)); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated successfully",
	})
}

// DeleteOrder deletes an order inquiry
// @Summary      Delete an order
// @Description  Remove an order inquiry permanently
// @Tags         Order
// @Produce      json
// @Param        id path int true "Order ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /orders/{id} [delete]
func (c *OrderController) DeleteOrder() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	orderService := c.Container.GetService("order").(services.InterfaceOrderService)
	if err := orderService.DeleteOrder(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully",
	})
}
