package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/services"
	"github.com/appfrabric/roilux/services/container"
)

// InterfaceTourController defines the virtual tour controller
type InterfaceTourController interface {
	SubmitTour()
	GetTours()
	ArchiveTour()
	UpdateTourStatus()
	DeleteTour()
}

// TourController handles virtual tour requests
type TourController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTourController creates a new tour controller
func NewTourController(ctx *gin.Context, container *container.ServiceContainer) *TourController {
	return &TourController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitTourRequest is the virtual tour booking payload
type SubmitTourRequest struct {
	Name          string `json:"name" binding:"required" example:"Jane Smith"`
	Email         string `json:"email" binding:"required,email" example:"jane@example.com"`
	Company       string `json:"company" example:"Smith Furniture"`
	Phone         string `json:"phone" example:"+1 555 010 0000"`
	PreferredDate string `json:"preferredDate" binding:"required" example:"2024-01-01"`
	PreferredTime string `json:"preferredTime" binding:"required" example:"10:00"`
	Message       string `json:"message" example:"Interested in the veneer line."`
	Language      string `json:"language" example:"en"`
	Country       string `json:"country" example:"US"`
}

// HandleTourFunc returns a Gin handler dispatching to the tour controller
func HandleTourFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTourController(ctx, container)

		switch method {
		case "submitTour":
			controller.SubmitTour()
		case "getTours":
			controller.GetTours()
		case "archiveTour":
			controller.ArchiveTour()
		case "updateTourStatus":
			controller.UpdateTourStatus()
		case "deleteTour":
			controller.DeleteTour()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// SubmitTour stores a virtual tour booking
// @Summary      Book a virtual tour
// @Description  Store a virtual tour request with status pending
// @Tags         VirtualTour
// @Accept       json
// @Produce      json
// @Param        request body SubmitTourRequest true "Tour booking payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /virtual-tour [post]
func (c *TourController) SubmitTour() {
	var req SubmitTourRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tour, confirmation, err := tourService.SubmitTour(services.TourSubmission{
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Language:      req.Language,
		Country:       req.Country,
	})
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": confirmation,
		"tour_id": tour.ID,
	})
}

// GetTours lists virtual tour bookings
// @Summary      List virtual tours
// @Description  Paginated tour bookings, archived last then newest first
// @Tags         VirtualTour
// @Produce      json
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Page size, default 20"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.Response
// @Router       /virtual-tours [get]
func (c *TourController) GetTours() {
	var query models.PaginationQuery
	_ = c.Ctx.ShouldBindQuery(&query)
	query.Normalize()

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	tours, total, err := tourService.ListTours(query.Page, query.Limit)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	result := models.NewPaginationResult(total, query.Page, query.Limit)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"tours": tours,
		"total": result.Total,
		"page":  result.Page,
		"limit": result.Limit,
		"pages": result.Pages,
	})
}

// ArchiveTour archives a tour booking
// @Summary      Archive a virtual tour
// @Description  Set status to archived; archiving twice is a no-op success
// @Tags         VirtualTour
// @Produce      json
// @Param        id path int true "Tour ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /virtual-tours/{id}/archive [put]
func (c *TourController) ArchiveTour() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	if err := tourService.ArchiveTour(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tour archived successfully",
	})
}

// UpdateTourStatus transitions a tour status
// @Summary      Update virtual tour status
// @Tags         VirtualTour
// @Accept       json
// @Produce      json
// @Param        id path int true "Tour ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /virtual-tours/{id}/status [put]
func (c *TourController) UpdateTourStatus() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	if err := tourService.UpdateTourStatus(id, models.TourStatus(req.Status)); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated successfully",
	})
}

// DeleteTour deletes a tour booking
// @Summary      Delete a virtual tour
// @Description  Remove a tour booking permanently
// @Tags         VirtualTour
// @Produce      json
// @Param        id path int true "Tour ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /virtual-tours/{id} [delete]
func (c *TourController) DeleteTour() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	tourService := c.Container.GetService("tour").(services.InterfaceTourService)
	if err := tourService.DeleteTour(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tour deleted successfully",
	})
}
