package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/services"
	"github.com/appfrabric/roilux/services/container"
)

// InterfaceContactController defines the contact message controller
type InterfaceContactController interface {
	SubmitContact()
	GetContactMessages()
	ArchiveContactMessage()
	UpdateContactMessageStatus()
	DeleteContactMessage()
}

// ContactController handles contact form requests
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController creates a new contact controller
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitContactRequest is the contact form payload
type SubmitContactRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Smith"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Company  string `json:"company" example:"Smith Furniture"`
	Phone    string `json:"phone" example:"+1 555 010 0000"`
	Subject  string `json:"subject" binding:"required" example:"Plywood pricing"`
	Message  string `json:"message" binding:"required" example:"Please send your price list."`
	Language string `json:"language" example:"en"`
	Country  string `json:"country" example:"US"`
}

// UpdateStatusRequest carries a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"read"`
}

// HandleContactFunc returns a Gin handler dispatching to the contact controller
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "submitContact":
			controller.SubmitContact()
		case "getContactMessages":
			controller.GetContactMessages()
		case "archiveContactMessage":
			controller.ArchiveContactMessage()
		case "updateContactMessageStatus":
			controller.UpdateContactMessageStatus()
		case "deleteContactMessage":
			controller.DeleteContactMessage()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// SubmitContact stores a contact form submission
// @Summary      Submit a contact message
// @Description  Store a contact form submission and return a translated confirmation
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body SubmitContactRequest true "Contact form payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Router       /contact [post]
func (c *ContactController) SubmitContact() {
	var req SubmitContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	msg, confirmation, err := contactService.SubmitContact(services.ContactSubmission{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		Language: req.Language,
		Country:  req.Country,
	})
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    confirmation,
		"message_id": msg.ID,
	})
}

// GetContactMessages lists contact messages
// @Summary      List contact messages
// @Description  Paginated contact messages, archived last then newest first
// @Tags         Contact
// @Produce      json
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Page size, default 20"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.Response
// @Router       /contact-messages [get]
func (c *ContactController) GetContactMessages() {
	var query models.PaginationQuery
	_ = c.Ctx.ShouldBindQuery(&query)
	query.Normalize()

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	messages, total, err := contactService.ListContactMessages(query.Page, query.Limit)
	if err != nil {
		failFromService(c.Ctx, err)
		return
	}

	result := models.NewPaginationResult(total, query.Page, query.Limit)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"total":    result.Total,
		"page":     result.Page,
		"limit":    result.Limit,
		"pages":    result.Pages,
	})
}

// ArchiveContactMessage archives a contact message
// @Summary      Archive a contact message
// @Description  Set status to archived; archiving twice is a no-op success
// @Tags         Contact
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /contact-messages/{id}/archive [put]
func (c *ContactController) ArchiveContactMessage() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.ArchiveContactMessage(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message archived successfully",
	})
}

// UpdateContactMessageStatus transitions a contact message status
// @Summary      Update contact message status
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "Message ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact-messages/{id}/status [put]
func (c *ContactController) UpdateContactMessageStatus() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.UpdateContactStatus(id, models.ContactStatus(req.Status)); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated successfully",
	})
}

// DeleteContactMessage deletes a contact message
// @Summary      Delete a contact message
// @Description  Remove a contact message permanently
// @Tags         Contact
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.Response
// @Router       /contact-messages/{id} [delete]
func (c *ContactController) DeleteContactMessage() {
	id, ok := pathID(c.Ctx)
	if !ok {
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.DeleteContactMessage(id); err != nil {
		failFromService(c.Ctx, err)
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message deleted successfully",
	})
}
