package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/code"
	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/services"
	"github.com/appfrabric/roilux/services/container"
)

// InterfaceCatalogController defines the product catalog controller
type InterfaceCatalogController interface {
	GetProducts()
	GetProductCategory()
	GetCompanyInfo()
	GetSampleRequest()
}

// CatalogController serves the static catalog endpoints
type CatalogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCatalogController creates a new catalog controller
func NewCatalogController(ctx *gin.Context, container *container.ServiceContainer) *CatalogController {
	return &CatalogController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCatalogFunc returns a Gin handler dispatching to the catalog controller
func HandleCatalogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCatalogController(ctx, container)

		switch method {
		case "getProducts":
			controller.GetProducts()
		case "getProductCategory":
			controller.GetProductCategory()
		case "getCompanyInfo":
			controller.GetCompanyInfo()
		case "getSampleRequest":
			controller.GetSampleRequest()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// GetProducts returns the category overview
// @Summary      List product categories
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /products [get]
func (c *CatalogController) GetProducts() {
	catalogService := c.Container.GetService("catalog").(services.InterfaceCatalogService)
	c.Ctx.JSON(http.StatusOK, gin.H{
		"categories": catalogService.Categories(),
	})
}

// GetProductCategory returns the products of one category
// @Summary      Get a product category
// @Tags         Catalog
// @Produce      json
// @Param        category path string true "Category ID"
// @Success      200  {object}  services.CategoryDetail
// @Failure      404  {object}  response.Response
// @Router       /products/{category} [get]
func (c *CatalogController) GetProductCategory() {
	catalogService := c.Container.GetService("catalog").(services.InterfaceCatalogService)
	detail, ok := catalogService.CategoryByID(c.Ctx.Param("category"))
	if !ok {
		response.Fail(c.Ctx, code.ErrCategoryNotFound, nil)
		return
	}
	c.Ctx.JSON(http.StatusOK, detail)
}

// GetCompanyInfo returns the company profile
// @Summary      Get company information
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /company-info [get]
func (c *CatalogController) GetCompanyInfo() {
	catalogService := c.Container.GetService("catalog").(services.InterfaceCatalogService)
	c.Ctx.JSON(http.StatusOK, catalogService.CompanyInfo())
}

// GetSampleRequest returns the sample request process
// @Summary      Get the sample request process
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /sample-request [get]
func (c *CatalogController) GetSampleRequest() {
	catalogService := c.Container.GetService("catalog").(services.InterfaceCatalogService)
	c.Ctx.JSON(http.StatusOK, catalogService.SampleRequestInfo())
}
