package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appfrabric/roilux/internal/error/code"
	"github.com/appfrabric/roilux/internal/error/response"
	"github.com/appfrabric/roilux/services/container"
	"github.com/appfrabric/roilux/translations"
)

// TranslationController serves the static UI dictionaries
type TranslationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTranslationController creates a new translation controller
func NewTranslationController(ctx *gin.Context, container *container.ServiceContainer) *TranslationController {
	return &TranslationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTranslationFunc returns a Gin handler dispatching to the translation controller
func HandleTranslationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTranslationController(ctx, container)

		switch method {
		case "getTranslations":
			controller.GetTranslations()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}

// GetTranslations returns the full dictionary for a language
// @Summary      Get UI translations
// @Description  Full key to string mapping for a supported language code
// @Tags         Translations
// @Produce      json
// @Param        lang path string true "Two-letter language code (en, fr)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  response.Response
// @Router       /translations/{lang} [get]
func (c *TranslationController) GetTranslations() {
	lang := c.Ctx.Param("lang")
	dict, ok := translations.All(lang)
	if !ok {
		response.Fail(c.Ctx, code.ErrLanguageNotFound, gin.H{
			"supported": translations.Languages(),
		})
		return
	}
	c.Ctx.JSON(http.StatusOK, dict)
}
