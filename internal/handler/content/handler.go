package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermaconnect/derma-api/internal/handler"
	"github.com/dermaconnect/derma-api/internal/i18n"
	"github.com/dermaconnect/derma-api/internal/middleware"
	"github.com/dermaconnect/derma-api/internal/model"
)

// Handler serves localized static content: UI dictionaries, the list
// of supported languages, and the specialty catalog.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Landing returns the full string dictionary for the resolved language,
// landing copy included.
func (h *Handler) Landing(c *gin.Context) {
	lang := middleware.LangFrom(c)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(i18n.Dictionary(lang)))
}

func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"languages": i18n.Langs,
		"default":   i18n.DefaultLang,
	}))
}

func (h *Handler) Specialties(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"specialties": model.Specialties,
	}))
}
