package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermaconnect/derma-api/internal/handler"
	"github.com/dermaconnect/derma-api/internal/middleware"
	"github.com/dermaconnect/derma-api/internal/model"
)

// Service is the slice of the dashboard service this handler needs.
type Service interface {
	PatientView(ctx context.Context, sess model.Session) ([]*model.ConsultationWithDoctor, error)
	DoctorView(ctx context.Context, sess model.Session) (*model.DoctorDashboard, error)
	AdminView(ctx context.Context, sess model.Session) (*model.AdminStats, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Patient(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	consultations, err := h.service.PatientView(c.Request.Context(), sess)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
}

func (h *Handler) Doctor(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	view, err := h.service.DoctorView(c.Request.Context(), sess)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(view))
}

func (h *Handler) Admin(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	stats, err := h.service.AdminView(c.Request.Context(), sess)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stats))
}
