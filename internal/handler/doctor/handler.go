package doctor

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dermaconnect/derma-api/internal/handler"
	"github.com/dermaconnect/derma-api/internal/middleware"
	"github.com/dermaconnect/derma-api/internal/model"
)

// Service is the slice of the doctor service this handler needs.
type Service interface {
	GetProfile(ctx context.Context, sess model.Session) (*model.DoctorProfile, error)
	UpsertProfile(ctx context.Context, sess model.Session, req *model.UpsertDoctorProfileRequest) (*model.DoctorProfile, error)
	SetAvailability(ctx context.Context, sess model.Session, desired string) (*model.DoctorProfile, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), sess)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(profile))
}

func (h *Handler) UpsertProfile(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	var req model.UpsertDoctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	profile, err := h.service.UpsertProfile(c.Request.Context(), sess, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(profile))
}

func (h *Handler) SetAvailability(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	var req model.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	profile, err := h.service.SetAvailability(c.Request.Context(), sess, req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(profile))
}
