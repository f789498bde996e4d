package consultation

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dermaconnect/derma-api/internal/handler"
	"github.com/dermaconnect/derma-api/internal/middleware"
	"github.com/dermaconnect/derma-api/internal/model"
)

// Service is the slice of the consultation service this handler needs.
type Service interface {
	Request(ctx context.Context, sess model.Session, req *model.CreateConsultationRequest) (*model.Consultation, error)
	Accept(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error)
	Complete(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error)
	Release(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error)
	Cancel(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error)
	UpdateNotes(ctx context.Context, sess model.Session, id uuid.UUID, notes string) (*model.Consultation, error)
	Get(ctx context.Context, sess model.Session, id uuid.UUID) (*model.Consultation, error)
	ListForPatient(ctx context.Context, sess model.Session) ([]*model.ConsultationWithDoctor, error)
	ListAll(ctx context.Context, sess model.Session) ([]*model.ConsultationWithPatient, error)
	History(ctx context.Context, sess model.Session, id uuid.UUID) ([]*model.ConsultationEvent, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	var req model.CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	consultation, err := h.service.Request(c.Request.Context(), sess, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(consultation))
}

func (h *Handler) Get(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	consultation, err := h.service.Get(c.Request.Context(), sess, id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultation))
}

// List is role-scoped: patients see their own consultations joined with
// the assigned doctor, doctors and admins see every consultation joined
// with the requesting patient.
func (h *Handler) List(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	if sess.Role == model.RolePatient {
		consultations, err := h.service.ListForPatient(c.Request.Context(), sess)
		if err != nil {
			handler.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
		return
	}

	consultations, err := h.service.ListAll(c.Request.Context(), sess)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultations))
}

func (h *Handler) Accept(c *gin.Context) {
	h.transition(c, h.service.Accept)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) Release(c *gin.Context) {
	h.transition(c, h.service.Release)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.transition(c, h.service.Cancel)
}

func (h *Handler) UpdateNotes(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	var req model.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	consultation, err := h.service.UpdateNotes(c.Request.Context(), sess, id, req.Notes)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultation))
}

func (h *Handler) History(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	events, err := h.service.History(c.Request.Context(), sess, id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(events))
}

func (h *Handler) transition(c *gin.Context, op func(context.Context, model.Session, uuid.UUID) (*model.Consultation, error)) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	consultation, err := op(c.Request.Context(), sess, id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(consultation))
}

func (h *Handler) sessionAndID(c *gin.Context) (model.Session, uuid.UUID, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return model.Session{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid consultation ID"))
		return model.Session{}, uuid.Nil, false
	}

	return sess, id, true
}
