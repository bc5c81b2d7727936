package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/i18n"
	"gestionusuarios/userhub/internal/service"
	"gestionusuarios/userhub/pkg/response"
)

// UserTypeHandler has no delete route.
type UserTypeHandler struct {
	userTypeService service.UserTypeService
	errorWriter
}

func NewUserTypeHandler(userTypeService service.UserTypeService, translator *i18n.Translator, logger *zap.Logger) *UserTypeHandler {
	return &UserTypeHandler{
		userTypeService: userTypeService,
		errorWriter:     errorWriter{translator: translator, logger: logger},
	}
}

func (h *UserTypeHandler) List(c *gin.Context) {
	userTypes, err := h.userTypeService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, userTypes)
}

func (h *UserTypeHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	userType, err := h.userTypeService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, userType)
}

func (h *UserTypeHandler) Create(c *gin.Context) {
	var req dto.UserTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidBody(c, err)
		return
	}
	userType, err := h.userTypeService.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, userType)
}

func (h *UserTypeHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req dto.UserTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidBody(c, err)
		return
	}
	userType, err := h.userTypeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, userType)
}
