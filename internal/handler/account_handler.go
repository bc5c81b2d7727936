package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/i18n"
	"gestionusuarios/userhub/internal/service"
	"gestionusuarios/userhub/pkg/response"
)

// AccountHandler serves the CRUD routes of one user kind.
type AccountHandler[Req, Resp any] struct {
	service service.AccountService[Req, Resp]
	errorWriter
}

func NewAccountHandler[Req, Resp any](svc service.AccountService[Req, Resp], translator *i18n.Translator, logger *zap.Logger) *AccountHandler[Req, Resp] {
	return &AccountHandler[Req, Resp]{
		service:     svc,
		errorWriter: errorWriter{translator: translator, logger: logger},
	}
}

func (h *AccountHandler[Req, Resp]) List(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, accounts)
}

func (h *AccountHandler[Req, Resp]) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	account, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, account)
}

func (h *AccountHandler[Req, Resp]) Create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidBody(c, err)
		return
	}
	account, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, account)
}

func (h *AccountHandler[Req, Resp]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidBody(c, err)
		return
	}
	account, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, account)
}

func (h *AccountHandler[Req, Resp]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}
