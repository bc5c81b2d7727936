package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/i18n"
	"gestionusuarios/userhub/internal/service"
	"gestionusuarios/userhub/pkg/response"
)

type OrderHandler struct {
	orderService service.OrderService
	errorWriter
}

func NewOrderHandler(orderService service.OrderService, translator *i18n.Translator, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		errorWriter:  errorWriter{translator: translator, logger: logger},
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, orders)
}

// ListByClient serves GET /clientes/:id/pedidos.
func (h *OrderHandler) ListByClient(c *gin.Context) {
	clientID, ok := h.pathID(c)
	if !ok {
		return
	}
	orders, err := h.orderService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidBody(c, err)
		return
	}
	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidBody(c, err)
		return
	}
	order, err := h.orderService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}
