package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money is rendered as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// OrderRequest has no timestamp: fechaPedido is assigned by the server.
type OrderRequest struct {
	Status          string           `json:"estado" validate:"notblank,max=255"`
	Total           *decimal.Decimal `json:"total" validate:"required,gt=0,money"`
	ClientID        *uint            `json:"clienteId" validate:"required"`
	ShippingAddress string           `json:"direccionEnvio" validate:"notblank,max=255"`
	PaymentMethod   string           `json:"metodoPago" validate:"notblank,max=255"`
}

type OrderResponse struct {
	ID              uint            `json:"id"`
	OrderedAt       time.Time       `json:"fechaPedido"`
	Status          string          `json:"estado"`
	Total           decimal.Decimal `json:"total"`
	Client          *ClientResponse `json:"cliente"`
	ShippingAddress string          `json:"direccionEnvio"`
	PaymentMethod   string          `json:"metodoPago"`
}
