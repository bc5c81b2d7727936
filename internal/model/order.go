package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a purchase owned by exactly one Client. OrderedAt is assigned by
// the server at creation and never changed afterwards.
type Order struct {
	ID              uint            `gorm:"primaryKey"`
	OrderedAt       time.Time       `gorm:"column:fecha_pedido;not null"`
	Status          string          `gorm:"column:estado;type:varchar(255);not null"`
	Total           decimal.Decimal `gorm:"column:total;type:decimal(12,2);not null;check:chk_pedidos_total,total > 0"`
	ClientID        uint            `gorm:"column:cliente_id;not null;index"`
	Client          Client          `gorm:"foreignKey:ClientID;references:UserID;constraint:OnDelete:CASCADE"`
	ShippingAddress string          `gorm:"column:direccion_envio;type:varchar(255);not null"`
	PaymentMethod   string          `gorm:"column:metodo_pago;type:varchar(255);not null"`
}

func (Order) TableName() string { return "pedidos" }
