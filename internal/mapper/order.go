package mapper

import (
	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/model"
)

// OrderToEntity leaves the client reference and timestamp unset.
func OrderToEntity(req *dto.OrderRequest) *model.Order {
	if req == nil {
		return nil
	}
	o := &model.Order{
		Status:          req.Status,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	}
	if req.Total != nil {
		o.Total = *req.Total
	}
	return o
}

// MergeOrder never touches the client or the order timestamp.
func MergeOrder(req *dto.OrderRequest, o *model.Order) {
	if req == nil || o == nil {
		return
	}
	setString(&o.Status, req.Status)
	setString(&o.ShippingAddress, req.ShippingAddress)
	setString(&o.PaymentMethod, req.PaymentMethod)
	if req.Total != nil {
		o.Total = *req.Total
	}
}

func OrderToResponse(o *model.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:              o.ID,
		OrderedAt:       o.OrderedAt,
		Status:          o.Status,
		Total:           o.Total,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
	}
	if o.Client.UserID != 0 {
		resp.Client = ClientMapper{}.ToResponse(&o.Client)
	}
	return resp
}
