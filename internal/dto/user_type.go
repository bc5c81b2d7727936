package dto

type UserTypeRequest struct {
	Name string `json:"nombre" validate:"notblank,min=3,max=50"`
}

type UserTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}
