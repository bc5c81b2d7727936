package dto

// AccountRequest carries the identity fields shared by every user kind.
// Password may be blank on update, which keeps the stored one.
type AccountRequest struct {
	Name       string `json:"nombre" validate:"notblank,min=2,max=100"`
	Email      string `json:"email" validate:"notblank,email,max=255"`
	Password   string `json:"password" validate:"notblank_on_create,max=255"`
	BirthDate  string `json:"fechaNacimiento" validate:"notblank,max=255"`
	RUT        string `json:"rut" validate:"notblank,max=255"`
	UserTypeID *uint  `json:"tipoUsuarioId" validate:"required"`
}

// Account exposes the shared part of a kind-specific request.
func (r AccountRequest) Account() AccountRequest { return r }

// AccountPayload is satisfied by every request type that embeds AccountRequest.
type AccountPayload interface {
	Account() AccountRequest
}

// AccountResponse never carries the password.
type AccountResponse struct {
	ID        uint              `json:"id"`
	Name      string            `json:"nombre"`
	Email     string            `json:"email"`
	BirthDate string            `json:"fechaNacimiento"`
	RUT       string            `json:"rut"`
	UserType  *UserTypeResponse `json:"tipoUsuario"`
}

type AdministratorRequest struct {
	AccountRequest
}

type AdministratorResponse struct {
	AccountResponse
}

type ClientRequest struct {
	AccountRequest
	ShippingAddress string `json:"direccionEnvio" validate:"notblank,max=255"`
}

type ClientResponse struct {
	AccountResponse
	ShippingAddress string `json:"direccionEnvio"`
}
