package dto

import "github.com/shopspring/decimal"

type SalesEmployeeRequest struct {
	AccountRequest
	HireDate string           `json:"fechaContratacion" validate:"notblank,max=255"`
	Salary   *decimal.Decimal `json:"salario" validate:"required,gt=0,money"`
}

type SalesEmployeeResponse struct {
	AccountResponse
	HireDate string          `json:"fechaContratacion"`
	Salary   decimal.Decimal `json:"salario"`
}

type StoreManagerRequest struct {
	AccountRequest
	YearsOfExperience *int   `json:"anosExperiencia" validate:"required,min=0"`
	AssignedStore     string `json:"tiendaAsignada" validate:"notblank,max=100"`
}

type StoreManagerResponse struct {
	AccountResponse
	YearsOfExperience int    `json:"anosExperiencia"`
	AssignedStore     string `json:"tiendaAsignada"`
}
