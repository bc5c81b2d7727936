package mapper

import (
	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/model"
)

type AdministratorMapper struct{}

func (AdministratorMapper) ToEntity(req *dto.AdministratorRequest) *model.Administrator {
	if req == nil {
		return nil
	}
	return &model.Administrator{User: accountToUser(&req.AccountRequest)}
}

func (AdministratorMapper) Merge(req *dto.AdministratorRequest, a *model.Administrator) {
	if req == nil || a == nil {
		return
	}
	mergeUser(&req.AccountRequest, &a.User)
}

func (AdministratorMapper) ToResponse(a *model.Administrator) *dto.AdministratorResponse {
	if a == nil {
		return nil
	}
	return &dto.AdministratorResponse{AccountResponse: userToResponse(&a.User)}
}

type ClientMapper struct{}

func (ClientMapper) ToEntity(req *dto.ClientRequest) *model.Client {
	if req == nil {
		return nil
	}
	return &model.Client{
		User:            accountToUser(&req.AccountRequest),
		ShippingAddress: req.ShippingAddress,
	}
}

func (ClientMapper) Merge(req *dto.ClientRequest, c *model.Client) {
	if req == nil || c == nil {
		return
	}
	mergeUser(&req.AccountRequest, &c.User)
	setString(&c.ShippingAddress, req.ShippingAddress)
}

func (ClientMapper) ToResponse(c *model.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		AccountResponse: userToResponse(&c.User),
		ShippingAddress: c.ShippingAddress,
	}
}

type SalesEmployeeMapper struct{}

func (SalesEmployeeMapper) ToEntity(req *dto.SalesEmployeeRequest) *model.SalesEmployee {
	if req == nil {
		return nil
	}
	e := &model.SalesEmployee{
		User:     accountToUser(&req.AccountRequest),
		HireDate: req.HireDate,
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	return e
}

func (SalesEmployeeMapper) Merge(req *dto.SalesEmployeeRequest, e *model.SalesEmployee) {
	if req == nil || e == nil {
		return
	}
	mergeUser(&req.AccountRequest, &e.User)
	setString(&e.HireDate, req.HireDate)
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
}

func (SalesEmployeeMapper) ToResponse(e *model.SalesEmployee) *dto.SalesEmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.SalesEmployeeResponse{
		AccountResponse: userToResponse(&e.User),
		HireDate:        e.HireDate,
		Salary:          e.Salary,
	}
}

type StoreManagerMapper struct{}

func (StoreManagerMapper) ToEntity(req *dto.StoreManagerRequest) *model.StoreManager {
	if req == nil {
		return nil
	}
	m := &model.StoreManager{
		User:          accountToUser(&req.AccountRequest),
		AssignedStore: req.AssignedStore,
	}
	if req.YearsOfExperience != nil {
		m.YearsOfExperience = *req.YearsOfExperience
	}
	return m
}

func (StoreManagerMapper) Merge(req *dto.StoreManagerRequest, m *model.StoreManager) {
	if req == nil || m == nil {
		return
	}
	mergeUser(&req.AccountRequest, &m.User)
	setString(&m.AssignedStore, req.AssignedStore)
	if req.YearsOfExperience != nil {
		m.YearsOfExperience = *req.YearsOfExperience
	}
}

func (StoreManagerMapper) ToResponse(m *model.StoreManager) *dto.StoreManagerResponse {
	if m == nil {
		return nil
	}
	return &dto.StoreManagerResponse{
		AccountResponse:   userToResponse(&m.User),
		YearsOfExperience: m.YearsOfExperience,
		AssignedStore:     m.AssignedStore,
	}
}

var (
	_ AccountMapper[model.Administrator, dto.AdministratorRequest, dto.AdministratorResponse] = AdministratorMapper{}
	_ AccountMapper[model.Client, dto.ClientRequest, dto.ClientResponse]                      = ClientMapper{}
	_ AccountMapper[model.SalesEmployee, dto.SalesEmployeeRequest, dto.SalesEmployeeResponse] = SalesEmployeeMapper{}
	_ AccountMapper[model.StoreManager, dto.StoreManagerRequest, dto.StoreManagerResponse]    = StoreManagerMapper{}
)
