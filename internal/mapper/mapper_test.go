package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/model"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func TestNilInNilOut(t *testing.T) {
	assert.Nil(t, AdministratorMapper{}.ToEntity(nil))
	assert.Nil(t, ClientMapper{}.ToResponse(nil))
	assert.Nil(t, SalesEmployeeMapper{}.ToEntity(nil))
	assert.Nil(t, StoreManagerMapper{}.ToResponse(nil))
	assert.Nil(t, OrderToEntity(nil))
	assert.Nil(t, OrderToResponse(nil))
	assert.Nil(t, UserTypeToEntity(nil))
	assert.Nil(t, UserTypeToResponse(nil))

	assert.NotPanics(t, func() {
		ClientMapper{}.Merge(nil, &model.Client{})
		ClientMapper{}.Merge(&dto.ClientRequest{}, nil)
		MergeOrder(nil, nil)
		MergeUserType(nil, nil)
	})
}

func TestClientMapper_ToEntityLeavesReferencesUnset(t *testing.T) {
	req := &dto.ClientRequest{
		AccountRequest: dto.AccountRequest{
			Name:       "Ana",
			Email:      "ana@test.com",
			Password:   "secret",
			BirthDate:  "1990-01-01",
			RUT:        "1-9",
			UserTypeID: uintPtr(7),
		},
		ShippingAddress: "Calle 1",
	}

	c := ClientMapper{}.ToEntity(req)
	require.NotNil(t, c)
	assert.Equal(t, "Ana", c.User.Name)
	assert.Equal(t, "secret", c.User.Password)
	assert.Equal(t, "Calle 1", c.ShippingAddress)
	assert.Zero(t, c.User.UserTypeID)
	assert.Zero(t, c.User.ID)
}

func TestMerge_BlankPasswordIsKept(t *testing.T) {
	m := &model.StoreManager{
		User:              model.User{Name: "Old", Password: "keep-me", Email: "old@test.com"},
		YearsOfExperience: 3,
		AssignedStore:     "Centro",
	}
	req := &dto.StoreManagerRequest{
		AccountRequest:    dto.AccountRequest{Name: "New", Password: "  ", Email: "new@test.com"},
		YearsOfExperience: intPtr(0),
	}

	StoreManagerMapper{}.Merge(req, m)

	assert.Equal(t, "New", m.User.Name)
	assert.Equal(t, "keep-me", m.User.Password)
	assert.Equal(t, "new@test.com", m.User.Email)
	assert.Equal(t, 0, m.YearsOfExperience)
	assert.Equal(t, "Centro", m.AssignedStore)
}

func TestSalesEmployeeMapper_RoundTrip(t *testing.T) {
	salary := decimal.RequireFromString("1234.50")
	req := &dto.SalesEmployeeRequest{
		AccountRequest: dto.AccountRequest{Name: "Eva", Email: "eva@test.com", Password: "x", RUT: "2-7"},
		HireDate:       "2020-01-01",
		Salary:         &salary,
	}

	e := SalesEmployeeMapper{}.ToEntity(req)
	e.User.ID = 5
	e.UserID = 5
	e.User.UserType = model.UserType{ID: 2, Name: "EMPLEADO"}

	resp := SalesEmployeeMapper{}.ToResponse(e)
	require.NotNil(t, resp)
	assert.Equal(t, uint(5), resp.ID)
	assert.True(t, salary.Equal(resp.Salary))
	require.NotNil(t, resp.UserType)
	assert.Equal(t, "EMPLEADO", resp.UserType.Name)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), `"salario":1234.5`)
	assert.Contains(t, string(raw), `"tipoUsuario":{"id":2,"nombre":"EMPLEADO"}`)
}

func TestOrderMapper(t *testing.T) {
	total := decimal.RequireFromString("99.90")
	req := &dto.OrderRequest{
		Status:          "PENDIENTE",
		Total:           &total,
		ClientID:        uintPtr(3),
		ShippingAddress: "Calle 2",
		PaymentMethod:   "TARJETA",
	}

	o := OrderToEntity(req)
	require.NotNil(t, o)
	assert.Zero(t, o.ClientID)
	assert.True(t, o.OrderedAt.IsZero())

	placed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o.ID = 11
	o.OrderedAt = placed
	o.ClientID = 3
	o.Client = model.Client{UserID: 3, User: model.User{ID: 3, Name: "Ana"}, ShippingAddress: "Calle 1"}

	MergeOrder(&dto.OrderRequest{Status: "ENVIADO"}, o)
	assert.Equal(t, "ENVIADO", o.Status)
	assert.Equal(t, "Calle 2", o.ShippingAddress)
	assert.Equal(t, placed, o.OrderedAt)
	assert.Equal(t, uint(3), o.ClientID)

	resp := OrderToResponse(o)
	require.NotNil(t, resp.Client)
	assert.Equal(t, uint(3), resp.Client.ID)
	assert.Nil(t, resp.Client.UserType)
	assert.Equal(t, placed, resp.OrderedAt)
}

func TestOrderToResponse_WithoutLoadedClient(t *testing.T) {
	resp := OrderToResponse(&model.Order{ID: 1, ClientID: 9})
	assert.Nil(t, resp.Client)
}
