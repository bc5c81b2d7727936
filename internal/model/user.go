package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates the concrete user variant stored in the shared usuarios table.
type Kind string

const (
	KindAdministrator Kind = "administrador"
	KindClient        Kind = "cliente"
	KindSalesEmployee Kind = "empleado_ventas"
	KindStoreManager  Kind = "gerente_tienda"
)

// User holds the identity fields shared by every user kind.
// Email and RUT are unique across all kinds.
type User struct {
	ID         uint     `gorm:"primaryKey"`
	Kind       Kind     `gorm:"column:tipo;type:varchar(32);not null;index"`
	Name       string   `gorm:"column:nombre;type:varchar(100);not null"`
	Email      string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password   string   `gorm:"type:varchar(255);not null"`
	BirthDate  string   `gorm:"column:fecha_nacimiento;type:varchar(255)"`
	RUT        string   `gorm:"column:rut;type:varchar(255);uniqueIndex;not null"`
	UserTypeID uint     `gorm:"column:tipo_usuario_id;not null;index"`
	UserType   UserType `gorm:"foreignKey:UserTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string { return "usuarios" }

// Account is implemented by every concrete user kind. Each kind owns a row in
// its own table keyed by the id of its usuarios row.
type Account interface {
	Base() *User
	Kind() Kind
	// LinkUser copies the base row id into the kind-specific key.
	LinkUser()
}

type Administrator struct {
	UserID uint `gorm:"column:usuario_id;primaryKey;autoIncrement:false"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Administrator) TableName() string { return "administradores" }

func (a *Administrator) Base() *User { return &a.User }
func (a *Administrator) Kind() Kind  { return KindAdministrator }
func (a *Administrator) LinkUser()   { a.UserID = a.User.ID }

type Client struct {
	UserID          uint   `gorm:"column:usuario_id;primaryKey;autoIncrement:false"`
	User            User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ShippingAddress string `gorm:"column:direccion_envio;type:varchar(255);not null"`
}

func (Client) TableName() string { return "clientes" }

func (c *Client) Base() *User { return &c.User }
func (c *Client) Kind() Kind  { return KindClient }
func (c *Client) LinkUser()   { c.UserID = c.User.ID }

type SalesEmployee struct {
	UserID   uint            `gorm:"column:usuario_id;primaryKey;autoIncrement:false"`
	User     User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	HireDate string          `gorm:"column:fecha_contratacion;type:varchar(255)"`
	Salary   decimal.Decimal `gorm:"column:salario;type:decimal(12,2);not null;check:chk_empleados_ventas_salario,salario > 0"`
}

func (SalesEmployee) TableName() string { return "empleados_ventas" }

func (e *SalesEmployee) Base() *User { return &e.User }
func (e *SalesEmployee) Kind() Kind  { return KindSalesEmployee }
func (e *SalesEmployee) LinkUser()   { e.UserID = e.User.ID }

type StoreManager struct {
	UserID            uint   `gorm:"column:usuario_id;primaryKey;autoIncrement:false"`
	User              User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	YearsOfExperience int    `gorm:"column:anos_experiencia;not null;check:chk_gerentes_tienda_anos,anos_experiencia >= 0"`
	AssignedStore     string `gorm:"column:tienda_asignada;type:varchar(100);not null"`
}

func (StoreManager) TableName() string { return "gerentes_tienda" }

func (m *StoreManager) Base() *User { return &m.User }
func (m *StoreManager) Kind() Kind  { return KindStoreManager }
func (m *StoreManager) LinkUser()   { m.UserID = m.User.ID }

var (
	_ Account = (*Administrator)(nil)
	_ Account = (*Client)(nil)
	_ Account = (*SalesEmployee)(nil)
	_ Account = (*StoreManager)(nil)
)
