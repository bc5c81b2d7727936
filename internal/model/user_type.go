package model

// UserType is a named classification row referenced by every user.
type UserType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:nombre;type:varchar(50);uniqueIndex;not null"`
}

func (UserType) TableName() string { return "tipos_usuario" }
