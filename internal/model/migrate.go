package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models. Parents are listed
// before the tables that reference them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserType{},
		&User{},
		&Administrator{},
		&Client{},
		&SalesEmployee{},
		&StoreManager{},
		&Order{},
	)
}
