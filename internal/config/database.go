package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"medico-backend/internal/models"
)

// ConnectDB opens the MySQL connection and migrates the schema. The returned
// handle is injected into handlers; nothing holds it as package state.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey so conflict mapping is portable across drivers.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates/updates the five tables (users, hospitals, services, rdvs
// and the hospital_services join table).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Hospital{},
		&models.Appointment{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
