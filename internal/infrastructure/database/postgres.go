package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aakb/rasid-api/internal/config"
	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/aakb/rasid-api/pkg/receiptcard"
	"github.com/aakb/rasid-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	log.Info("connected to PostgreSQL", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Sadhak{},
		&entity.Receipt{},
		&entity.Settings{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Donor names are unique ignoring case.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_sadhaks_lower_name
		ON sadhaks (LOWER(name)) WHERE deleted_at IS NULL`).Error; err != nil {
		return fmt.Errorf("failed to create sadhak name index: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// SeedDefaultData creates the settings row from the default letterhead and
// the first administrator when ADMIN_EMAIL and ADMIN_PASSWORD are set.
func SeedDefaultData(db *gorm.DB, admin config.AdminConfig, log *zap.Logger) error {
	log.Info("seeding default data")

	var settings entity.Settings
	err := db.First(&settings, entity.SettingsID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		lh := receiptcard.DefaultLetterhead()
		settings = entity.Settings{
			ID:         entity.SettingsID,
			OrgName:    lh.OrgName,
			OrgAddress: lh.Address,
			OrgPhone:   lh.Phone,
			OrgEmail:   lh.Email,
			OrgWebsite: lh.Website,
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to create settings: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if admin.Email == "" || admin.Password == "" {
		log.Info("default data seeding completed")
		return nil
	}

	email := strings.ToLower(admin.Email)
	var existing entity.User
	err = db.Where("LOWER(email) = ?", email).First(&existing).Error
	if err == nil {
		log.Info("admin user already exists", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	name := admin.Name
	if name == "" {
		name = "Admin"
	}
	user := entity.User{
		Email:    email,
		Name:     name,
		Role:     enum.UserRoleAdmin,
		IsActive: true,
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Info("admin user created", zap.String("email", email))

	log.Info("default data seeding completed")
	return nil
}
