package config

import (
	"github.com/glebarez/sqlite"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qr-order-api/models"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Port          string `envconfig:"PORT" default:"8080"`
	DBPath        string `envconfig:"DB_PATH" default:"qr_order.db"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"qr_order_dev_secret_2026"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	GinMode       string `envconfig:"GIN_MODE" default:"debug"`
}

var (
	Cfg Config

	// DB is the process-wide connection handle, shared by all request handlers.
	DB *gorm.DB

	// JWTSecret signs and verifies auth tokens
	JWTSecret []byte
)

// Load reads the environment into Cfg.
func Load() error {
	if err := envconfig.Process("", &Cfg); err != nil {
		return err
	}
	JWTSecret = []byte(Cfg.JWTSecret)
	return nil
}

// InitDB opens the database and migrates all models.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(Cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	err = DB.AutoMigrate(
		&models.Store{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	log.Info("Database connected and migrated")
}

// CloseDB releases the underlying connection pool.
func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
}
