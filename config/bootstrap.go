package config

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"qr-order-api/models"
)

// BootstrapAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when no admin exists yet. Safe to call on every startup.
func BootstrapAdmin() {
	if Cfg.AdminEmail == "" || Cfg.AdminPassword == "" {
		return
	}

	var count int64
	DB.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(Cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash admin password")
		return
	}
	admin := models.Admin{Email: Cfg.AdminEmail, PasswordHash: string(hash)}
	if err := DB.Create(&admin).Error; err != nil {
		log.WithError(err).Error("Failed to create admin account")
		return
	}
	log.WithField("email", admin.Email).Info("Admin account bootstrapped")
}
