package configs

import (
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	"github.com/c41m07/sf-restaurant/entity"
)

// SeedAdmin crée le compte administrateur au premier démarrage.
func SeedAdmin(cfg *Config, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Warn("seed admin ignoré: ADMIN_EMAIL/ADMIN_PASSWORD manquants")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("admin déjà présent", zap.String("email", cfg.AdminEmail))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.NewUser()
	admin.Email = cfg.AdminEmail
	admin.Password = string(hash)
	admin.FirstName = "Admin"
	admin.LastName = "Seed"
	admin.Roles = entity.RoleList{entity.RoleAdmin}
	return db.Create(admin).Error
}
