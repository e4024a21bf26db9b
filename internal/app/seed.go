package app

import (
	"context"
	"os"

	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedSuperAdmin creates the bootstrap operator account when no SUPER_ADMIN
// exists yet. Registration requires one, so without this the API would be
// unreachable on a fresh database.
func seedSuperAdmin(gormDB *gorm.DB) error {
	logger := zap.L().Named("app.seed")

	repo := user.NewRepository(gormDB)
	exists, err := repo.HasRole(context.Background(), user.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	email := os.Getenv("SUPER_ADMIN_EMAIL")
	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Warn("no SUPER_ADMIN exists and SUPER_ADMIN_EMAIL/SUPER_ADMIN_PASSWORD are not set, skipping seed")
		return nil
	}

	name := os.Getenv("SUPER_ADMIN_NAME")
	if name == "" {
		name = "Super Admin"
	}
	phone := os.Getenv("SUPER_ADMIN_PHONE")
	if phone == "" {
		phone = "0000000000"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &user.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hashed),
		Role:     user.RoleSuperAdmin,
		Status:   user.StatusActive,
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		return err
	}

	logger.Info("seeded SUPER_ADMIN account", zap.String("email", email))
	return nil
}
