// Package migrate owns the versioned schema history of the service.
// Fresh databases are initialized in one step via InitSchema, existing
// ones replay the pending migrations in order.
package migrate

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/samber/lo"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/constants"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

func allModels() []any {
	return []any{
		&model.User{},
		&model.Session{},
		&model.Chain{},
		&model.Artist{},
		&model.Inspiration{},
	}
}

// Migrate brings the schema to the current version and seeds the builtin
// admin and guest accounts when they do not exist yet.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	m.InitSchema(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(allModels()...); err != nil {
			return err
		}
		return seedBuiltinAccounts(tx)
	})
	if err := m.Migrate(); err != nil {
		return err
	}
	logutils.Log.Info("Migration finished")
	return nil
}

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202505120001_init",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(allModels()...)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"inspirations", "artists", "chains", "sessions", "users",
				)
			},
		},
		{
			ID:      "202505120002_builtin_accounts",
			Migrate: seedBuiltinAccounts,
			Rollback: func(tx *gorm.DB) error {
				names := []string{constants.AdminUserName, constants.GuestUserName}
				return tx.Unscoped().Where("name IN ?", names).Delete(&model.User{}).Error
			},
		},
	}
}

// seedBuiltinAccounts creates the fixed admin and guest users. Passwords
// come from the bootstrap section of the config; an account that already
// exists is left untouched, so reruns are safe.
func seedBuiltinAccounts(tx *gorm.DB) error {
	cfg := config.GetConfig()
	accounts := []struct {
		name     string
		password string
		role     model.Role
	}{
		{constants.AdminUserName, cfg.Bootstrap.AdminPassword, model.RoleAdmin},
		{constants.GuestUserName, cfg.Bootstrap.GuestPassword, model.RoleGuest},
	}
	for _, account := range accounts {
		var count int64
		if err := tx.Model(&model.User{}).Where("name = ?", account.name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := model.User{
			Name:     account.name,
			Nickname: lo.ToPtr(account.name),
			Password: lo.ToPtr(string(hashed)),
			Role:     account.role,
			Status:   model.StatusActive,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
