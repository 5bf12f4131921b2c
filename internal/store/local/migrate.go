package local

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
)

// migration is one step of the startup sequence. Each step inspects the
// live schema before acting, so the whole list can run on every startup
// against any prior database state without erroring or duplicating data.
type migration struct {
	name  string
	apply func(db *gorm.DB) error
}

func migrations() []migration {
	return []migration{
		{name: "ensure_base_tables", apply: ensureBaseTables},
		{name: "users_is_active", apply: addColumn(&models.User{}, "is_active")},
		{name: "users_role_with_admin_backfill", apply: usersRoleWithAdminBackfill},
		{name: "users_must_change_password", apply: addColumn(&models.User{}, "must_change_password")},
		{name: "products_is_active", apply: addColumn(&models.Product{}, "is_active")},
		{name: "products_images", apply: addColumn(&models.Product{}, "images")},
		{name: "orders_notes", apply: addColumn(&models.Order{}, "notes")},
		{name: "banners_style_and_seed", apply: bannersStyleAndSeed},
		{name: "store_settings_seed", apply: storeSettingsSeed},
		{name: "payment_methods_seed", apply: paymentMethodsSeed},
	}
}

// migrate runs the full sequence. A fresh database additionally gets the
// starter catalog and the bootstrap admin account.
func (s *Store) migrate(ctx context.Context, fresh bool) error {
	db := s.db.WithContext(ctx)
	for _, m := range migrations() {
		if err := m.apply(db); err != nil {
			return localErr(err, fmt.Sprintf("migration %s", m.name))
		}
	}
	if fresh {
		if err := seedFreshDatabase(db); err != nil {
			return localErr(err, "seeding fresh database")
		}
	}
	return nil
}

var allModels = []any{
	&models.Product{},
	&models.Category{},
	&models.User{},
	&models.Order{},
	&models.OrderItem{},
	&models.WishlistEntry{},
	&models.Banner{},
	&models.PaymentMethod{},
	&models.StoreSetting{},
}

func ensureBaseTables(db *gorm.DB) error {
	m := db.Migrator()
	for _, model := range allModels {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return err
		}
	}
	return nil
}

// addColumn creates the named column when a prior schema version lacks it.
func addColumn(model any, column string) func(db *gorm.DB) error {
	return func(db *gorm.DB) error {
		m := db.Migrator()
		if m.HasColumn(model, column) {
			return nil
		}
		return m.AddColumn(model, column)
	}
}

// usersRoleWithAdminBackfill adds the role column and, when no admin
// exists yet, promotes the earliest-created user so the store always has
// at least one administrator.
func usersRoleWithAdminBackfill(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasColumn(&models.User{}, "role") {
		if err := m.AddColumn(&models.User{}, "role"); err != nil {
			return err
		}
	}

	var admins int64
	if err := db.Model(&models.User{}).Where("role = ?", enums.UserRoleAdmin).Count(&admins).Error; err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	var first models.User
	err := db.Order("created_at ASC, id ASC").First(&first).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return db.Model(&models.User{}).Where("id = ?", first.ID).Update("role", enums.UserRoleAdmin).Error
}

func bannersStyleAndSeed(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasColumn(&models.Banner{}, "style") {
		if err := m.AddColumn(&models.Banner{}, "style"); err != nil {
			return err
		}
	}
	var count int64
	if err := db.Model(&models.Banner{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(seedBanners()).Error
}

func storeSettingsSeed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.StoreSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(seedStoreSettings()).Error
}

func paymentMethodsSeed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PaymentMethod{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(seedPaymentMethods()).Error
}

// seedFreshDatabase loads the starter catalog and bootstrap admin on a
// database created from nothing. Settings, banners, and payment methods
// were already inserted by the empty-table seed migrations.
func seedFreshDatabase(db *gorm.DB) error {
	if err := db.Create(seedCategories()).Error; err != nil {
		return err
	}
	if err := db.Create(seedProducts()).Error; err != nil {
		return err
	}
	admin := seedAdminUser()
	return db.Create(&admin).Error
}
