package local

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

func (s *Store) GetStoreSettings(ctx context.Context) ([]models.StoreSetting, error) {
	settings := []models.StoreSetting{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Order("key asc").Find(&settings).Error
	})
	if err != nil {
		s.warn(ctx, "GetStoreSettings", err)
		return []models.StoreSetting{}, nil
	}
	return settings, nil
}

func (s *Store) GetStoreSetting(ctx context.Context, key string) (string, error) {
	var setting models.StoreSetting
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.First(&setting, "key = ?", key).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "setting not found")
	}
	if err != nil {
		return "", localErr(err, "loading setting")
	}
	return setting.Value, nil
}

// UpdateStoreSetting upserts, so writing an unknown key creates it.
func (s *Store) UpdateStoreSetting(ctx context.Context, key, value string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&models.StoreSetting{Key: key, Value: value}).Error
	})
	if err != nil {
		return localErr(err, "updating setting")
	}
	return nil
}
