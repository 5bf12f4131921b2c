package remote

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

func (s *Store) GetStoreSettings(ctx context.Context) ([]models.StoreSetting, error) {
	settings := []models.StoreSetting{}
	if err := s.conn(ctx).Order("key asc").Find(&settings).Error; err != nil {
		return nil, backendErr(err, "listing settings")
	}
	return settings, nil
}

func (s *Store) GetStoreSetting(ctx context.Context, key string) (string, error) {
	var setting models.StoreSetting
	err := s.conn(ctx).First(&setting, "key = ?", key).Error
	if isNotFound(err) {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "setting not found")
	}
	if err != nil {
		return "", backendErr(err, "loading setting")
	}
	return setting.Value, nil
}

// UpdateStoreSetting upserts, so writing an unknown key creates it.
func (s *Store) UpdateStoreSetting(ctx context.Context, key, value string) error {
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.StoreSetting{Key: key, Value: value}).Error
	if err != nil {
		return backendErr(err, "updating setting")
	}
	return nil
}
