package local

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

// GetPaymentMethods returns the active channels shown at checkout.
func (s *Store) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Where("is_active = ?", true).Order("bank_name asc").Find(&methods).Error
	})
	if err != nil {
		s.warn(ctx, "GetPaymentMethods", err)
		return []models.PaymentMethod{}, nil
	}
	return methods, nil
}

func (s *Store) GetAllPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Order("bank_name asc").Find(&methods).Error
	})
	if err != nil {
		s.warn(ctx, "GetAllPaymentMethods", err)
		return []models.PaymentMethod{}, nil
	}
	return methods, nil
}

func (s *Store) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	if method.ID == "" {
		method.ID = identifier.New(identifier.PrefixPaymentMethod)
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Create(method).Error
	})
	if err != nil {
		return localErr(err, "creating payment method")
	}
	return nil
}

func (s *Store) UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.PaymentMethod{}).Where("id = ?", method.ID).Updates(map[string]any{
			"bank_name":      method.BankName,
			"account_type":   method.AccountType,
			"account_number": method.AccountNumber,
			"account_holder": method.AccountHolder,
			"phone":          method.Phone,
			"email":          method.Email,
			"is_active":      method.IsActive,
			"instructions":   method.Instructions,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating payment method")
	}
	return nil
}

func (s *Store) DeletePaymentMethod(ctx context.Context, id string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Delete(&models.PaymentMethod{}, "id = ?", id).Error
	})
	if err != nil {
		return localErr(err, "deleting payment method")
	}
	return nil
}
