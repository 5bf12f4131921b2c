package remote

import (
	"context"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

func (s *Store) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	err := s.conn(ctx).Where("is_active = ?", true).Order("bank_name asc").Find(&methods).Error
	if err != nil {
		return nil, backendErr(err, "listing payment methods")
	}
	return methods, nil
}

func (s *Store) GetAllPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	if err := s.conn(ctx).Order("bank_name asc").Find(&methods).Error; err != nil {
		return nil, backendErr(err, "listing payment methods")
	}
	return methods, nil
}

func (s *Store) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	if method.ID == "" {
		method.ID = identifier.New(identifier.PrefixPaymentMethod)
	}
	if err := s.conn(ctx).Create(method).Error; err != nil {
		return backendErr(err, "creating payment method")
	}
	return nil
}

func (s *Store) UpdatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	err := s.conn(ctx).Model(&models.PaymentMethod{}).Where("id = ?", method.ID).Updates(map[string]any{
		"bank_name":      method.BankName,
		"account_type":   method.AccountType,
		"account_number": method.AccountNumber,
		"account_holder": method.AccountHolder,
		"phone":          method.Phone,
		"email":          method.Email,
		"is_active":      method.IsActive,
		"instructions":   method.Instructions,
	}).Error
	if err != nil {
		return backendErr(err, "updating payment method")
	}
	return nil
}

func (s *Store) DeletePaymentMethod(ctx context.Context, id string) error {
	if err := s.conn(ctx).Delete(&models.PaymentMethod{}, "id = ?", id).Error; err != nil {
		return backendErr(err, "deleting payment method")
	}
	return nil
}
