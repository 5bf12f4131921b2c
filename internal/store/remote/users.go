package remote

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/identifier"
)

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.conn(ctx).First(&user, "email = ?", email).Error
	if isNotFound(err) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, backendErr(err, "loading user by email")
	}
	return &user, nil
}

func (s *Store) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.conn(ctx).Order("created_at asc").Find(&users).Error; err != nil {
		return nil, backendErr(err, "listing users")
	}
	return users, nil
}

func (s *Store) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.conn(ctx).First(&user, "id = ?", userID).Error
	if isNotFound(err) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, backendErr(err, "loading user")
	}
	return &user, nil
}

// LoginUser checks credentials in a fixed order: unknown email, then wrong
// password, then a deactivated account.
func (s *Store) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredential, "invalid password")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeAccountInactive, "account is deactivated")
	}
	return user, nil
}

func (s *Store) RegisterUser(ctx context.Context, email, password string) (*models.User, error) {
	var count int64
	if err := s.conn(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, backendErr(err, "checking existing email")
	}
	if count > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeAlreadyExists, "email is already registered")
	}
	user := models.User{
		ID:       identifier.New(identifier.PrefixUser),
		Name:     nameFromEmail(email),
		Email:    email,
		Password: password,
		IsActive: true,
		Role:     enums.UserRoleUser,
	}
	if err := s.conn(ctx).Create(&user).Error; err != nil {
		return nil, backendErr(err, "creating user")
	}
	return &user, nil
}

func (s *Store) CreateUserAdmin(ctx context.Context, params store.CreateUserParams) (*models.User, error) {
	role := params.Role
	if !role.IsValid() {
		role = enums.UserRoleUser
	}
	var count int64
	if err := s.conn(ctx).Model(&models.User{}).Where("email = ?", params.Email).Count(&count).Error; err != nil {
		return nil, backendErr(err, "checking existing email")
	}
	if count > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeAlreadyExists, "email is already registered")
	}
	user := models.User{
		ID:                 identifier.New(identifier.PrefixUser),
		Name:               params.Name,
		Email:              params.Email,
		Password:           params.Password,
		Avatar:             params.Avatar,
		Phone:              params.Phone,
		City:               params.City,
		IsActive:           params.IsActive,
		Role:               role,
		MustChangePassword: params.MustChangePassword,
	}
	if err := s.conn(ctx).Create(&user).Error; err != nil {
		return nil, backendErr(err, "creating user")
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	err := s.conn(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"name":   user.Name,
		"avatar": user.Avatar,
		"phone":  user.Phone,
		"city":   user.City,
	}).Error
	if err != nil {
		return backendErr(err, "updating user")
	}
	return nil
}

func (s *Store) UpdateUserDetails(ctx context.Context, user *models.User) error {
	err := s.conn(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"name":                 user.Name,
		"email":                user.Email,
		"avatar":               user.Avatar,
		"phone":                user.Phone,
		"city":                 user.City,
		"is_active":            user.IsActive,
		"role":                 user.Role,
		"must_change_password": user.MustChangePassword,
	}).Error
	if err != nil {
		return backendErr(err, "updating user details")
	}
	return nil
}

func (s *Store) UpdateUserRole(ctx context.Context, userID string, role enums.UserRole) error {
	err := s.conn(ctx).Model(&models.User{}).Where("id = ?", userID).Update("role", role).Error
	if err != nil {
		return backendErr(err, "updating user role")
	}
	return nil
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID, newPassword string) error {
	err := s.conn(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password":             newPassword,
		"must_change_password": false,
	}).Error
	if err != nil {
		return backendErr(err, "updating user password")
	}
	return nil
}

func (s *Store) SetUserMustChangePassword(ctx context.Context, userID string, mustChange bool) error {
	err := s.conn(ctx).Model(&models.User{}).Where("id = ?", userID).Update("must_change_password", mustChange).Error
	if err != nil {
		return backendErr(err, "updating must-change flag")
	}
	return nil
}

// DeleteUser removes the account with an explicit ordered cascade so no
// orphan rows survive: wishlist entries, line items of the user's orders,
// the orders, then the user row.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	db := s.conn(ctx)
	if err := db.Delete(&models.WishlistEntry{}, "user_id = ?", userID).Error; err != nil {
		return backendErr(err, "deleting wishlist entries")
	}
	if err := db.Where("order_id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).Model(&models.Order{}).Select("id").Where("user_id = ?", userID),
	).Delete(&models.OrderItem{}).Error; err != nil {
		return backendErr(err, "deleting order items")
	}
	if err := db.Delete(&models.Order{}, "user_id = ?", userID).Error; err != nil {
		return backendErr(err, "deleting orders")
	}
	if err := db.Delete(&models.User{}, "id = ?", userID).Error; err != nil {
		return backendErr(err, "deleting user")
	}
	return nil
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
