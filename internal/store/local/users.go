package local

import (
	"context"
	"errors"
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
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.First(&user, "email = ?", email).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, localErr(err, "loading user by email")
	}
	return &user, nil
}

func (s *Store) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Order("created_at asc").Find(&users).Error
	})
	if err != nil {
		s.warn(ctx, "GetAllUsers", err)
		return []models.User{}, nil
	}
	return users, nil
}

func (s *Store) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.First(&user, "id = ?", userID).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, localErr(err, "loading user")
	}
	return &user, nil
}

// LoginUser checks credentials in a fixed order: unknown email, then wrong
// password, then a deactivated account. The order is observable through the
// returned error code and must stay stable.
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
	user := models.User{
		ID:       identifier.New(identifier.PrefixUser),
		Name:     nameFromEmail(email),
		Email:    email,
		Password: password,
		IsActive: true,
		Role:     enums.UserRoleUser,
	}
	err := s.mutate(ctx, func(db *gorm.DB) error {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return localErr(err, "checking existing email")
		}
		if count > 0 {
			return pkgerrors.New(pkgerrors.CodeAlreadyExists, "email is already registered")
		}
		if err := db.Create(&user).Error; err != nil {
			return localErr(err, "creating user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUserAdmin(ctx context.Context, params store.CreateUserParams) (*models.User, error) {
	role := params.Role
	if !role.IsValid() {
		role = enums.UserRoleUser
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
	err := s.mutate(ctx, func(db *gorm.DB) error {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", params.Email).Count(&count).Error; err != nil {
			return localErr(err, "checking existing email")
		}
		if count > 0 {
			return pkgerrors.New(pkgerrors.CodeAlreadyExists, "email is already registered")
		}
		if err := db.Create(&user).Error; err != nil {
			return localErr(err, "creating user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser changes the profile fields a user edits about themselves.
// Account controls (role, active flag) go through UpdateUserDetails.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
			"name":   user.Name,
			"avatar": user.Avatar,
			"phone":  user.Phone,
			"city":   user.City,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating user")
	}
	return nil
}

func (s *Store) UpdateUserDetails(ctx context.Context, user *models.User) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
			"name":                 user.Name,
			"email":                user.Email,
			"avatar":               user.Avatar,
			"phone":                user.Phone,
			"city":                 user.City,
			"is_active":            user.IsActive,
			"role":                 user.Role,
			"must_change_password": user.MustChangePassword,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating user details")
	}
	return nil
}

func (s *Store) UpdateUserRole(ctx context.Context, userID string, role enums.UserRole) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.User{}).Where("id = ?", userID).Update("role", role).Error
	})
	if err != nil {
		return localErr(err, "updating user role")
	}
	return nil
}

// UpdateUserPassword sets the new password and clears the forced-change
// flag in the same step, so a first login with a provisional password
// completes in one call.
func (s *Store) UpdateUserPassword(ctx context.Context, userID, newPassword string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
			"password":             newPassword,
			"must_change_password": false,
		}).Error
	})
	if err != nil {
		return localErr(err, "updating user password")
	}
	return nil
}

func (s *Store) SetUserMustChangePassword(ctx context.Context, userID string, mustChange bool) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		return db.Model(&models.User{}).Where("id = ?", userID).Update("must_change_password", mustChange).Error
	})
	if err != nil {
		return localErr(err, "updating must-change flag")
	}
	return nil
}

// DeleteUser removes the account and everything hanging off it. The
// cascade is explicit and ordered so no orphan rows survive: wishlist
// entries, then line items of the user's orders, then the orders, then
// the user row itself.
func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	err := s.mutate(ctx, func(db *gorm.DB) error {
		if err := db.Delete(&models.WishlistEntry{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := db.Where("order_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&models.Order{}).Select("id").Where("user_id = ?", userID),
		).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := db.Delete(&models.Order{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		return db.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		return localErr(err, "deleting user")
	}
	return nil
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
