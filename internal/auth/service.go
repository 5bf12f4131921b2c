package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tiendalocal/storefront-backend/pkg/db/models"

	pkgAuth "github.com/tiendalocal/storefront-backend/pkg/auth"
	"github.com/tiendalocal/storefront-backend/pkg/auth/session"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/security"
)

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
	ChangePassword(ctx context.Context, userID, newPassword string) error
}

type accountStore interface {
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
	RegisterUser(ctx context.Context, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID, newPassword string) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	store   accountStore
	session sessionManager
	jwtCfg  config.JWTConfig
	pwCfg   config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Store          accountStore
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("account store is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		store:   params.Store,
		session: params.SessionManager,
		jwtCfg:  params.JWTConfig,
		pwCfg:   params.PasswordConfig,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	var user *models.User
	var err error
	if s.pwCfg.HashingEnabled {
		user, err = s.loginHashed(ctx, email, req.Password)
	} else {
		user, err = s.store.LoginUser(ctx, email, req.Password)
	}
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: profileFromModel(user), Tokens: *tokens}, nil
}

// loginHashed mirrors the store's credential check order for accounts whose
// password column holds an Argon2id hash. Rows created before hashing was
// switched on still hold literal passwords and keep working.
func (s *service) loginHashed(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, verifyErr := security.VerifyPassword(password, user.Password)
	if verifyErr != nil {
		if !errors.Is(verifyErr, security.ErrInvalidHash) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, verifyErr, "verify password")
		}
		ok = subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) == 1
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredential, "invalid password")
	}
	if !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeAccountInactive, "account is deactivated")
	}
	return user, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	credential, err := s.storedCredential(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.RegisterUser(ctx, email, credential)
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: profileFromModel(user), Tokens: *tokens}, nil
}

func (s *service) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	claims, err := pkgAuth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}

	newAccessID, newRefresh, err := s.session.Rotate(ctx, claims.ID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	access, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: claims.UserID,
		Role:   claims.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &TokenPair{AccessToken: access, RefreshToken: newRefresh}, nil
}

func (s *service) Logout(ctx context.Context, accessToken string) error {
	claims, err := pkgAuth.ParseAccessTokenAllowExpired(s.jwtCfg, accessToken)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token")
	}
	if err := s.session.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID, newPassword string) error {
	credential, err := s.storedCredential(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdateUserPassword(ctx, userID, credential)
}

func (s *service) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessID := session.NewAccessID()

	refresh, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	access, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) storedCredential(password string) (string, error) {
	if !s.pwCfg.HashingEnabled {
		return password, nil
	}
	hash, err := security.HashPassword(password, s.pwCfg)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}
	return hash, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
