package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/tiendalocal/storefront-backend/pkg/auth"
	"github.com/tiendalocal/storefront-backend/pkg/auth/session"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
	"github.com/tiendalocal/storefront-backend/pkg/security"
)

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "tienda-api", ExpirationMinutes: 60}

var testArgon = config.PasswordConfig{
	HashingEnabled:   true,
	ArgonMemoryKB:    32768,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

type fakeStore struct {
	user            *models.User
	loginErr        error
	registered      *models.User
	savedCredential string
}

func (f *fakeStore) LoginUser(_ context.Context, email, password string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeStore) RegisterUser(_ context.Context, email, password string) (*models.User, error) {
	f.savedCredential = password
	f.registered = &models.User{
		ID:       "usr_new",
		Name:     strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Password: password,
		IsActive: true,
		Role:     enums.UserRoleUser,
	}
	return f.registered, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return f.user, nil
}

func (f *fakeStore) UpdateUserPassword(_ context.Context, userID, newPassword string) error {
	f.savedCredential = newPassword
	return nil
}

type fakeSessions struct {
	generated []string
	rotateErr error
	revoked   []string
}

func (f *fakeSessions) Generate(_ context.Context, accessID string) (string, error) {
	f.generated = append(f.generated, accessID)
	return "refresh-" + accessID, nil
}

func (f *fakeSessions) Rotate(_ context.Context, oldAccessID, provided string) (string, string, error) {
	if f.rotateErr != nil {
		return "", "", f.rotateErr
	}
	next := session.NewAccessID()
	return next, "refresh-" + next, nil
}

func (f *fakeSessions) Revoke(_ context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

func newTestService(t *testing.T, store accountStore, sessions sessionManager, pwCfg config.PasswordConfig) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Store:          store,
		SessionManager: sessions,
		JWTConfig:      testJWT,
		PasswordConfig: pwCfg,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestLoginIssuesTokenPair(t *testing.T) {
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Role: enums.UserRoleUser, IsActive: true}}
	sessions := &fakeSessions{}
	svc := newTestService(t, store, sessions, config.PasswordConfig{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "A@B.C", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if resp.User.ID != "usr_1" {
		t.Fatalf("unexpected profile %+v", resp.User)
	}

	claims, err := auth.ParseAccessToken(testJWT, resp.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.UserID != "usr_1" {
		t.Fatalf("unexpected subject %s", claims.UserID)
	}
	if len(sessions.generated) != 1 || claims.ID != sessions.generated[0] {
		t.Fatal("token jti should match the generated session")
	}
}

func TestLoginPassesThroughDomainErrors(t *testing.T) {
	store := &fakeStore{loginErr: pkgerrors.New(pkgerrors.CodeInvalidCredential, "invalid password")}
	svc := newTestService(t, store, &fakeSessions{}, config.PasswordConfig{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "nope"})
	if !pkgerrors.HasCode(err, pkgerrors.CodeInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestLoginHashedVerifiesArgonHash(t *testing.T) {
	hash, err := security.HashPassword("secret", testArgon)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Password: hash, Role: enums.UserRoleUser, IsActive: true}}
	svc := newTestService(t, store, &fakeSessions{}, testArgon)

	if _, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "secret"}); err != nil {
		t.Fatalf("Login with correct password: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "wrong"})
	if !pkgerrors.HasCode(err, pkgerrors.CodeInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestLoginHashedAcceptsLegacyLiteralRows(t *testing.T) {
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Password: "plaintext", Role: enums.UserRoleUser, IsActive: true}}
	svc := newTestService(t, store, &fakeSessions{}, testArgon)

	if _, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "plaintext"}); err != nil {
		t.Fatalf("Login against literal row: %v", err)
	}
}

func TestLoginHashedRejectsInactiveAccount(t *testing.T) {
	hash, err := security.HashPassword("secret", testArgon)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Password: hash, Role: enums.UserRoleUser, IsActive: false}}
	svc := newTestService(t, store, &fakeSessions{}, testArgon)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "secret"})
	if !pkgerrors.HasCode(err, pkgerrors.CodeAccountInactive) {
		t.Fatalf("expected account inactive, got %v", err)
	}
}

func TestRegisterStoresHashWhenEnabled(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store, &fakeSessions{}, testArgon)

	resp, err := svc.Register(context.Background(), RegisterRequest{Email: "New@Example.Com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !strings.HasPrefix(store.savedCredential, "$argon2id$") {
		t.Fatalf("expected hashed credential, got %q", store.savedCredential)
	}
	if store.registered.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", store.registered.Email)
	}
	if resp.Tokens.AccessToken == "" {
		t.Fatal("expected access token")
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Role: enums.UserRoleUser, IsActive: true}}
	sessions := &fakeSessions{}
	svc := newTestService(t, store, sessions, config.PasswordConfig{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	claims, err := auth.ParseAccessToken(testJWT, pair.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated token: %v", err)
	}
	if claims.UserID != "usr_1" {
		t.Fatalf("unexpected subject %s", claims.UserID)
	}
	if claims.ID == sessions.generated[0] {
		t.Fatal("expected a new session id after rotation")
	}
}

func TestRefreshRejectsUnknownRefreshToken(t *testing.T) {
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Role: enums.UserRoleUser, IsActive: true}}
	sessions := &fakeSessions{rotateErr: session.ErrInvalidRefreshToken}
	svc := newTestService(t, store, sessions, config.PasswordConfig{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = svc.Refresh(context.Background(), resp.Tokens.AccessToken, "bogus")
	if !pkgerrors.HasCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	store := &fakeStore{user: &models.User{ID: "usr_1", Email: "a@b.c", Role: enums.UserRoleUser, IsActive: true}}
	sessions := &fakeSessions{}
	svc := newTestService(t, store, sessions, config.PasswordConfig{})

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Tokens.AccessToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != sessions.generated[0] {
		t.Fatalf("expected the login session to be revoked, got %v", sessions.revoked)
	}
}

func TestChangePasswordPassesLiteralWhenHashingDisabled(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store, &fakeSessions{}, config.PasswordConfig{})

	if err := svc.ChangePassword(context.Background(), "usr_1", "new-secret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if store.savedCredential != "new-secret" {
		t.Fatalf("expected literal credential, got %q", store.savedCredential)
	}
}
