package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/session"

	"go.uber.org/zap"
)

const MinPasswordLength = 6

var (
	ErrNotAdmin     = errors.New("account has no access to the admin console")
	ErrWeakPassword = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

type SessionWriter interface {
	SaveLogin(ctx context.Context, token string, user domain.User) error
	Clear(ctx context.Context) error
}

var _ SessionWriter = (*session.Store)(nil)

type AuthService struct {
	api      AuthAPI
	session  SessionWriter
	app      session.App
	notifier Notifier
	logger   *zap.Logger
}

func NewAuthService(api AuthAPI, store SessionWriter, app session.App, notifier Notifier, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: api, session: store, app: app, notifier: notifier, logger: logger}
}

// Login authenticates and stores the credentials. The admin console turns
// away client accounts without storing anything.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	result, err := s.api.Login(ctx, creds)
	if err != nil {
		s.logger.Info("login failed", zap.String("username", creds.Username), zap.Error(err))
		return nil, err
	}
	if s.app == session.AppAdmin && !result.User.Role.IsAdmin() {
		return nil, ErrNotAdmin
	}
	if err := s.session.SaveLogin(ctx, result.AccessToken, result.User); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &result.User, nil
}

// Register creates the account and logs straight in with it.
func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if err := s.api.Register(ctx, creds); err != nil {
		s.logger.Info("register failed", zap.String("username", creds.Username), zap.Error(err))
		return nil, err
	}
	user, err := s.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	s.notifier.Success(fmt.Sprintf("Вітаємо, %s! Реєстрація успішна", creds.Username))
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// LoginError is the message shown under the login form.
func LoginError(err error) string {
	switch {
	case errors.Is(err, ErrNotAdmin):
		return "Доступ лише для адміністраторів"
	case errors.Is(err, ErrWeakPassword):
		return "Пароль має бути не менше 6 символів"
	}
	return apiclient.Detail(err, "Невірний логін або пароль")
}
