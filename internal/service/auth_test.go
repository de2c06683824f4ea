package service_test

import (
	"context"
	"errors"
	"testing"

	"delivery-console/internal/apiclient"
	"delivery-console/internal/domain"
	"delivery-console/internal/mocks"
	"delivery-console/internal/notify"
	"delivery-console/internal/service"
	"delivery-console/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		app       session.App
		role      domain.Role
		wantErr   error
		wantSaved bool
	}{
		{name: "client on storefront", app: session.AppStorefront, role: domain.RoleClient, wantSaved: true},
		{name: "admin on admin", app: session.AppAdmin, role: domain.RoleSystemAdmin, wantSaved: true},
		{name: "client on admin", app: session.AppAdmin, role: domain.RoleClient, wantErr: service.ErrNotAdmin},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api := mocks.NewAuthAPI(t)
			store := session.New(session.NewMemoryBackend(), testCase.app)
			svc := service.NewAuthService(api, store, testCase.app, mocks.NewNotifier(t), nil)
			creds := domain.Credentials{Username: "oksana", Password: "secret1"}

			api.On("Login", mock.Anything, creds).Return(&domain.LoginResult{
				AccessToken: "tok",
				User:        domain.User{ID: 1, Username: "oksana", Role: testCase.role},
			}, nil).Once()

			_, err := svc.Login(context.Background(), creds)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				require.NoError(t, err)
			}

			token, err := store.Token(context.Background())
			require.NoError(t, err)
			assert.Equal(t, testCase.wantSaved, token == "tok")
		})
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	api := mocks.NewAuthAPI(t)
	notifier := mocks.NewNotifier(t)
	store := session.New(session.NewMemoryBackend(), session.AppStorefront)
	svc := service.NewAuthService(api, store, session.AppStorefront, notifier, nil)
	creds := domain.Credentials{Username: "taras", Password: "пароль12"}

	api.On("Register", mock.Anything, creds).Return(nil).Once()
	api.On("Login", mock.Anything, creds).Return(&domain.LoginResult{
		AccessToken: "tok",
		User:        domain.User{ID: 9, Username: "taras", Role: domain.RoleClient},
	}, nil).Once()
	notifier.On("Success", "Вітаємо, taras! Реєстрація успішна").Return(notify.Notification{}).Once()

	user, err := svc.Register(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, 9, user.ID)

	stored, err := store.User(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "taras", stored.Username)
}

func TestAuthService_RegisterRejectsShortPassword(t *testing.T) {
	api := mocks.NewAuthAPI(t)
	svc := service.NewAuthService(api, session.New(session.NewMemoryBackend(), session.AppStorefront), session.AppStorefront, mocks.NewNotifier(t), nil)

	_, err := svc.Register(context.Background(), domain.Credentials{Username: "a", Password: "12345"})
	assert.ErrorIs(t, err, service.ErrWeakPassword)
	api.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLoginError(t *testing.T) {
	assert.Equal(t, "Доступ лише для адміністраторів", service.LoginError(service.ErrNotAdmin))
	assert.Equal(t, "Incorrect username or password",
		service.LoginError(&apiclient.APIError{StatusCode: 401, Detail: "Incorrect username or password"}))
	assert.Equal(t, "Невірний логін або пароль", service.LoginError(errors.New("dial tcp: refused")))
}
