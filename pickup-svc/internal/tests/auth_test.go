package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/domain"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/mocks"
	"github.com/dotku/ai-restaurant/pickup-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func hashedUser(t *testing.T, role string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{ID: "u1", Email: "ada@example.com", PasswordHash: string(hash), Role: role}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		password string
		setup    func(*testing.T, *mocks.UserRepository)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			password: "hunter22",
			setup: func(t *testing.T, users *mocks.UserRepository) {
				users.On("FindUserByEmail", mock.Anything, "ada@example.com").Return(hashedUser(t, domain.RoleDriver), nil).Once()
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			setup: func(t *testing.T, users *mocks.UserRepository) {
				users.On("FindUserByEmail", mock.Anything, "ada@example.com").Return(hashedUser(t, domain.RoleDriver), nil).Once()
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "hunter22",
			setup: func(_ *testing.T, users *mocks.UserRepository) {
				users.On("FindUserByEmail", mock.Anything, "ada@example.com").Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			testCase.setup(t, users)
			svc := service.NewAuthService(users, testSecret, time.Hour)

			token, err := svc.Login(context.Background(), " Ada@Example.com ", testCase.password)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			claims, err := svc.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, "u1", claims.ID)
			assert.Equal(t, domain.RoleDriver, claims.Role)
			assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("defaults to customer", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("FindUserByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound).Once()
		users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.RoleCustomer && u.PasswordHash != "pw" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")) == nil
		})).Return(nil).Once()
		svc := service.NewAuthService(users, testSecret, time.Hour)

		token, err := svc.Register(context.Background(), "New", "new@example.com", "pw", "")

		require.NoError(t, err)
		claims, err := svc.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, claims.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		users.On("FindUserByEmail", mock.Anything, "ada@example.com").Return(hashedUser(t, domain.RoleCustomer), nil).Once()

		_, err := service.NewAuthService(users, testSecret, time.Hour).
			Register(context.Background(), "Ada", "ada@example.com", "pw", domain.RoleCustomer)

		assert.ErrorIs(t, err, service.ErrEmailExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		users := mocks.NewUserRepository(t)

		_, err := service.NewAuthService(users, testSecret, time.Hour).
			Register(context.Background(), "Ada", "ada@example.com", "pw", "admin")

		var validationErr *service.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := service.NewAuthService(nil, testSecret, time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		ID:   "u1",
		Role: domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{ID: "u1", Role: domain.RoleDriver})
	foreignToken, err := foreign.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":     expiredToken,
		"wrong key":   foreignToken,
		"not a token": "abc.def",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(token)
			assert.Error(t, err)
		})
	}
}
