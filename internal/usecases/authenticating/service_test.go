package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/insightify-api/infrastructure/repository/mocks"
	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/domain"
)

func testService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		Name:         "Anna",
		Lastname:     "Andreadi",
		Email:        "anna@example.com",
		PasswordHash: hashPassword(t, "Str0ngPass"),
		Active:       true,
		RoleID:       2,
	}

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(user, nil)

	token, err := service.LoginUser("anna@example.com", "Str0ngPass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token carrega as claims do usuário
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Anna", claims.UserName)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestLoginUser_NormalizesEmail(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		Email:        "anna@example.com",
		PasswordHash: hashPassword(t, "Str0ngPass"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(user, nil)

	_, err := service.LoginUser("  Anna@Example.COM ", "Str0ngPass")
	assert.NoError(t, err)
}

func TestLoginUser_MissingData(t *testing.T) {
	service, _ := testService(t)

	_, err := service.LoginUser("", "Str0ngPass")
	assert.Error(t, err)

	_, err = service.LoginUser("anna@example.com", "")
	assert.Error(t, err)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	service, userRepo := testService(t)

	userRepo.EXPECT().GetUserByEmail("ghost@example.com").Return(nil, nil)

	_, err := service.LoginUser("ghost@example.com", "Str0ngPass")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestLoginUser_UserDisabled(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		Email:        "anna@example.com",
		PasswordHash: hashPassword(t, "Str0ngPass"),
		Active:       false,
	}

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(user, nil)

	_, err := service.LoginUser("anna@example.com", "Str0ngPass")
	require.Error(t, err)
	assert.True(t, IsCredentialsError(err))

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, 7, authErr.UserID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		Email:        "anna@example.com",
		PasswordHash: hashPassword(t, "Str0ngPass"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(user, nil)

	_, err := service.LoginUser("anna@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service, _ := testService(t)

	_, err := service.ValidateToken("invalid.token.value")
	assert.Error(t, err)
}

func TestValidateToken_WrongSigningKey(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		Email:        "anna@example.com",
		PasswordHash: hashPassword(t, "Str0ngPass"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(user, nil)

	token, err := service.LoginUser("anna@example.com", "Str0ngPass")
	require.NoError(t, err)

	// Um serviço com outra chave rejeita o token
	otherService := NewService(nil, &config.Config{SecretKey: "other-secret"})
	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	service, userRepo := testService(t)

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		// A senha é armazenada como hash e o usuário começa inativo
		assert.NotEqual(t, "Str0ngPass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ngPass")))
		assert.False(t, user.Active)
		assert.Equal(t, 3, user.RoleID)

		user.ID = 10
		return user, nil
	})

	created, err := service.CreateUser(&domain.User{
		Name:         "Anna",
		Lastname:     "Andreadi",
		Email:        " Anna@Example.com",
		PasswordHash: "Str0ngPass",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, "anna@example.com", created.Email)
}

func TestCreateUser_MissingData(t *testing.T) {
	service, _ := testService(t)

	_, err := service.CreateUser(&domain.User{Name: "Anna"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequiredData))
}

func TestCreateUser_EmailAlreadyRegistered(t *testing.T) {
	service, userRepo := testService(t)

	userRepo.EXPECT().GetUserByEmail("anna@example.com").Return(&domain.User{ID: 7}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Anna",
		Lastname:     "Andreadi",
		Email:        "anna@example.com",
		PasswordHash: "Str0ngPass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserAlreadyExists))
}

func TestChangePassword(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "OldPass123"),
	}

	userRepo.EXPECT().GetUserByID(7).Return(user, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(updated *domain.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("NewPass456")))
		return nil
	})

	err := service.ChangePassword(7, "OldPass123", "NewPass456")
	assert.NoError(t, err)
}

func TestChangePassword_SamePassword(t *testing.T) {
	service, _ := testService(t)

	err := service.ChangePassword(7, "SamePass1", "SamePass1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSamePassword))
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "OldPass123"),
	}

	userRepo.EXPECT().GetUserByID(7).Return(user, nil)

	err := service.ChangePassword(7, "wrong", "NewPass456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	service, userRepo := testService(t)

	user := &domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "OldPass123"),
	}

	userRepo.EXPECT().GetUserByID(7).Return(user, nil)

	err := service.ChangePassword(7, "OldPass123", "weak")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWeakPassword))
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := testService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Senha válida", password: "Str0ngPass", wantErr: false},
		{name: "Muito curta", password: "Ab1", wantErr: true},
		{name: "Sem maiúscula", password: "str0ngpass", wantErr: true},
		{name: "Sem minúscula", password: "STR0NGPASS", wantErr: true},
		{name: "Sem número", password: "StrongPass", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrWeakPassword))
				return
			}
			assert.NoError(t, err)
		})
	}
}
