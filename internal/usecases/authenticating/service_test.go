package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmfarina/sales-ops-api/infrastructure/repository/mocks"
	"github.com/jmfarina/sales-ops-api/internal/config"
	"github.com/jmfarina/sales-ops-api/internal/domain"
)

func newTestAuthenticator(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:          "test-secret",
			TokenTTLMinutes: 60,
		},
	}

	return NewService(userRepo, cfg), userRepo
}

func testUser(passwordHash string) *domain.User {
	team := "Mapaches"
	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "García",
		Email:        "ana@x.com",
		PasswordHash: passwordHash,
		Active:       true,
		RoleID:       domain.RoleSeller,
		Team:         &team,
	}
}

func TestLoginUser(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo.EXPECT().GetUserByEmail("ana@x.com").Return(testUser(string(hash)), nil)

	token, err := service.LoginUser(" Ana@X.com ", "secreto123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// El token emitido tiene que validar con la misma clave y cargar los
	// claims que usa el resto del portal
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana García", claims.UserName)
	assert.Equal(t, "ana@x.com", claims.UserEmail)
	assert.Equal(t, domain.RoleSeller, claims.UserRoleID)
	assert.NotNil(t, claims.UserTeam)
	assert.Equal(t, "Mapaches", *claims.UserTeam)
}

func TestLoginUser_ContrasenaIncorrecta(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	userRepo.EXPECT().GetUserByEmail("ana@x.com").Return(testUser(string(hash)), nil)

	_, err := service.LoginUser("ana@x.com", "otra-cosa")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsCredentialsError(err))
}

func TestLoginUser_UsuarioInexistente(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("nadie@x.com").Return(nil, nil)

	_, err := service.LoginUser("nadie@x.com", "secreto123")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginUser_UsuarioDesactivado(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	user := testUser("hash")
	user.Active = false
	userRepo.EXPECT().GetUserByEmail("ana@x.com").Return(user, nil)

	_, err := service.LoginUser("ana@x.com", "secreto123")

	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUser_DatosFaltantes(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.LoginUser("", "secreto123")
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, err = service.LoginUser("ana@x.com", "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateToken_TokenAjeno(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.ValidateToken("no-es-un-jwt")
	assert.Error(t, err)
}

func TestGetUserProfile_OcultaElHash(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByID(7).Return(testUser("hash-sensible"), nil)

	user, err := service.GetUserProfile(7)

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
