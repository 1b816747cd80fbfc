package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/application/usecase"
	"github.com/tu-usuario/emergencias-api/internal/domain"
)

func newUserUseCase(t *testing.T) (*usecase.UserUseCase, *fakeUserRepo, *fakeHospitalRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	hospitalRepo := newFakeHospitalRepo()
	hospitalRepo.seed("Hospital A", true)
	hospitalRepo.seed("Hospital Inactivo", false)
	return usecase.NewUserUseCase(userRepo, hospitalRepo), userRepo, hospitalRepo
}

func TestUserCreate_RolPorDefectoYHashBcrypt(t *testing.T) {
	uc, userRepo, _ := newUserUseCase(t)

	out, err := uc.Create(dto.CreateUserRequest{
		Username: "hmn_user", Password: "clave123", Hospital: "Hospital A",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", out.Role, "sin rol explícito se asigna user")
	assert.Equal(t, "Hospital A", out.Hospital)

	// El hash persiste y verifica; el DTO jamás lo expone.
	persisted, _ := userRepo.GetByUsername("hmn_user")
	require.NotNil(t, persisted)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("clave123")))
	assert.NotEqual(t, "clave123", persisted.PasswordHash)
}

func TestUserCreate_ValidacionDeHospital(t *testing.T) {
	uc, _, _ := newUserUseCase(t)

	// Rol user sin hospital: rechazado.
	_, err := uc.Create(dto.CreateUserRequest{Username: "u1", Password: "x", Role: "user"})
	assert.ErrorIs(t, err, domain.ErrInvalidHospital)

	// Hospital inactivo: rechazado para cualquier rol.
	_, err = uc.Create(dto.CreateUserRequest{
		Username: "u2", Password: "x", Role: "user", Hospital: "Hospital Inactivo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHospital)

	// Admin sin hospital: permitido.
	out, err := uc.Create(dto.CreateUserRequest{Username: "jefe", Password: "x", Role: "admin"})
	require.NoError(t, err)
	assert.Empty(t, out.Hospital)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc, _, _ := newUserUseCase(t)

	_, err := uc.Create(dto.CreateUserRequest{Username: "repetido", Password: "x", Role: "admin"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Username: "repetido", Password: "y", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserCreate_RolDesconocidoRechazado(t *testing.T) {
	uc, _, _ := newUserUseCase(t)
	_, err := uc.Create(dto.CreateUserRequest{Username: "u", Password: "x", Role: "superadmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_PasswordSoloSiViene(t *testing.T) {
	uc, userRepo, _ := newUserUseCase(t)

	out, err := uc.Create(dto.CreateUserRequest{Username: "u1", Password: "original", Role: "admin"})
	require.NoError(t, err)
	antes, _ := userRepo.GetByID(out.ID)

	// Sin password en la petición: el hash no cambia.
	nuevoNombre := "u1_renombrado"
	_, err = uc.Update(out.ID, dto.UpdateUserRequest{Username: &nuevoNombre})
	require.NoError(t, err)
	despues, _ := userRepo.GetByID(out.ID)
	assert.Equal(t, antes.PasswordHash, despues.PasswordHash)
	assert.Equal(t, "u1_renombrado", despues.Username)

	// Con password: el hash cambia y verifica la nueva clave.
	nueva := "nueva-clave"
	_, err = uc.Update(out.ID, dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)
	final, _ := userRepo.GetByID(out.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(final.PasswordHash), []byte("nueva-clave")))
}

func TestUserDelete_NoPuedeEliminarseASiMismo(t *testing.T) {
	uc, _, _ := newUserUseCase(t)

	admin, err := uc.Create(dto.CreateUserRequest{Username: "admin", Password: "x", Role: "admin"})
	require.NoError(t, err)
	otro, err := uc.Create(dto.CreateUserRequest{Username: "otro", Password: "x", Role: "admin"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(admin.ID, admin.ID), domain.ErrSelfDelete)
	assert.NoError(t, uc.Delete(admin.ID, otro.ID))
	assert.ErrorIs(t, uc.Delete(admin.ID, otro.ID), domain.ErrNotFound)
}

func TestUserList_AdminsPrimero(t *testing.T) {
	uc, _, _ := newUserUseCase(t)

	_, err := uc.Create(dto.CreateUserRequest{Username: "zeta", Password: "x", Role: "user", Hospital: "Hospital A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Username: "alfa", Password: "x", Role: "user", Hospital: "Hospital A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Username: "root", Password: "x", Role: "admin"})
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)
	assert.Equal(t, "root", out.Items[0].Username, "los admins encabezan el listado")
	assert.Equal(t, "alfa", out.Items[1].Username)
	assert.Equal(t, "zeta", out.Items[2].Username)
}
