package bootstrap_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/emergencias-api/internal/application/bootstrap"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/pkg/config"
	"github.com/tu-usuario/emergencias-api/pkg/logger"
)

type memUserRepo struct {
	byID map[string]*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error { m.byID[u.ID] = u; return nil }
func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	return m.byID[id], nil
}
func (m *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) Update(u *entity.User) error   { return nil }
func (m *memUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (m *memUserRepo) Delete(id string) error        { return nil }
func (m *memUserRepo) Count() (int, error)           { return len(m.byID), nil }

type memHospitalRepo struct {
	byNombre map[string]*entity.Hospital
}

func (m *memHospitalRepo) Create(h *entity.Hospital) error { m.byNombre[h.Nombre] = h; return nil }
func (m *memHospitalRepo) GetByID(id string) (*entity.Hospital, error) {
	return nil, nil
}
func (m *memHospitalRepo) GetByNombre(nombre string) (*entity.Hospital, error) {
	return m.byNombre[nombre], nil
}
func (m *memHospitalRepo) Update(h *entity.Hospital) error { return nil }
func (m *memHospitalRepo) List() ([]*entity.Hospital, error) {
	return nil, nil
}
func (m *memHospitalRepo) ListActive() ([]*entity.Hospital, error) {
	var out []*entity.Hospital
	for _, h := range m.byNombre {
		if h.Activo {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}
func (m *memHospitalRepo) Count() (int, error) { return len(m.byNombre), nil }

func newTestBootstrapper() (*bootstrap.Bootstrapper, *memUserRepo, *memHospitalRepo) {
	userRepo := &memUserRepo{byID: make(map[string]*entity.User)}
	hospitalRepo := &memHospitalRepo{byNombre: make(map[string]*entity.Hospital)}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return bootstrap.New(userRepo, hospitalRepo, log), userRepo, hospitalRepo
}

func TestRun_SiembraSobreBaseVacia(t *testing.T) {
	b, userRepo, hospitalRepo := newTestBootstrapper()

	seeded, err := b.Run(config.BootstrapConfig{
		AdminUser: "admin", AdminPass: "admin123",
	})
	require.NoError(t, err)
	assert.True(t, seeded)

	// El catálogo completo de la red queda sembrado.
	n, _ := hospitalRepo.Count()
	assert.Equal(t, 16, n)

	admin, _ := userRepo.GetByUsername("admin")
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
	assert.NotEmpty(t, admin.Hospital,
		"sin ADMIN_HOSPITAL se asigna el primer hospital activo")
}

func TestRun_IdempotenteConUsuariosExistentes(t *testing.T) {
	b, userRepo, hospitalRepo := newTestBootstrapper()

	userRepo.byID["u1"] = &entity.User{ID: "u1", Username: "alguien"}

	seeded, err := b.Run(config.BootstrapConfig{AdminUser: "admin", AdminPass: "x"})
	require.NoError(t, err)
	assert.False(t, seeded, "con usuarios en la base no se siembra nada")

	n, _ := hospitalRepo.Count()
	assert.Zero(t, n)
}

func TestRun_SinAdminPassFalla(t *testing.T) {
	b, _, _ := newTestBootstrapper()
	_, err := b.Run(config.BootstrapConfig{AdminUser: "admin"})
	assert.Error(t, err, "sin contraseña no puede existir la cuenta inicial")
}

func TestSeedHospitals_OmiteExistentes(t *testing.T) {
	b, _, hospitalRepo := newTestBootstrapper()

	nombres := []string{"Hospital A", "Hospital B"}
	inserted, err := b.SeedHospitals(nombres)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Segunda pasada con un nombre nuevo: solo ese se inserta.
	inserted, err = b.SeedHospitals(append(nombres, "Hospital C"))
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	n, _ := hospitalRepo.Count()
	assert.Equal(t, 3, n)
}
