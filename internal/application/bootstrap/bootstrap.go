// Package bootstrap siembra el estado inicial sobre una base vacía: el
// catálogo de hospitales de la red y la primera cuenta administradora. La
// siembra es idempotente: solo corre cuando la tabla de usuarios está vacía,
// y dentro de la corrida omite hospitales ya existentes por nombre.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/emergencias-api/internal/domain"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
	"github.com/tu-usuario/emergencias-api/pkg/config"
	"github.com/tu-usuario/emergencias-api/pkg/logger"
)

// hospitalesIniciales catálogo de la red tal como se levantó en campo.
// Los nombres se conservan textuales (tildes, espacios y erratas incluidos)
// porque los registros históricos los referencian como texto libre.
var hospitalesIniciales = []string{
	"Hospital Regional Juan Pablo Pina",
	"Hospital Provincial Dr. Rafael j Mañón",
	"Hospital Provincial Nuestra señora de regla",
	"Hospital Municpal Villa Fundacion",
	"Hospital Municipal Barsequillo",
	"Hospital Municipal Maria Paniagua",
	"Hospital Municipal Tomasina Valdez",
	"Hospital Municipal Nizao",
	"Hospital  Municipal Cambita pueblo",
	"Hospital Municipal Cambita Garabitos",
	"Hospital Municipal de Yaguate",
	"Hospital Municipal Villa Altagracia",
	"Hospital Nustra Señora de Altagracia",
	"Hospital Municipal Dr.Guarionex ALcantara",
	"Hospital Provincial San José de Ocoa",
	"Hospital Municipal los Cacaos",
}

// Bootstrapper ejecuta la siembra inicial.
type Bootstrapper struct {
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
	log          *logger.Logger
}

// New construye el sembrador.
func New(userRepo repository.UserRepository, hospitalRepo repository.HospitalRepository, log *logger.Logger) *Bootstrapper {
	return &Bootstrapper{userRepo: userRepo, hospitalRepo: hospitalRepo, log: log}
}

// Run siembra hospitales y admin si la base está vacía de usuarios.
// Devuelve true si sembró, false si no había nada que hacer.
func (b *Bootstrapper) Run(cfg config.BootstrapConfig) (bool, error) {
	usuarios, err := b.userRepo.Count()
	if err != nil {
		return false, fmt.Errorf("bootstrap: contar usuarios: %w", err)
	}
	if usuarios > 0 {
		b.log.Info().Int("usuarios", usuarios).Msg("Bootstrap omitido: la base ya tiene usuarios")
		return false, nil
	}

	sembrados, err := b.SeedHospitals(hospitalesIniciales)
	if err != nil {
		return false, err
	}
	b.log.Info().Int("hospitales", sembrados).Msg("Catálogo de hospitales sembrado")

	if err := b.seedAdmin(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// SeedHospitals inserta los nombres dados, omitiendo los ya existentes.
// Devuelve cuántos insertó.
func (b *Bootstrapper) SeedHospitals(nombres []string) (int, error) {
	inserted := 0
	for _, nombre := range nombres {
		existente, err := b.hospitalRepo.GetByNombre(nombre)
		if err != nil {
			return inserted, fmt.Errorf("bootstrap: buscar hospital %q: %w", nombre, err)
		}
		if existente != nil {
			continue
		}
		now := time.Now()
		h := &entity.Hospital{
			ID:        uuid.New().String(),
			Nombre:    nombre,
			Activo:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := b.hospitalRepo.Create(h); err != nil {
			return inserted, fmt.Errorf("bootstrap: crear hospital %q: %w", nombre, err)
		}
		inserted++
	}
	return inserted, nil
}

// seedAdmin crea la cuenta administradora inicial a partir de la configuración.
func (b *Bootstrapper) seedAdmin(cfg config.BootstrapConfig) error {
	if cfg.AdminPass == "" {
		return fmt.Errorf("bootstrap: ADMIN_PASS vacío; no se puede sembrar el admin inicial")
	}

	existente, err := b.userRepo.GetByUsername(cfg.AdminUser)
	if err != nil {
		return fmt.Errorf("bootstrap: buscar admin: %w", err)
	}
	if existente != nil {
		return domain.ErrUserAlreadyExists
	}

	hospital := cfg.AdminHospital
	if hospital == "" {
		// El admin no requiere hospital asignado; si hay activos se toma el
		// primero para que la cuenta pueda probar el flujo de captura.
		activos, err := b.hospitalRepo.ListActive()
		if err != nil {
			return fmt.Errorf("bootstrap: listar hospitales activos: %w", err)
		}
		if len(activos) > 0 {
			hospital = activos[0].Nombre
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap: hash de contraseña: %w", err)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     cfg.AdminUser,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Hospital:     hospital,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := b.userRepo.Create(admin); err != nil {
		return fmt.Errorf("bootstrap: crear admin: %w", err)
	}
	b.log.Info().Str("username", admin.Username).Str("hospital", hospital).Msg("Cuenta administradora inicial creada")
	return nil
}
