package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/emergencias-api/internal/application/auth"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/domain"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de cuentas (solo admin). El hospital de un usuario
// define su alcance de consulta, por eso al asignarlo debe ser un hospital
// activo del catálogo; los admins pueden quedar sin hospital asignado.
type UserUseCase struct {
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, hospitalRepo repository.HospitalRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, hospitalRepo: hospitalRepo}
}

// Create da de alta un usuario: hashea password con bcrypt y persiste.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	hospital := strings.TrimSpace(in.Hospital)
	if err := uc.validateHospital(hospital, role); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Hospital:     hospital,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update edita usuario; la contraseña solo cambia si viene en la petición.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, domain.ErrInvalidInput
		}
		if username != user.Username {
			otro, err := uc.userRepo.GetByUsername(username)
			if err != nil {
				return nil, err
			}
			if otro != nil && otro.ID != user.ID {
				return nil, domain.ErrUserAlreadyExists
			}
			user.Username = username
		}
	}
	if in.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*in.Role))
		if role != entity.RoleAdmin && role != entity.RoleUser {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Hospital != nil {
		hospital := strings.TrimSpace(*in.Hospital)
		if err := uc.validateHospital(hospital, user.Role); err != nil {
			return nil, err
		}
		user.Hospital = hospital
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrSelfDelete
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(id)
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve todos los usuarios: admins primero, luego username ascendente.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// validateHospital admite hospital vacío solo para admins; si viene, debe
// nombrar un hospital activo del catálogo.
func (uc *UserUseCase) validateHospital(hospital, role string) error {
	if hospital == "" {
		if role == entity.RoleAdmin {
			return nil
		}
		return domain.ErrInvalidHospital
	}
	h, err := uc.hospitalRepo.GetByNombre(hospital)
	if err != nil {
		return err
	}
	if h == nil || !h.Activo {
		return domain.ErrInvalidHospital
	}
	return nil
}
