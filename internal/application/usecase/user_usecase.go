package usecase

import (
	"time"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/domain"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/repository"
)

// UserUseCase administración de cuentas por un administrador (el alta y el
// login viven en application/auth).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List todas las cuentas.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out, nil
}

// Update cambia nombre, rol o estado de una cuenta.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != "" {
		switch in.Role {
		case entity.RoleAdmin, entity.RoleStorekeeper, entity.RoleViewer:
			u.Role = in.Role
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Status != "" {
		if in.Status != "active" && in.Status != "disabled" {
			return nil, domain.ErrInvalidInput
		}
		u.Status = in.Status
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// ToUserResponse proyección sin hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
