package mappers

import (
	"guildesk/internal/domain/user"
	"guildesk/internal/infrastructure/persistence/models"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/biztime"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PseudoInGame: u.PseudoInGame(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Core:         u.Core(),
		Regear:       u.Regear(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PseudoInGame,
		model.PasswordHash,
		authorization.Role(model.Role),
		model.Core,
		model.Regear,
		biztime.UnixMilliToTime(model.CreatedAt),
		biztime.UnixMilliToTime(model.UpdatedAt),
	)
}
