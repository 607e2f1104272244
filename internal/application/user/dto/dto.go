package dto

import (
	"time"

	"guildesk/internal/domain/user"
	"guildesk/internal/shared/mapper"
)

type UserDTO struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PseudoInGame string    `json:"pseudo_in_game"`
	Role         string    `json:"role"`
	Core         bool      `json:"core"`
	Regear       bool      `json:"regear"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:           u.ID(),
		Email:        u.Email(),
		PseudoInGame: u.PseudoInGame(),
		Role:         u.Role().String(),
		Core:         u.Core(),
		Regear:       u.Regear(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	return mapper.MapSlice(users, func(u *user.User) UserDTO {
		return *ToUserDTO(u)
	})
}
