package user

import (
	"fmt"
	"strings"
	"time"

	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/biztime"
)

// User is a directory record for a guild member. Exactly one record exists
// per identity-provider account; records are never hard-deleted.
type User struct {
	id           uint
	email        string
	pseudoInGame string
	passwordHash string
	role         authorization.Role
	core         bool
	regear       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a directory record for a fresh registration. New members
// always start as Membre with both in-game flags cleared.
func NewUser(email, pseudoInGame, passwordHash string) (*User, error) {
	email = strings.TrimSpace(email)
	pseudoInGame = strings.TrimSpace(pseudoInGame)

	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(pseudoInGame) == 0 {
		return nil, fmt.Errorf("pseudo is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()

	return &User{
		email:        email,
		pseudoInGame: pseudoInGame,
		passwordHash: passwordHash,
		role:         authorization.RoleMember,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email string,
	pseudoInGame string,
	passwordHash string,
	role authorization.Role,
	core bool,
	regear bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		pseudoInGame: pseudoInGame,
		passwordHash: passwordHash,
		role:         role,
		core:         core,
		regear:       regear,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PseudoInGame() string {
	return u.pseudoInGame
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) Core() bool {
	return u.core
}

func (u *User) Regear() bool {
	return u.regear
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangeEmail(email string) error {
	email = strings.TrimSpace(email)
	if len(email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}

	u.email = email
	u.touch()
	return nil
}

func (u *User) ChangePseudo(pseudo string) error {
	pseudo = strings.TrimSpace(pseudo)
	if len(pseudo) == 0 {
		return fmt.Errorf("pseudo cannot be empty")
	}

	u.pseudoInGame = pseudo
	u.touch()
	return nil
}

// ChangeRole sets the directory role. Authorization (who may change whose
// role) is decided by the policy layer, not here.
func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	u.role = role
	u.touch()
	return nil
}

func (u *User) SetCore(core bool) {
	u.core = core
	u.touch()
}

func (u *User) SetRegear(regear bool) {
	u.regear = regear
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
}
