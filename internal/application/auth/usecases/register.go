package usecases

import (
	"context"
	"strings"

	"guildesk/internal/domain/user"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Email        string
	PseudoInGame string
	Password     string
}

type RegisterResult struct {
	UserID       uint
	Email        string
	PseudoInGame string
	Role         string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process credentials")
	}

	newUser, err := user.NewUser(email, cmd.PseudoInGame, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "pseudo", newUser.PseudoInGame())

	return &RegisterResult{
		UserID:       newUser.ID(),
		Email:        newUser.Email(),
		PseudoInGame: newUser.PseudoInGame(),
		Role:         newUser.Role().String(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if !utils.IsValidEmail(strings.TrimSpace(cmd.Email)) {
		return errors.NewValidationError("a valid email address is required")
	}
	if len(strings.TrimSpace(cmd.PseudoInGame)) == 0 {
		return errors.NewValidationError("pseudo is required")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 8 characters long")
	}
	return nil
}
