package usecases

import (
	"context"
	"strings"

	"guildesk/internal/domain/user"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	PseudoInGame string
	Role         string
	Tokens       *TokenPair
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same answer as a bad password so accounts cannot be enumerated.
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if err := uc.hasher.Compare(existingUser.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login rejected", "user_id", existingUser.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	pair, err := uc.tokens.GenerateTokenPair(existingUser.ID(), existingUser.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginResult{
		UserID:       existingUser.ID(),
		PseudoInGame: existingUser.PseudoInGame(),
		Role:         existingUser.Role().String(),
		Tokens:       pair,
	}, nil
}
