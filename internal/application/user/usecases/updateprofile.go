package usecases

import (
	"context"

	"guildesk/internal/application/user/dto"
	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/user"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

// UpdateProfileCommand is a partial update of a directory record. Nil fields
// are untouched; the whole patch commits atomically or not at all.
type UpdateProfileCommand struct {
	CallerID     uint
	CallerRole   authorization.Role
	TargetID     uint
	Email        *string
	PseudoInGame *string
	Role         *string
	Core         *bool
	Regear       *bool
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update profile use case", "target_id", cmd.TargetID, "caller_id", cmd.CallerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update profile command", "error", err)
		return nil, err
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.TargetID, "error", err)
		return nil, err
	}

	if err := uc.authorize(cmd, target); err != nil {
		uc.logger.Warnw("profile update rejected", "target_id", cmd.TargetID, "caller_id", cmd.CallerID, "error", err)
		return nil, err
	}

	// All checks passed; apply the whole patch then persist once.
	if cmd.Email != nil {
		if err := target.ChangeEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.PseudoInGame != nil {
		if err := target.ChangePseudo(*cmd.PseudoInGame); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Role != nil {
		if err := target.ChangeRole(authorization.Role(*cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Core != nil {
		target.SetCore(*cmd.Core)
	}
	if cmd.Regear != nil {
		target.SetRegear(*cmd.Regear)
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.TargetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", target.ID())

	return dto.ToUserDTO(target), nil
}

func (uc *UpdateProfileUseCase) validateCommand(cmd UpdateProfileCommand) error {
	if cmd.TargetID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.CallerID == 0 {
		return errors.NewValidationError("caller ID is required")
	}
	if cmd.Email != nil && !utils.IsValidEmail(*cmd.Email) {
		return errors.NewValidationError("invalid email address")
	}
	if cmd.Role != nil && !authorization.Role(*cmd.Role).IsValid() {
		return errors.NewValidationError("invalid role")
	}
	return nil
}

// authorize checks every field of the patch against the policy layer before
// any of it is applied.
func (uc *UpdateProfileUseCase) authorize(cmd UpdateProfileCommand, target *user.User) error {
	// Admin records are never editable by anyone but the admin themself.
	if target.Role().IsAdmin() && cmd.CallerID != target.ID() {
		return errors.NewForbiddenError("admin records cannot be modified by other users")
	}

	if cmd.Email != nil || cmd.PseudoInGame != nil {
		if !policy.CanEditUserProfile(cmd.CallerID, cmd.CallerRole, target.ID()) {
			return errors.NewForbiddenError("not authorized to edit this profile")
		}
	}

	if cmd.Role != nil {
		if !policy.CanChangeUserRole(cmd.CallerRole, target.Role()) {
			return errors.NewForbiddenError("not authorized to change this user's role")
		}
	}

	if cmd.Core != nil || cmd.Regear != nil {
		if !policy.CanEditUserFlags(cmd.CallerRole) {
			return errors.NewForbiddenError("not authorized to edit in-game flags")
		}
	}

	return nil
}
