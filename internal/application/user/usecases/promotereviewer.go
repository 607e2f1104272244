package usecases

import (
	"context"

	"guildesk/internal/application/user/dto"
	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/user"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type PromoteReviewerCommand struct {
	CallerID   uint
	CallerRole authorization.Role
	TargetID   uint
}

type PromoteReviewerUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewPromoteReviewerUseCase(userRepo user.Repository, logger logger.Interface) *PromoteReviewerUseCase {
	return &PromoteReviewerUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *PromoteReviewerUseCase) Execute(ctx context.Context, cmd PromoteReviewerCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing promote reviewer use case", "target_id", cmd.TargetID, "caller_id", cmd.CallerID)

	if cmd.TargetID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.TargetID, "error", err)
		return nil, err
	}

	if !policy.CanChangeUserRole(cmd.CallerRole, target.Role()) {
		uc.logger.Warnw("promotion rejected", "target_id", cmd.TargetID, "caller_id", cmd.CallerID)
		return nil, errors.NewForbiddenError("not authorized to change this user's role")
	}

	if err := target.ChangeRole(authorization.RoleReviewer); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.TargetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user promoted to reviewer", "user_id", target.ID())

	return dto.ToUserDTO(target), nil
}
