package usecases

import (
	"context"

	"guildesk/internal/application/user/dto"
	"guildesk/internal/domain/user"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

type ListUsersQuery struct {
	Role     string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if query.Role != "" && !authorization.Role(query.Role).IsValid() {
		return nil, errors.NewValidationError("invalid role filter")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Role:     query.Role,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &ListUsersResult{
		Users:    dto.ToUserDTOs(users),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
