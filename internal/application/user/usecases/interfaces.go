package usecases

import (
	"context"

	"guildesk/internal/application/user/dto"
)

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type PromoteReviewerExecutor interface {
	Execute(ctx context.Context, cmd PromoteReviewerCommand) (*dto.UserDTO, error)
}
