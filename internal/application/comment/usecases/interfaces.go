package usecases

import (
	"context"

	"guildesk/internal/application/comment/dto"
	"guildesk/internal/domain/ticket"
)

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type SubscribeCommentsExecutor interface {
	Execute(ctx context.Context, cmd SubscribeCommentsCommand) (ticket.FeedSubscription, error)
}
