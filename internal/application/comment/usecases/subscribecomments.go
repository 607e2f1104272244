package usecases

import (
	"context"

	"guildesk/internal/application/comment/dto"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type SubscribeCommentsCommand struct {
	TicketID uint
	OnUpdate func(comments []dto.CommentDTO)
}

type SubscribeCommentsUseCase struct {
	listComments ListCommentsExecutor
	feed         ticket.Feed
	logger       logger.Interface
}

func NewSubscribeCommentsUseCase(
	listComments ListCommentsExecutor,
	feed ticket.Feed,
	logger logger.Interface,
) *SubscribeCommentsUseCase {
	return &SubscribeCommentsUseCase{
		listComments: listComments,
		feed:         feed,
		logger:       logger,
	}
}

// Execute registers a live subscription on the ticket's comment list. The
// current list is delivered immediately, then again after every change.
// Each delivery carries the full re-sorted, re-enriched list. The returned
// subscription's Unsubscribe is idempotent and guarantees no delivery
// begins after it returns.
func (uc *SubscribeCommentsUseCase) Execute(ctx context.Context, cmd SubscribeCommentsCommand) (ticket.FeedSubscription, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.OnUpdate == nil {
		return nil, errors.NewValidationError("update callback is required")
	}

	deliver := func() {
		comments, err := uc.listComments.Execute(ctx, ListCommentsQuery{TicketID: cmd.TicketID})
		if err != nil {
			uc.logger.Warnw("failed to refresh comment feed", "ticket_id", cmd.TicketID, "error", err)
			return
		}
		cmd.OnUpdate(comments)
	}

	sub := uc.feed.Subscribe(cmd.TicketID, deliver)
	deliver()
	return sub, nil
}
