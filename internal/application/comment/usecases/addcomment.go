package usecases

import (
	"context"
	"time"

	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID      uint
	AuthorID      uint
	Content       string
	AttachmentURL string
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	feed        ticket.Feed
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	feed ticket.Feed,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		feed:        feed,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	existingTicket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if !policy.CanComment(existingTicket) {
		uc.logger.Warnw("comment rejected on closed ticket", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)
		return nil, errors.NewForbiddenError("ticket is closed")
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.AuthorID, cmd.Content, cmd.AttachmentURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.feed.Publish(cmd.TicketID)

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  comment.TicketID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
