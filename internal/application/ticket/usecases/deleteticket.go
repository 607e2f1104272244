package usecases

import (
	"context"

	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID   uint
	CallerID   uint
	CallerRole authorization.Role
}

type DeleteTicketResult struct {
	Deleted         bool
	CommentsRemoved int64
}

// TransactionRunner executes fn atomically; implemented by the shared
// transaction manager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	commentRepo     ticket.CommentRepository
	txRunner        TransactionRunner
	cascadeComments bool
	logger          logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txRunner TransactionRunner,
	cascadeComments bool,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:      ticketRepo,
		commentRepo:     commentRepo,
		txRunner:        txRunner,
		cascadeComments: cascadeComments,
		logger:          logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "caller_id", cmd.CallerID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !policy.CanDeleteTicket(cmd.CallerRole) {
		uc.logger.Warnw("user not authorized to delete ticket", "ticket_id", cmd.TicketID, "user_id", cmd.CallerID)
		return nil, errors.NewForbiddenError("only reviewers and admins can delete tickets")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if errors.IsNotFoundError(err) {
			return &DeleteTicketResult{Deleted: false}, nil
		}
		uc.logger.Errorw("failed to get ticket", "error", err)
		return nil, err
	}

	var commentsRemoved int64
	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if uc.cascadeComments {
			removed, err := uc.commentRepo.DeleteByTicketID(txCtx, cmd.TicketID)
			if err != nil {
				return err
			}
			commentsRemoved = removed
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "comments_removed", commentsRemoved)

	return &DeleteTicketResult{
		Deleted:         true,
		CommentsRemoved: commentsRemoved,
	}, nil
}
