package usecases

import (
	"context"
	"time"

	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID   uint
	CallerID   uint
	CallerRole authorization.Role
}

type CloseTicketResult struct {
	TicketID uint
	Status   string
	ClosedAt *time.Time
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID, "caller_id", cmd.CallerID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !policy.CanCloseTicket(cmd.CallerRole) {
		uc.logger.Warnw("user not authorized to close ticket", "ticket_id", cmd.TicketID, "user_id", cmd.CallerID)
		return nil, errors.NewForbiddenError("only reviewers and admins can close tickets")
	}

	existingTicket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err)
		return nil, err
	}

	// Closing an already-closed ticket is deliberately not an error; it
	// re-stamps UpdatedAt and leaves ClosedAt where it was.
	existingTicket.Close()

	if err := uc.ticketRepo.Update(ctx, existingTicket); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket closed", "ticket_id", existingTicket.ID())

	return &CloseTicketResult{
		TicketID: existingTicket.ID(),
		Status:   existingTicket.Status().String(),
		ClosedAt: existingTicket.ClosedAt(),
	}, nil
}
