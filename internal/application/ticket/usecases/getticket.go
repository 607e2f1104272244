package usecases

import (
	"context"

	"guildesk/internal/application/ticket/dto"
	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID   uint
	CallerID   uint
	CallerRole authorization.Role
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if query.CallerID == 0 {
		return nil, errors.NewValidationError("caller ID is required")
	}

	existingTicket, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	if !policy.CanViewTicket(query.CallerID, query.CallerRole, existingTicket) {
		uc.logger.Warnw("user not authorized to view ticket", "ticket_id", query.TicketID, "user_id", query.CallerID)
		return nil, errors.NewForbiddenError("not authorized to view this ticket")
	}

	return dto.ToTicketDTO(existingTicket), nil
}
