package usecases

import (
	"context"
	"time"

	"guildesk/internal/domain/policy"
	"guildesk/internal/domain/ticket"
	vo "guildesk/internal/domain/ticket/valueobjects"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

// UpdateTicketCommand is a partial update. Nil fields are left untouched;
// the whole patch is applied atomically or not at all.
type UpdateTicketCommand struct {
	TicketID    uint
	CallerID    uint
	CallerRole  authorization.Role
	Title       *string
	Description *string
	Priority    *string
	Category    *string
	Location    *string
	AssigneeID  *uint
	Unassign    bool
}

type UpdateTicketResult struct {
	TicketID  uint
	Title     string
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "caller_id", cmd.CallerID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	existingTicket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err)
		return nil, err
	}

	if !policy.CanEditTicket(cmd.CallerID, cmd.CallerRole, existingTicket) {
		uc.logger.Warnw("user not authorized to update ticket", "ticket_id", cmd.TicketID, "user_id", cmd.CallerID)
		if existingTicket.IsClosed() {
			return nil, errors.NewForbiddenError("ticket is closed")
		}
		return nil, errors.NewForbiddenError("only the creator or staff can update a ticket")
	}

	// Apply the whole patch in memory before persisting anything; a failure
	// in any field rejects the entire update.
	if cmd.Title != nil {
		if err := existingTicket.ChangeTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := existingTicket.ChangeDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := existingTicket.ChangePriority(vo.Priority(*cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		if err := existingTicket.ChangeCategory(vo.Category(*cmd.Category)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Location != nil {
		if err := existingTicket.ChangeLocation(*cmd.Location); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Unassign {
		if err := existingTicket.Unassign(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if cmd.AssigneeID != nil {
		if err := existingTicket.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, existingTicket); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", existingTicket.ID())

	return &UpdateTicketResult{
		TicketID:  existingTicket.ID(),
		Title:     existingTicket.Title(),
		Status:    existingTicket.Status().String(),
		UpdatedAt: existingTicket.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if cmd.CallerID == 0 {
		return errors.NewValidationError("caller ID is required")
	}

	if cmd.Title != nil {
		if len(*cmd.Title) == 0 {
			return errors.NewValidationError("title cannot be empty")
		}
		if len(*cmd.Title) > 200 {
			return errors.NewValidationError("title exceeds maximum length of 200 characters")
		}
	}

	if cmd.Description != nil {
		if len(*cmd.Description) == 0 {
			return errors.NewValidationError("description cannot be empty")
		}
		if len(*cmd.Description) > 5000 {
			return errors.NewValidationError("description exceeds maximum length of 5000 characters")
		}
	}

	if cmd.Priority != nil && !vo.Priority(*cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if cmd.Category != nil && !vo.Category(*cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}

	return nil
}
