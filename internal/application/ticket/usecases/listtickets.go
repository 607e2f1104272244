package usecases

import (
	"context"

	"guildesk/internal/application/ticket/dto"
	"guildesk/internal/domain/ticket"
	vo "guildesk/internal/domain/ticket/valueobjects"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	CallerID   uint
	CallerRole authorization.Role
	Status     string
	Priority   string
	Category   string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.CallerID == 0 {
		return nil, errors.NewValidationError("caller ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	if query.Category != "" {
		category := vo.Category(query.Category)
		if !category.IsValid() {
			return nil, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	// Members only see their own tickets; staff sees everything.
	if !query.CallerRole.IsStaff() {
		callerID := query.CallerID
		filter.CreatorID = &callerID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  dto.ToTicketListItemDTOs(tickets),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
