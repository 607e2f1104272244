package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"guildesk/internal/application/ticket/usecases"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/constants"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
	Location    string `json:"location" binding:"max=100"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		CreatorID:   creatorID,
		Location:    r.Location,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Location    *string `json:"location" binding:"omitempty,max=100"`
	AssigneeID  *uint   `json:"assignee_id"`
	Unassign    bool    `json:"unassign"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, callerID uint, callerRole authorization.Role) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		CallerID:    callerID,
		CallerRole:  callerRole,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
		Location:    r.Location,
		AssigneeID:  r.AssigneeID,
		Unassign:    r.Unassign,
	}
}

type ListTicketsRequest struct {
	Page      int
	PageSize  int
	Status    string
	Priority  string
	Category  string
	SortBy    string
	SortOrder string
}

func (r *ListTicketsRequest) ToQuery(callerID uint, callerRole authorization.Role) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		CallerID:   callerID,
		CallerRole: callerRole,
		Status:     r.Status,
		Priority:   r.Priority,
		Category:   r.Category,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
