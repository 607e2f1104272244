package ticket

import (
	"context"

	vo "guildesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, number string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Category  *vo.Category
	CreatorID *uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// GetByTicketID returns comments for a ticket ordered most-recent-first;
	// comments with equal timestamps keep insertion order (newest insertion
	// first).
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	// DeleteByTicketID removes all comments of a ticket. Used only when
	// cascade deletion is enabled.
	DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error)
}

// NumberGenerator allocates public ticket numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
