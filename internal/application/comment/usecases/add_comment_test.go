package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/domain/ticket"
	vo "guildesk/internal/domain/ticket/valueobjects"
	"guildesk/internal/shared/errors"
)

func reconstructTicket(t *testing.T, status vo.TicketStatus, creatorID uint) *ticket.Ticket {
	t.Helper()

	created := time.Now().Add(-time.Hour)
	var closedAt *time.Time
	if status.IsClosed() {
		closed := created.Add(30 * time.Minute)
		closedAt = &closed
	}

	tk, err := ticket.ReconstructTicket(
		1,
		"T-20250101-0001",
		"Regear after ZvZ",
		"Lost full set at Thetford",
		vo.CategoryDPS,
		vo.PriorityMedium,
		status,
		creatorID,
		nil,
		"",
		created,
		created,
		closedAt,
	)
	require.NoError(t, err)
	return tk
}

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusNew, 7)

	var saved *ticket.Comment
	var publishedTicketID uint
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			if err := comment.SetID(10); err != nil {
				return err
			}
			saved = comment
			return nil
		},
	}
	feed := &mockFeed{
		PublishFunc: func(ticketID uint) {
			publishedTicketID = ticketID
		},
	}

	useCase := NewAddCommentUseCase(mockTickets, mockComments, feed, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 1,
		AuthorID: 7,
		Content:  "On my way with a spare set",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.CommentID)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, saved)
	assert.Equal(t, "On my way with a spare set", saved.Content())
	assert.Equal(t, uint(1), publishedTicketID)
}

func TestAddCommentUseCase_Execute_ClosedTicketForbidden(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusClosed, 7)

	published := false
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	feed := &mockFeed{
		PublishFunc: func(ticketID uint) { published = true },
	}

	useCase := NewAddCommentUseCase(mockTickets, &mockCommentRepository{}, feed, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 1,
		AuthorID: 7,
		Content:  "hello",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
	assert.False(t, published)
}

func TestAddCommentUseCase_Execute_BlankContentRejected(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusNew, 7)
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	useCase := NewAddCommentUseCase(mockTickets, &mockCommentRepository{}, &mockFeed{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 1,
		AuthorID: 7,
		Content:  "   ",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddCommentUseCase_Execute_TicketNotFound(t *testing.T) {
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewAddCommentUseCase(mockTickets, &mockCommentRepository{}, &mockFeed{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 42,
		AuthorID: 7,
		Content:  "hello",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddCommentUseCase_Execute_SaveFailureDoesNotPublish(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusNew, 7)

	published := false
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockComments := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *ticket.Comment) error {
			return errors.NewTransientError("backend unavailable")
		},
	}
	feed := &mockFeed{
		PublishFunc: func(ticketID uint) { published = true },
	}

	useCase := NewAddCommentUseCase(mockTickets, mockComments, feed, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 1,
		AuthorID: 7,
		Content:  "hello",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsTransientError(err))
	assert.False(t, published)
}
