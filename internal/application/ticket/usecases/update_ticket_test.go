package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/domain/ticket"
	vo "guildesk/internal/domain/ticket/valueobjects"
	"guildesk/internal/shared/authorization"
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
		"Thetford",
		created,
		created,
		closedAt,
	)
	require.NoError(t, err)
	return tk
}

func strPtr(s string) *string { return &s }

func TestUpdateTicketUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusNew, 7)

	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		CallerID:   7,
		CallerRole: authorization.RoleMember,
		Title:      strPtr("Regear after ZvZ (updated)"),
		Priority:   strPtr(string(vo.PriorityCritical)),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Regear after ZvZ (updated)", result.Title)

	require.NotNil(t, updated)
	assert.Equal(t, vo.PriorityCritical, updated.Priority())
	assert.Equal(t, "Lost full set at Thetford", updated.Description())
}

func TestUpdateTicketUseCase_Execute_ClosedTicketForbiddenForAllRoles(t *testing.T) {
	for _, role := range []authorization.Role{
		authorization.RoleMember,
		authorization.RoleReviewer,
		authorization.RoleAdmin,
	} {
		t.Run(role.String(), func(t *testing.T) {
			existing := reconstructTicket(t, vo.StatusClosed, 7)
			mockRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
					return existing, nil
				},
			}

			useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
				TicketID:   1,
				CallerID:   7,
				CallerRole: role,
				Title:      strPtr("New title"),
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
		})
	}
}

func TestUpdateTicketUseCase_Execute_MemberCannotUpdateOthersTicket(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusNew, 7)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		CallerID:   8,
		CallerRole: authorization.RoleMember,
		Title:      strPtr("New title"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateTicketUseCase_Execute_ReviewerCanUpdateAnyOpenTicket(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusInProgress, 7)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		CallerID:   99,
		CallerRole: authorization.RoleReviewer,
		Location:   strPtr("Lymhurst"),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Lymhurst", existing.Location())
}

func TestUpdateTicketUseCase_Execute_InvalidPatchRejectedWithoutPersisting(t *testing.T) {
	existing := reconstructTicket(t, vo.StatusNew, 7)

	updateCalled := false
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   1,
		CallerID:   7,
		CallerRole: authorization.RoleMember,
		Title:      strPtr("A fine title"),
		Priority:   strPtr("urgent"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, updateCalled)
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   42,
		CallerID:   7,
		CallerRole: authorization.RoleAdmin,
		Title:      strPtr("New title"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
