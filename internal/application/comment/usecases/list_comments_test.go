package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/application/comment/dto"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/domain/user"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
)

func reconstructComment(t *testing.T, id, userID uint, content string, createdAt time.Time) *ticket.Comment {
	t.Helper()

	c, err := ticket.ReconstructComment(id, 1, userID, content, "", createdAt)
	require.NoError(t, err)
	return c
}

func reconstructUser(t *testing.T, id uint, pseudo string, role authorization.Role) *user.User {
	t.Helper()

	now := time.Now()
	u, err := user.ReconstructUser(id, pseudo+"@guild.example", pseudo, "hash", role, false, false, now, now)
	require.NoError(t, err)
	return u
}

func TestListCommentsUseCase_Execute_EnrichesAuthors(t *testing.T) {
	now := time.Now()
	mockComments := &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{
				reconstructComment(t, 2, 8, "Taking this one", now),
				reconstructComment(t, 1, 7, "Lost my set", now.Add(-time.Minute)),
			}, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			assert.ElementsMatch(t, []uint{7, 8}, ids)
			return []*user.User{
				reconstructUser(t, 7, "Shadow", authorization.RoleMember),
				reconstructUser(t, 8, "Kara", authorization.RoleReviewer),
			}, nil
		},
	}

	useCase := NewListCommentsUseCase(mockComments, mockUsers, &mockRenderer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 1})

	require.NoError(t, err)
	require.Len(t, result, 2)

	// Repository order (most-recent-first) is preserved.
	assert.Equal(t, uint(2), result[0].ID)
	assert.Equal(t, "Kara", result[0].AuthorPseudo)
	assert.Equal(t, "Reviewer", result[0].AuthorRole)
	assert.Equal(t, "Shadow", result[1].AuthorPseudo)
	assert.Equal(t, "Membre", result[1].AuthorRole)
	assert.Equal(t, "<p>Taking this one</p>", result[0].ContentHTML)
}

func TestListCommentsUseCase_Execute_UnknownAuthorPlaceholder(t *testing.T) {
	now := time.Now()
	mockComments := &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{reconstructComment(t, 1, 404, "orphan comment", now)}, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return nil, nil
		},
	}

	useCase := NewListCommentsUseCase(mockComments, mockUsers, &mockRenderer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 1})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, dto.UnknownAuthorPseudo, result[0].AuthorPseudo)
	assert.Equal(t, dto.UnknownAuthorRole, result[0].AuthorRole)
}

func TestListCommentsUseCase_Execute_DirectoryFailureFallsBackToPlaceholder(t *testing.T) {
	now := time.Now()
	mockComments := &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{reconstructComment(t, 1, 7, "hello", now)}, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return nil, errors.NewTransientError("directory unavailable")
		},
	}

	useCase := NewListCommentsUseCase(mockComments, mockUsers, &mockRenderer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 1})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, dto.UnknownAuthorPseudo, result[0].AuthorPseudo)
}

func TestListCommentsUseCase_Execute_EmptyList(t *testing.T) {
	mockComments := &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return nil, nil
		},
	}

	useCase := NewListCommentsUseCase(mockComments, &mockUserRepository{}, &mockRenderer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 1})

	require.NoError(t, err)
	assert.Empty(t, result)
}
