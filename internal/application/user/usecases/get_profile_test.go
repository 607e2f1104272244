package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/domain/user"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
)

func TestGetProfileUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructUser(t, 7, "Shadow", authorization.RoleMember), nil
		},
	}

	useCase := NewGetProfileUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetProfileQuery{UserID: 7})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "Shadow", result.PseudoInGame)
	assert.Equal(t, "Membre", result.Role)
}

func TestGetProfileUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	useCase := NewGetProfileUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetProfileQuery{UserID: 404})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListUsersUseCase_Execute_RoleFilterPassedThrough(t *testing.T) {
	var captured user.ListFilter
	mockRepo := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
			captured = filter
			return []*user.User{reconstructUser(t, 8, "Kara", authorization.RoleReviewer)}, 1, nil
		},
	}

	useCase := NewListUsersUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListUsersQuery{Role: "Reviewer"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Reviewer", captured.Role)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "Kara", result.Users[0].PseudoInGame)
}

func TestListUsersUseCase_Execute_InvalidRoleFilter(t *testing.T) {
	useCase := NewListUsersUseCase(&mockUserRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListUsersQuery{Role: "Superviseur"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
