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

func TestPromoteReviewerUseCase_Execute_Success(t *testing.T) {
	target := reconstructUser(t, 8, "Kara", authorization.RoleMember)

	var updated *user.User
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}

	useCase := NewPromoteReviewerUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), PromoteReviewerCommand{
		CallerID:   1,
		CallerRole: authorization.RoleAdmin,
		TargetID:   8,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, authorization.RoleReviewer.String(), result.Role)
	require.NotNil(t, updated)
	assert.True(t, updated.Role().IsReviewer())
}

func TestPromoteReviewerUseCase_Execute_NonAdminForbidden(t *testing.T) {
	for _, role := range []authorization.Role{authorization.RoleMember, authorization.RoleReviewer} {
		t.Run(role.String(), func(t *testing.T) {
			target := reconstructUser(t, 8, "Kara", authorization.RoleMember)
			mockRepo := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return target, nil
				},
			}

			useCase := NewPromoteReviewerUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), PromoteReviewerCommand{
				CallerID:   99,
				CallerRole: role,
				TargetID:   8,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
			assert.True(t, target.Role().IsMember())
		})
	}
}

func TestPromoteReviewerUseCase_Execute_AdminTargetForbiddenAndUnchanged(t *testing.T) {
	target := reconstructUser(t, 1, "GuildMaster", authorization.RoleAdmin)
	updateCalled := false
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return target, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updateCalled = true
			return nil
		},
	}

	useCase := NewPromoteReviewerUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), PromoteReviewerCommand{
		CallerID:   2,
		CallerRole: authorization.RoleAdmin,
		TargetID:   1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
	assert.False(t, updateCalled)
	assert.True(t, target.Role().IsAdmin())
}

func TestPromoteReviewerUseCase_Execute_TargetNotFound(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	useCase := NewPromoteReviewerUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), PromoteReviewerCommand{
		CallerID:   1,
		CallerRole: authorization.RoleAdmin,
		TargetID:   404,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
