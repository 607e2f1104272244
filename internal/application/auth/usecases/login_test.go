package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/domain/user"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/errors"
)

func existingUser(t *testing.T) *user.User {
	t.Helper()

	now := time.Now()
	u, err := user.ReconstructUser(7, "shadow@guild.example", "Shadow", "stored-hash", authorization.RoleMember, false, false, now, now)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "shadow@guild.example", email)
			return existingUser(t), nil
		},
	}
	mockHash := &mockHasher{
		CompareFunc: func(hash, password string) error {
			assert.Equal(t, "stored-hash", hash)
			return nil
		},
	}

	useCase := NewLoginUseCase(mockRepo, mockHash, &mockTokenService{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "Shadow@Guild.example",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "Membre", result.Role)
	require.NotNil(t, result.Tokens)
	assert.NotEmpty(t, result.Tokens.AccessToken)
}

func TestLoginUseCase_Execute_UnknownEmailUnauthorized(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	useCase := NewLoginUseCase(mockRepo, &mockHasher{}, &mockTokenService{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "ghost@guild.example",
		Password: "whatever1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_BadPasswordUnauthorized(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existingUser(t), nil
		},
	}
	mockHash := &mockHasher{
		CompareFunc: func(hash, password string) error {
			return errors.NewUnauthorizedError("mismatch")
		},
	}

	useCase := NewLoginUseCase(mockRepo, mockHash, &mockTokenService{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "shadow@guild.example",
		Password: "wrong-pass",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_MissingFields(t *testing.T) {
	useCase := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenService{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), LoginCommand{Email: "", Password: "x"})
	assert.True(t, errors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), LoginCommand{Email: "a@b.example", Password: ""})
	assert.True(t, errors.IsValidationError(err))
}
