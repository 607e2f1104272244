package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/application/comment/dto"
	"guildesk/internal/domain/ticket"
)

type stubListComments struct {
	ExecuteFunc func(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

func (s *stubListComments) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if s.ExecuteFunc != nil {
		return s.ExecuteFunc(ctx, query)
	}
	return nil, nil
}

func TestSubscribeCommentsUseCase_Execute_DeliversInitialListAndUpdates(t *testing.T) {
	list := &stubListComments{
		ExecuteFunc: func(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
			return []dto.CommentDTO{{ID: 1, TicketID: query.TicketID}}, nil
		},
	}

	var feedNotify func()
	feed := &mockFeed{
		SubscribeFunc: func(ticketID uint, notify func()) ticket.FeedSubscription {
			feedNotify = notify
			return &mockSubscription{}
		},
	}

	deliveries := 0
	useCase := NewSubscribeCommentsUseCase(list, feed, &mockLogger{})
	sub, err := useCase.Execute(context.Background(), SubscribeCommentsCommand{
		TicketID: 1,
		OnUpdate: func(comments []dto.CommentDTO) {
			deliveries++
			require.Len(t, comments, 1)
		},
	})

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, 1, deliveries)

	// A change signal pushes the full refreshed list again.
	require.NotNil(t, feedNotify)
	feedNotify()
	assert.Equal(t, 2, deliveries)
}

func TestSubscribeCommentsUseCase_Execute_ValidationErrors(t *testing.T) {
	useCase := NewSubscribeCommentsUseCase(&stubListComments{}, &mockFeed{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), SubscribeCommentsCommand{
		TicketID: 0,
		OnUpdate: func([]dto.CommentDTO) {},
	})
	assert.Error(t, err)

	_, err = useCase.Execute(context.Background(), SubscribeCommentsCommand{TicketID: 1})
	assert.Error(t, err)
}

func TestSubscribeCommentsUseCase_Execute_RefreshFailureSkipsDelivery(t *testing.T) {
	calls := 0
	list := &stubListComments{
		ExecuteFunc: func(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
			calls++
			if calls > 1 {
				return nil, context.DeadlineExceeded
			}
			return nil, nil
		},
	}

	var feedNotify func()
	feed := &mockFeed{
		SubscribeFunc: func(ticketID uint, notify func()) ticket.FeedSubscription {
			feedNotify = notify
			return &mockSubscription{}
		},
	}

	deliveries := 0
	useCase := NewSubscribeCommentsUseCase(list, feed, &mockLogger{})
	_, err := useCase.Execute(context.Background(), SubscribeCommentsCommand{
		TicketID: 1,
		OnUpdate: func([]dto.CommentDTO) { deliveries++ },
	})

	require.NoError(t, err)
	assert.Equal(t, 1, deliveries)

	feedNotify()
	time.Sleep(time.Millisecond)
	assert.Equal(t, 1, deliveries)
}
