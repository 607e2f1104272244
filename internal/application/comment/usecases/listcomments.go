package usecases

import (
	"context"

	"guildesk/internal/application/comment/dto"
	"guildesk/internal/domain/ticket"
	"guildesk/internal/domain/user"
	"guildesk/internal/shared/errors"
	"guildesk/internal/shared/logger"
)

// MarkdownRenderer renders markdown to sanitized HTML.
type MarkdownRenderer interface {
	Render(markdown string) string
}

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	renderer    MarkdownRenderer
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute returns the ticket's comments most-recent-first, each enriched
// with an author snapshot taken now. Authors missing from the directory get
// the unknown-author placeholder rather than failing the whole read.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	authors := uc.resolveAuthors(ctx, comments)

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, dto.ToCommentDTO(c, authors[c.UserID()], uc.renderer.Render(c.Content())))
	}
	return result, nil
}

func (uc *ListCommentsUseCase) resolveAuthors(ctx context.Context, comments []*ticket.Comment) map[uint]*user.User {
	authors := make(map[uint]*user.User)
	if len(comments) == 0 {
		return authors
	}

	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(comments))
	for _, c := range comments {
		if !seen[c.UserID()] {
			seen[c.UserID()] = true
			ids = append(ids, c.UserID())
		}
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		// Enrichment is best-effort; unresolved authors fall back to the
		// placeholder snapshot.
		uc.logger.Warnw("failed to resolve comment authors", "error", err)
		return authors
	}

	for _, u := range users {
		authors[u.ID()] = u
	}
	return authors
}
