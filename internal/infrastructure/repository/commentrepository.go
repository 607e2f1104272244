package repository

import (
	"context"

	"gorm.io/gorm"

	"guildesk/internal/domain/ticket"
	"guildesk/internal/infrastructure/persistence/mappers"
	"guildesk/internal/infrastructure/persistence/models"
	db "guildesk/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return wrapDBError(err, "failed to save comment")
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// GetByTicketID returns the comments of a ticket most-recent-first. The
// secondary id sort keeps same-millisecond comments in newest-insertion-first
// order.
func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&commentModels).Error; err != nil {
		return nil, wrapDBError(err, "failed to find comments")
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}

func (r *CommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, wrapDBError(result.Error, "failed to delete comments")
	}

	return result.RowsAffected, nil
}
