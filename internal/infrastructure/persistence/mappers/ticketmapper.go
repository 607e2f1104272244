package mappers

import (
	"guildesk/internal/domain/ticket"
	vo "guildesk/internal/domain/ticket/valueobjects"
	"guildesk/internal/infrastructure/persistence/models"
	"guildesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Number:      t.Number(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		Location:    t.Location(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
		ClosedAt:    biztime.TimePtrToUnixMilli(t.ClosedAt()),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
// Stored status, priority and category values are trusted; rows written by
// older builds with values outside the current vocabulary fail reconstruction.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category := vo.Category(model.Category)
	priority := vo.Priority(model.Priority)
	status := vo.TicketStatus(model.Status)

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		category,
		priority,
		status,
		model.CreatorID,
		model.AssigneeID,
		model.Location,
		biztime.UnixMilliToTime(model.CreatedAt),
		biztime.UnixMilliToTime(model.UpdatedAt),
		biztime.UnixMilliToTimePtr(model.ClosedAt),
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:            c.ID(),
		TicketID:      c.TicketID(),
		UserID:        c.UserID(),
		Content:       c.Content(),
		AttachmentURL: c.AttachmentURL(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		model.AttachmentURL,
		biztime.UnixMilliToTime(model.CreatedAt),
	)
}
