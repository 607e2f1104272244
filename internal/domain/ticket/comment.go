package ticket

import (
	"fmt"
	"strings"
	"time"

	"guildesk/internal/shared/biztime"
)

const maxCommentLength = 5000

// Comment is an immutable note attached to a ticket. Comments are never
// edited or removed through the service surface.
type Comment struct {
	id            uint
	ticketID      uint
	userID        uint
	content       string
	attachmentURL string
	createdAt     time.Time
}

func NewComment(
	ticketID uint,
	userID uint,
	content string,
	attachmentURL string,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	content = strings.TrimSpace(content)
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}

	return &Comment{
		ticketID:      ticketID,
		userID:        userID,
		content:       content,
		attachmentURL: strings.TrimSpace(attachmentURL),
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	content string,
	attachmentURL string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:            id,
		ticketID:      ticketID,
		userID:        userID,
		content:       content,
		attachmentURL: attachmentURL,
		createdAt:     createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) AttachmentURL() string {
	return c.attachmentURL
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
