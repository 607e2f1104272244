package dto

import (
	"time"

	"guildesk/internal/domain/ticket"
	"guildesk/internal/domain/user"
)

// Fallback author snapshot used when the comment's author can no longer be
// resolved in the directory.
const (
	UnknownAuthorPseudo = "Utilisateur inconnu"
	UnknownAuthorRole   = "inconnu"
)

// CommentDTO is a read-side comment enriched with a snapshot of its author
// at read time and a sanitized HTML rendering of the markdown content.
type CommentDTO struct {
	ID            uint      `json:"id"`
	TicketID      uint      `json:"ticket_id"`
	UserID        uint      `json:"user_id"`
	AuthorPseudo  string    `json:"author_pseudo"`
	AuthorRole    string    `json:"author_role"`
	Content       string    `json:"content"`
	ContentHTML   string    `json:"content_html"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToCommentDTO builds the read-side comment. author may be nil, in which
// case the unknown-author placeholder is used.
func ToCommentDTO(c *ticket.Comment, author *user.User, contentHTML string) CommentDTO {
	d := CommentDTO{
		ID:            c.ID(),
		TicketID:      c.TicketID(),
		UserID:        c.UserID(),
		AuthorPseudo:  UnknownAuthorPseudo,
		AuthorRole:    UnknownAuthorRole,
		Content:       c.Content(),
		ContentHTML:   contentHTML,
		AttachmentURL: c.AttachmentURL(),
		CreatedAt:     c.CreatedAt(),
	}

	if author != nil {
		d.AuthorPseudo = author.PseudoInGame()
		d.AuthorRole = author.Role().String()
	}

	return d
}
