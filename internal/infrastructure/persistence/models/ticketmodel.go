package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Number      string `gorm:"uniqueIndex;size:50;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Category    string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	Location    string `gorm:"size:100"`
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null"`
	ClosedAt    *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID            uint   `gorm:"primaryKey"`
	TicketID      uint   `gorm:"not null;index"`
	UserID        uint   `gorm:"not null;index"`
	Content       string `gorm:"type:text;not null"`
	AttachmentURL string `gorm:"size:500"`
	CreatedAt     int64  `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
