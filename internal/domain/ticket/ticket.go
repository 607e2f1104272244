package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "guildesk/internal/domain/ticket/valueobjects"
	"guildesk/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

type Ticket struct {
	id          uint
	number      string
	title       string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.TicketStatus
	creatorID   uint
	assigneeID  *uint
	location    string
	createdAt   time.Time
	updatedAt   time.Time
	closedAt    *time.Time
}

func NewTicket(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	creatorID uint,
	location string,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusNew,
		creatorID:   creatorID,
		location:    strings.TrimSpace(location),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	location string,
	createdAt, updatedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:          id,
		number:      number,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		location:    location,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Location() string {
	return t.location
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetNumber(number string) error {
	if len(t.number) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// ChangeTitle updates the title. Content of a closed ticket is frozen.
func (t *Ticket) ChangeTitle(title string) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}

	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}

	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) ChangeDescription(description string) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}

	description = strings.TrimSpace(description)
	if len(description) == 0 {
		return fmt.Errorf("description cannot be empty")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}

	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(newCategory vo.Category) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	if !newCategory.IsValid() {
		return fmt.Errorf("invalid category: %s", newCategory)
	}

	t.category = newCategory
	t.touch()
	return nil
}

func (t *Ticket) ChangeLocation(location string) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}

	t.location = strings.TrimSpace(location)
	t.touch()
	return nil
}

// AssignTo assigns the ticket to a user and moves a fresh ticket into
// "en cours".
func (t *Ticket) AssignTo(assigneeID uint) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	if t.status.IsNew() {
		t.status = vo.StatusInProgress
	}
	t.touch()
	return nil
}

func (t *Ticket) Unassign() error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is closed")
	}

	t.assigneeID = nil
	t.touch()
	return nil
}

// Close moves the ticket to "fermé". Closing an already-closed ticket is not
// an error; it re-stamps UpdatedAt, matching the historical behavior.
func (t *Ticket) Close() {
	if !t.status.IsClosed() {
		t.status = vo.StatusClosed
		now := biztime.NowUTC()
		t.closedAt = &now
	}
	t.touch()
}

func (t *Ticket) IsClosed() bool {
	return t.status.IsClosed()
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	return nil
}
