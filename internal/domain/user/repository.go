package user

import "context"

// Repository defines the interface for user directory operations.
type Repository interface {
	// Create creates a new user record
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByIDs retrieves multiple users by internal IDs
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// List retrieves users matching the filter
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ListFilter represents filtering and pagination options for user listing.
type ListFilter struct {
	Role     string
	Page     int
	PageSize int
}
