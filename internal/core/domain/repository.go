package domain

import "context"

// UserRepository defines the interface for user data access
type UserRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, u *User) error
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id int64) error
}

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	ListAdmins(ctx context.Context) ([]Admin, error)
	GetAdmin(ctx context.Context, id int64) (*Admin, error)
	CreateAdmin(ctx context.Context, a *Admin) error
	// UpdateAdmin rejects demoting an admin that still owns hostels.
	UpdateAdmin(ctx context.Context, a *Admin) error
	// DeleteAdmin removes the admin and every hostel it owns, returning how many
	// hostels went with it.
	DeleteAdmin(ctx context.Context, id int64) (int64, error)
}

// HostelRepository defines the interface for hostel data access. Create and
// update verify the owner inside the write transaction via Hostel.CheckOwner.
type HostelRepository interface {
	ListHostels(ctx context.Context) ([]Hostel, error)
	ListHostelsByOwner(ctx context.Context, ownerID int64) ([]Hostel, error)
	GetHostel(ctx context.Context, id int64) (*Hostel, error)
	CreateHostel(ctx context.Context, h *Hostel) error
	UpdateHostel(ctx context.Context, h *Hostel) error
	DeleteHostel(ctx context.Context, id int64) error
}
