package v1

import (
	"context"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/token"
	logicv1 "github.com/praneeth-grandhi/Hostel-Management/internal/logic/v1"
)

// UserService is the user logic the handlers depend on
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.UserPatch) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, in domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	GetProfile(ctx context.Context, callerID, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, callerID, id int64, in domain.UserPatch) (*domain.User, error)
}

// AdminService is the admin logic the handlers depend on
type AdminService interface {
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	GetAdmin(ctx context.Context, id int64) (*domain.Admin, error)
	CreateAdmin(ctx context.Context, in domain.AdminPatch) (*domain.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, in domain.AdminPatch) (*domain.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) (int64, error)
	ListAdminHostels(ctx context.Context, id int64) ([]domain.Hostel, error)
}

// HostelService is the hostel logic the handlers depend on
type HostelService interface {
	ListHostels(ctx context.Context) ([]domain.Hostel, error)
	GetHostel(ctx context.Context, id int64) (*domain.Hostel, error)
	CreateHostel(ctx context.Context, in domain.HostelPatch) (*domain.Hostel, error)
	UpdateHostel(ctx context.Context, id int64, in domain.HostelPatch) (*domain.Hostel, error)
	DeleteHostel(ctx context.Context, id int64) error
}

// AuthService is the login logic the handlers depend on
type AuthService interface {
	Login(ctx context.Context, email, password string) (*logicv1.LoginResult, error)
	Logout(ctx context.Context, claims *token.Claims) error
}

var (
	_ UserService   = (*logicv1.UserService)(nil)
	_ AdminService  = (*logicv1.AdminService)(nil)
	_ HostelService = (*logicv1.HostelService)(nil)
	_ AuthService   = (*logicv1.AuthService)(nil)
)
