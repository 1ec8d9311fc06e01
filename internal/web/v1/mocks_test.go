package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
	"github.com/praneeth-grandhi/Hostel-Management/internal/core/token"
	logicv1 "github.com/praneeth-grandhi/Hostel-Management/internal/logic/v1"
	"github.com/praneeth-grandhi/Hostel-Management/middleware"
)

// =============================================================================
// Mock Services
// =============================================================================

type mockUserService struct {
	listUsersFunc     func(ctx context.Context) ([]domain.User, error)
	getUserFunc       func(ctx context.Context, id int64) (*domain.User, error)
	createUserFunc    func(ctx context.Context, in domain.UserPatch) (*domain.User, error)
	updateUserFunc    func(ctx context.Context, id int64, in domain.UserPatch) (*domain.User, error)
	deleteUserFunc    func(ctx context.Context, id int64) error
	getProfileFunc    func(ctx context.Context, callerID, id int64) (*domain.User, error)
	updateProfileFunc func(ctx context.Context, callerID, id int64, in domain.UserPatch) (*domain.User, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserService) CreateUser(ctx context.Context, in domain.UserPatch) (*domain.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, in domain.UserPatch) (*domain.User, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, id, in)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteUserFunc != nil {
		return m.deleteUserFunc(ctx, id)
	}
	return nil
}

func (m *mockUserService) GetProfile(ctx context.Context, callerID, id int64) (*domain.User, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, callerID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserService) UpdateProfile(ctx context.Context, callerID, id int64, in domain.UserPatch) (*domain.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, callerID, id, in)
	}
	return nil, domain.ErrNotFound
}

type mockAdminService struct {
	listAdminsFunc       func(ctx context.Context) ([]domain.Admin, error)
	getAdminFunc         func(ctx context.Context, id int64) (*domain.Admin, error)
	createAdminFunc      func(ctx context.Context, in domain.AdminPatch) (*domain.Admin, error)
	updateAdminFunc      func(ctx context.Context, id int64, in domain.AdminPatch) (*domain.Admin, error)
	deleteAdminFunc      func(ctx context.Context, id int64) (int64, error)
	listAdminHostelsFunc func(ctx context.Context, id int64) ([]domain.Hostel, error)
}

func (m *mockAdminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	if m.listAdminsFunc != nil {
		return m.listAdminsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminService) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	if m.getAdminFunc != nil {
		return m.getAdminFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockAdminService) CreateAdmin(ctx context.Context, in domain.AdminPatch) (*domain.Admin, error) {
	if m.createAdminFunc != nil {
		return m.createAdminFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockAdminService) UpdateAdmin(ctx context.Context, id int64, in domain.AdminPatch) (*domain.Admin, error) {
	if m.updateAdminFunc != nil {
		return m.updateAdminFunc(ctx, id, in)
	}
	return nil, domain.ErrNotFound
}

func (m *mockAdminService) DeleteAdmin(ctx context.Context, id int64) (int64, error) {
	if m.deleteAdminFunc != nil {
		return m.deleteAdminFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockAdminService) ListAdminHostels(ctx context.Context, id int64) ([]domain.Hostel, error) {
	if m.listAdminHostelsFunc != nil {
		return m.listAdminHostelsFunc(ctx, id)
	}
	return nil, nil
}

type mockHostelService struct {
	listHostelsFunc  func(ctx context.Context) ([]domain.Hostel, error)
	getHostelFunc    func(ctx context.Context, id int64) (*domain.Hostel, error)
	createHostelFunc func(ctx context.Context, in domain.HostelPatch) (*domain.Hostel, error)
	updateHostelFunc func(ctx context.Context, id int64, in domain.HostelPatch) (*domain.Hostel, error)
	deleteHostelFunc func(ctx context.Context, id int64) error
}

func (m *mockHostelService) ListHostels(ctx context.Context) ([]domain.Hostel, error) {
	if m.listHostelsFunc != nil {
		return m.listHostelsFunc(ctx)
	}
	return nil, nil
}

func (m *mockHostelService) GetHostel(ctx context.Context, id int64) (*domain.Hostel, error) {
	if m.getHostelFunc != nil {
		return m.getHostelFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockHostelService) CreateHostel(ctx context.Context, in domain.HostelPatch) (*domain.Hostel, error) {
	if m.createHostelFunc != nil {
		return m.createHostelFunc(ctx, in)
	}
	return nil, nil
}

func (m *mockHostelService) UpdateHostel(ctx context.Context, id int64, in domain.HostelPatch) (*domain.Hostel, error) {
	if m.updateHostelFunc != nil {
		return m.updateHostelFunc(ctx, id, in)
	}
	return nil, domain.ErrNotFound
}

func (m *mockHostelService) DeleteHostel(ctx context.Context, id int64) error {
	if m.deleteHostelFunc != nil {
		return m.deleteHostelFunc(ctx, id)
	}
	return nil
}

type mockAuthService struct {
	loginFunc  func(ctx context.Context, email, password string) (*logicv1.LoginResult, error)
	logoutFunc func(ctx context.Context, claims *token.Claims) error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*logicv1.LoginResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *mockAuthService) Logout(ctx context.Context, claims *token.Claims) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, claims)
	}
	return nil
}

// mockAuthenticator rejects every token unless authenticateFunc is set.
type mockAuthenticator struct {
	authenticateFunc func(ctx context.Context, raw string) (*token.Claims, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, raw string) (*token.Claims, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, raw)
	}
	return nil, domain.ErrUnauthorized
}

// =============================================================================
// Test Helpers
// =============================================================================

type testServices struct {
	users   *mockUserService
	admins  *mockAdminService
	hostels *mockHostelService
	auth    *mockAuthService
	tokens  *mockAuthenticator
}

func newTestServices() *testServices {
	return &testServices{
		users:   &mockUserService{},
		admins:  &mockAdminService{},
		hostels: &mockHostelService{},
		auth:    &mockAuthService{},
		tokens:  &mockAuthenticator{},
	}
}

// acceptCaller makes the authenticator resolve every token to callerID.
func (s *testServices) acceptCaller(callerID int64) {
	s.tokens.authenticateFunc = func(_ context.Context, _ string) (*token.Claims, error) {
		return &token.Claims{UserID: callerID, Email: "caller@example.com"}, nil
	}
}

func (s *testServices) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes := Routes(Handlers{
		Users:   NewUserHandler(s.users),
		Admins:  NewAdminHandler(s.admins),
		Hostels: NewHostelHandler(s.hostels),
		Auth:    NewAuthHandler(s.auth),
	})
	Mount(r.Group("/api/v1"), routes, middleware.AuthMiddleware(s.tokens, nil))
	return r
}

func (s *testServices) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)
	return w
}

func bearer() []string {
	return []string{"Authorization", "Bearer test-token"}
}

func sampleUser(id int64) *domain.User {
	return &domain.User{
		ID:           id,
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		PasswordHash: "$2a$10$hashhashhash",
		Location:     domain.Location{City: "Pune"},
	}
}

func sampleAdmin(id int64) *domain.Admin {
	return &domain.Admin{
		ID:           id,
		FirstName:    "Vikram",
		LastName:     "Shah",
		Email:        "vikram@example.com",
		Phone:        "9123456780",
		PasswordHash: "$2a$10$hashhashhash",
		Role:         domain.RoleSuperAdmin,
	}
}

func sampleHostel(id, owner int64) *domain.Hostel {
	return &domain.Hostel{
		ID:           id,
		Name:         "Green Nest",
		Address:      "12 MG Road",
		City:         "Pune",
		State:        "MH",
		Country:      "India",
		Pincode:      "411001",
		ContactPhone: "9000000000",
		ContactEmail: "desk@greennest.example",
		Type:         domain.HostelTypePG,
		TotalRooms:   20,
		Floors:       3,
		OwnerID:      owner,
		IsActive:     true,
	}
}
