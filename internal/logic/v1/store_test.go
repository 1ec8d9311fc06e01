package v1

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

// =============================================================================
// In-memory store enforcing the same constraints as schema.sql
// =============================================================================

type memStore struct {
	mu      sync.Mutex
	nextID  int64
	users   map[int64]domain.User
	admins  map[int64]domain.Admin
	hostels map[int64]domain.Hostel
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[int64]domain.User{},
		admins:  map[int64]domain.Admin{},
		hostels: map[int64]domain.Hostel{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("get %s %d: %w", entity, id, domain.ErrNotFound)
}

// --- users ---

func (s *memStore) userConflict(u *domain.User) error {
	for _, other := range s.users {
		if other.ID == u.ID {
			continue
		}
		if other.Email == u.Email {
			return &domain.ConstraintViolation{Entity: "user", Field: "email"}
		}
		if other.Phone == u.Phone {
			return &domain.ConstraintViolation{Entity: "user", Field: "phone"}
		}
	}
	return nil
}

func (s *memStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.User{}
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (s *memStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", domain.ErrNotFound)
}

func (s *memStore) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.userConflict(u); err != nil {
		return err
	}
	u.ID = s.id()
	s.users[u.ID] = *u
	return nil
}

func (s *memStore) UpdateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return notFound("user", u.ID)
	}
	if err := s.userConflict(u); err != nil {
		return err
	}
	s.users[u.ID] = *u
	return nil
}

func (s *memStore) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return notFound("user", id)
	}
	delete(s.users, id)
	return nil
}

// --- admins ---

func (s *memStore) adminConflict(a *domain.Admin) error {
	for _, other := range s.admins {
		if other.ID == a.ID {
			continue
		}
		checks := []struct {
			field    string
			mine     string
			theirs   string
			optional bool
		}{
			{"email", a.Email, other.Email, false},
			{"phone", a.Phone, other.Phone, false},
			{"aadhar_number", a.AadharNumber, other.AadharNumber, true},
			{"pan_number", a.PANNumber, other.PANNumber, true},
			{"gst_number", a.GSTNumber, other.GSTNumber, true},
			{"fssai_number", a.FSSAINumber, other.FSSAINumber, true},
		}
		for _, c := range checks {
			if c.optional && c.mine == "" {
				continue
			}
			if c.mine == c.theirs {
				return &domain.ConstraintViolation{Entity: "admin", Field: c.field}
			}
		}
	}
	return nil
}

func (s *memStore) ownedBy(id int64) int64 {
	var n int64
	for _, h := range s.hostels {
		if h.OwnerID == id {
			n++
		}
	}
	return n
}

func (s *memStore) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Admin{}
	for _, a := range s.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[id]
	if !ok {
		return nil, notFound("admin", id)
	}
	return &a, nil
}

func (s *memStore) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.adminConflict(a); err != nil {
		return err
	}
	a.ID = s.id()
	s.admins[a.ID] = *a
	return nil
}

func (s *memStore) UpdateAdmin(ctx context.Context, a *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.admins[a.ID]
	if !ok {
		return notFound("admin", a.ID)
	}
	if current.Role == domain.RoleSuperAdmin && a.Role != domain.RoleSuperAdmin && s.ownedBy(a.ID) > 0 {
		return domain.NewValidationError("role", "admin still owns hostels")
	}
	if err := s.adminConflict(a); err != nil {
		return err
	}
	s.admins[a.ID] = *a
	return nil
}

func (s *memStore) DeleteAdmin(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[id]; !ok {
		return 0, notFound("admin", id)
	}
	var removed int64
	for hid, h := range s.hostels {
		if h.OwnerID == id {
			delete(s.hostels, hid)
			removed++
		}
	}
	delete(s.admins, id)
	return removed, nil
}

// --- hostels ---

func (s *memStore) checkOwner(h *domain.Hostel) error {
	owner, found := s.admins[h.OwnerID]
	return h.CheckOwner(owner.Role, found)
}

func (s *memStore) ListHostels(ctx context.Context) ([]domain.Hostel, error) {
	return s.listHostels(func(domain.Hostel) bool { return true }), nil
}

func (s *memStore) ListHostelsByOwner(ctx context.Context, ownerID int64) ([]domain.Hostel, error) {
	return s.listHostels(func(h domain.Hostel) bool { return h.OwnerID == ownerID }), nil
}

func (s *memStore) listHostels(keep func(domain.Hostel) bool) []domain.Hostel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Hostel{}
	for _, h := range s.hostels {
		if keep(h) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) GetHostel(ctx context.Context, id int64) (*domain.Hostel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hostels[id]
	if !ok {
		return nil, notFound("hostel", id)
	}
	return &h, nil
}

func (s *memStore) CreateHostel(ctx context.Context, h *domain.Hostel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOwner(h); err != nil {
		return err
	}
	h.ID = s.id()
	s.hostels[h.ID] = *h
	return nil
}

func (s *memStore) UpdateHostel(ctx context.Context, h *domain.Hostel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hostels[h.ID]; !ok {
		return notFound("hostel", h.ID)
	}
	if err := s.checkOwner(h); err != nil {
		return err
	}
	s.hostels[h.ID] = *h
	return nil
}

func (s *memStore) DeleteHostel(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hostels[id]; !ok {
		return notFound("hostel", id)
	}
	delete(s.hostels, id)
	return nil
}

// =============================================================================
// Counting hasher
// =============================================================================

type countingHasher struct {
	calls int
}

func (h *countingHasher) Hash(plain string) (string, error) {
	h.calls++
	return "hashed:" + plain + fmt.Sprintf(":%d", h.calls), nil
}

func (h *countingHasher) Verify(hash, plain string) bool {
	return strings.HasPrefix(hash, "hashed:"+plain+":")
}

func ptr[T any](v T) *T {
	return &v
}
