package domain

import (
	"errors"
	"strings"
	"testing"
)

func validUser() *User {
	return &User{
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		PasswordHash: "$2a$10$hash",
	}
}

func validHostel() *Hostel {
	h := NewHostel()
	h.Name = "Sunrise"
	h.Address = "12 MG Road"
	h.City = "Pune"
	h.State = "MH"
	h.Country = "India"
	h.Pincode = "411001"
	h.ContactPhone = "020123456"
	h.ContactEmail = "desk@sunrise.example"
	h.TotalRooms = 40
	h.Floors = 4
	h.OwnerID = 7
	return h
}

// =============================================================================
// User
// =============================================================================

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(u *User)
		wantFields []string
	}{
		{name: "valid", mutate: func(u *User) {}},
		{name: "missing names", mutate: func(u *User) { u.FirstName, u.LastName = "", "" }, wantFields: []string{"first_name", "last_name"}},
		{name: "bad email", mutate: func(u *User) { u.Email = "not-an-email" }, wantFields: []string{"email"}},
		{name: "phone too long", mutate: func(u *User) { u.Phone = strings.Repeat("9", 16) }, wantFields: []string{"phone"}},
		{name: "pincode too long", mutate: func(u *User) { u.Pincode = strings.Repeat("1", 11) }, wantFields: []string{"pincode"}},
		{name: "no password hash", mutate: func(u *User) { u.PasswordHash = "" }, wantFields: []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			err := u.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("got fields %v, want %v", verr.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("expected field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestUserPatchApply_LeavesPasswordHash(t *testing.T) {
	u := validUser()
	plain := "new-secret"
	city := "Goa"
	UserPatch{Password: &plain, LocationPatch: LocationPatch{City: &city}}.Apply(u)

	if u.PasswordHash != "$2a$10$hash" {
		t.Errorf("PasswordHash = %q, Apply must not touch credentials", u.PasswordHash)
	}
	if u.City != "Goa" {
		t.Errorf("City = %q, want Goa", u.City)
	}
}

func TestUserPatchWithoutCredentials(t *testing.T) {
	plain := "secret"
	p := UserPatch{Password: &plain}.WithoutCredentials()
	if p.Password != nil {
		t.Error("expected password to be dropped")
	}
}

// =============================================================================
// Admin
// =============================================================================

func TestAdminValidate(t *testing.T) {
	a := NewAdmin()
	a.FirstName, a.LastName = "Ravi", "K"
	a.Email, a.Phone = "ravi@example.com", "9000000000"
	a.PasswordHash = "$2a$10$hash"

	if err := a.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	a.Role = "owner"
	a.PANNumber = strings.Repeat("A", 11)
	err := a.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["role"]; !ok {
		t.Errorf("expected role error, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["pan_number"]; !ok {
		t.Errorf("expected pan_number error, got %v", verr.Fields)
	}
}

func TestNewAdminDefaultsToSuperAdmin(t *testing.T) {
	if got := NewAdmin().Role; got != RoleSuperAdmin {
		t.Errorf("Role = %q, want %q", got, RoleSuperAdmin)
	}
}

// =============================================================================
// Hostel
// =============================================================================

func TestHostelValidate(t *testing.T) {
	h := validHostel()
	if err := h.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	h.Type = "villa"
	h.City = ""
	h.Floors = -1
	err := h.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	for _, f := range []string{"hostel_type", "city", "floors"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("expected field %q in %v", f, verr.Fields)
		}
	}
}

func TestHostelCheckOwner(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		found   bool
		wantErr bool
	}{
		{name: "superadmin owner", role: RoleSuperAdmin, found: true, wantErr: false},
		{name: "coadmin owner", role: RoleCoAdmin, found: true, wantErr: true},
		{name: "missing owner", found: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validHostel().CheckOwner(tt.role, tt.found)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckOwner() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Fields["owner"] == "" {
				t.Errorf("expected owner validation error, got %v", err)
			}
		})
	}
}

func TestNewHostelDefaults(t *testing.T) {
	h := NewHostel()
	if !h.IsActive {
		t.Error("new hostels must be active")
	}
	if h.Type != HostelTypeHostel {
		t.Errorf("Type = %q, want %q", h.Type, HostelTypeHostel)
	}
}

// =============================================================================
// Errors
// =============================================================================

func TestValidationErrorMessageIsSorted(t *testing.T) {
	verr := &ValidationError{}
	verr.Add("phone", "this field is required")
	verr.Add("email", "enter a valid email address")
	verr.Add("email", "ignored second reason")

	want := "validation failed: email: enter a valid email address; phone: this field is required"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrorOrNil(t *testing.T) {
	var verr ValidationError
	if verr.OrNil() != nil {
		t.Error("empty ValidationError should collapse to nil")
	}
}
