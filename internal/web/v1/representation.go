package v1

import (
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

var (
	userRequired   = []string{"first_name", "last_name", "email", "phone"}
	adminRequired  = []string{"first_name", "last_name", "email", "phone"}
	hostelRequired = []string{
		"name", "address", "city", "state", "country", "pincode",
		"contact_phone", "contact_email", "total_rooms", "floors", "owner",
	}
)

// =============================================================================
// User
// =============================================================================

// UserProfile is the outbound representation of a user. It never carries
// credentials.
type UserProfile struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Pincode     string `json:"pincode"`
}

func toUserProfile(u *domain.User) UserProfile {
	return UserProfile{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		CountryCode: u.CountryCode,
		Address:     u.Address,
		City:        u.City,
		State:       u.State,
		Country:     u.Country,
		Pincode:     u.Pincode,
	}
}

func toUserProfiles(users []domain.User) []UserProfile {
	out := make([]UserProfile, 0, len(users))
	for i := range users {
		out = append(out, toUserProfile(&users[i]))
	}
	return out
}

func decodeLocation(p *payload) domain.LocationPatch {
	return domain.LocationPatch{
		CountryCode: p.str("country_code"),
		Address:     p.str("address"),
		City:        p.str("city"),
		State:       p.str("state"),
		Country:     p.str("country"),
		Pincode:     p.str("pincode"),
	}
}

// decodeUser reads the user input representation. The write-only password is
// read only when withPassword is set.
func decodeUser(p *payload, withPassword bool) domain.UserPatch {
	in := domain.UserPatch{
		FirstName:     p.str("first_name"),
		LastName:      p.str("last_name"),
		Email:         p.str("email"),
		Phone:         p.str("phone"),
		LocationPatch: decodeLocation(p),
	}
	if withPassword {
		in.Password = p.str("password")
	}
	return in
}

// =============================================================================
// Admin
// =============================================================================

// AdminResponse is the outbound representation of an admin
type AdminResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondary_phone"`
	DisplayName    string `json:"display_name"`
	Bio            string `json:"bio"`
	Role           string `json:"role"`
	CountryCode    string `json:"country_code"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Pincode        string `json:"pincode"`
	AadharNumber   string `json:"aadhar_number"`
	PANNumber      string `json:"pan_number"`
	GSTNumber      string `json:"gst_number"`
	FSSAINumber    string `json:"fssai_number"`
}

func toAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
		SecondaryPhone: a.SecondaryPhone,
		DisplayName:    a.DisplayName,
		Bio:            a.Bio,
		Role:           string(a.Role),
		CountryCode:    a.CountryCode,
		Address:        a.Address,
		City:           a.City,
		State:          a.State,
		Country:        a.Country,
		Pincode:        a.Pincode,
		AadharNumber:   a.AadharNumber,
		PANNumber:      a.PANNumber,
		GSTNumber:      a.GSTNumber,
		FSSAINumber:    a.FSSAINumber,
	}
}

func toAdminResponses(admins []domain.Admin) []AdminResponse {
	out := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, toAdminResponse(&admins[i]))
	}
	return out
}

func decodeAdmin(p *payload) domain.AdminPatch {
	return domain.AdminPatch{
		FirstName:      p.str("first_name"),
		LastName:       p.str("last_name"),
		Email:          p.str("email"),
		Phone:          p.str("phone"),
		SecondaryPhone: p.str("secondary_phone"),
		DisplayName:    p.str("display_name"),
		Bio:            p.str("bio"),
		Password:       p.str("password"),
		Role:           p.str("role"),
		AadharNumber:   p.str("aadhar_number"),
		PANNumber:      p.str("pan_number"),
		GSTNumber:      p.str("gst_number"),
		FSSAINumber:    p.str("fssai_number"),
		LocationPatch:  decodeLocation(p),
	}
}

// =============================================================================
// Hostel
// =============================================================================

// HostelResponse is the outbound representation of a hostel. Owner is the
// owning admin's id.
type HostelResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	Pincode       string    `json:"pincode"`
	ContactPhone  string    `json:"contact_phone"`
	ContactEmail  string    `json:"contact_email"`
	HostelType    string    `json:"hostel_type"`
	TotalRooms    int       `json:"total_rooms"`
	Floors        int       `json:"floors"`
	BusinessHours string    `json:"business_hours"`
	Description   string    `json:"description"`
	Amenities     string    `json:"amenities"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	IsActive      bool      `json:"is_active"`
	Owner         int64     `json:"owner"`
}

func toHostelResponse(h *domain.Hostel) HostelResponse {
	return HostelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Address:       h.Address,
		City:          h.City,
		State:         h.State,
		Country:       h.Country,
		Pincode:       h.Pincode,
		ContactPhone:  h.ContactPhone,
		ContactEmail:  h.ContactEmail,
		HostelType:    string(h.Type),
		TotalRooms:    h.TotalRooms,
		Floors:        h.Floors,
		BusinessHours: h.BusinessHours,
		Description:   h.Description,
		Amenities:     h.Amenities,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
		IsActive:      h.IsActive,
		Owner:         h.OwnerID,
	}
}

func toHostelResponses(hostels []domain.Hostel) []HostelResponse {
	out := make([]HostelResponse, 0, len(hostels))
	for i := range hostels {
		out = append(out, toHostelResponse(&hostels[i]))
	}
	return out
}

func decodeHostel(p *payload) domain.HostelPatch {
	return domain.HostelPatch{
		Name:          p.str("name"),
		Address:       p.str("address"),
		City:          p.str("city"),
		State:         p.str("state"),
		Country:       p.str("country"),
		Pincode:       p.str("pincode"),
		ContactPhone:  p.str("contact_phone"),
		ContactEmail:  p.str("contact_email"),
		Type:          p.str("hostel_type"),
		TotalRooms:    p.integer("total_rooms"),
		Floors:        p.integer("floors"),
		BusinessHours: p.str("business_hours"),
		Description:   p.str("description"),
		Amenities:     p.str("amenities"),
		OwnerID:       p.int64("owner"),
		IsActive:      p.boolean("is_active"),
	}
}
