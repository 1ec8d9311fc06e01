package domain

import (
	"fmt"
	"time"
)

// HostelType discriminates hostel records.
type HostelType string

const (
	HostelTypeHostel HostelType = "hostel"
	HostelTypePG     HostelType = "pg"
	HostelTypeHotel  HostelType = "hotel"
)

// Hostel is a managed property owned by exactly one superadmin.
type Hostel struct {
	ID            int64
	Name          string     `field:"name" validate:"required,max=100"`
	Address       string     `field:"address" validate:"required"`
	City          string     `field:"city" validate:"required,max=50"`
	State         string     `field:"state" validate:"required,max=50"`
	Country       string     `field:"country" validate:"required,max=50"`
	Pincode       string     `field:"pincode" validate:"required,max=10"`
	ContactPhone  string     `field:"contact_phone" validate:"required,max=15"`
	ContactEmail  string     `field:"contact_email" validate:"required,email,max=254"`
	Type          HostelType `field:"hostel_type" validate:"required,oneof=hostel pg hotel"`
	TotalRooms    int        `field:"total_rooms" validate:"gte=0"`
	Floors        int        `field:"floors" validate:"gte=0"`
	BusinessHours string     `field:"business_hours" validate:"max=50"`
	Description   string     `field:"description"`
	Amenities     string     `field:"amenities"`
	OwnerID       int64      `field:"owner" validate:"gt=0"`
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewHostel returns a hostel with the defaults applied to a fresh record.
func NewHostel() *Hostel {
	return &Hostel{Type: HostelTypeHostel, IsActive: true}
}

// Validate checks required fields, lengths and the type before the record is written.
func (h *Hostel) Validate() error {
	return validateRecord(h)
}

// CheckOwner enforces that the owning admin exists and is a superadmin.
// found is false when no admin has the hostel's owner id.
func (h *Hostel) CheckOwner(role Role, found bool) error {
	if !found {
		return NewValidationError("owner", fmt.Sprintf("admin %d does not exist", h.OwnerID))
	}
	if role != RoleSuperAdmin {
		return NewValidationError("owner", "owner must be an admin with role superadmin")
	}
	return nil
}

// HostelPatch holds the hostel fields present in an inbound payload.
type HostelPatch struct {
	Name          *string
	Address       *string
	City          *string
	State         *string
	Country       *string
	Pincode       *string
	ContactPhone  *string
	ContactEmail  *string
	Type          *string
	TotalRooms    *int
	Floors        *int
	BusinessHours *string
	Description   *string
	Amenities     *string
	OwnerID       *int64
	IsActive      *bool
}

// Apply copies the fields present in p onto h.
func (p HostelPatch) Apply(h *Hostel) {
	setString(&h.Name, p.Name)
	setString(&h.Address, p.Address)
	setString(&h.City, p.City)
	setString(&h.State, p.State)
	setString(&h.Country, p.Country)
	setString(&h.Pincode, p.Pincode)
	setString(&h.ContactPhone, p.ContactPhone)
	setString(&h.ContactEmail, p.ContactEmail)
	if p.Type != nil {
		h.Type = HostelType(*p.Type)
	}
	if p.TotalRooms != nil {
		h.TotalRooms = *p.TotalRooms
	}
	if p.Floors != nil {
		h.Floors = *p.Floors
	}
	setString(&h.BusinessHours, p.BusinessHours)
	setString(&h.Description, p.Description)
	setString(&h.Amenities, p.Amenities)
	if p.OwnerID != nil {
		h.OwnerID = *p.OwnerID
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
}
