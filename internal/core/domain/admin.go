package domain

// Role discriminates admin records.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleCoAdmin    Role = "coadmin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleCoAdmin
}

// KYC holds the identity documents of an admin. Each number is optional, and
// unique across admins when non-empty.
type KYC struct {
	AadharNumber string `field:"aadhar_number" validate:"max=12"`
	PANNumber    string `field:"pan_number" validate:"max=10"`
	GSTNumber    string `field:"gst_number" validate:"max=15"`
	FSSAINumber  string `field:"fssai_number" validate:"max=20"`
}

// Admin is an operator record.
type Admin struct {
	ID             int64
	FirstName      string `field:"first_name" validate:"required,max=30"`
	LastName       string `field:"last_name" validate:"required,max=30"`
	Email          string `field:"email" validate:"required,email,max=254"`
	Phone          string `field:"phone" validate:"required,max=15"`
	SecondaryPhone string `field:"secondary_phone" validate:"max=15"`
	DisplayName    string `field:"display_name" validate:"max=100"`
	Bio            string `field:"bio"`
	PasswordHash   string `field:"password" validate:"required"`
	Role           Role   `field:"role" validate:"required,oneof=superadmin coadmin"`
	Location
	KYC
}

// Validate checks required fields, lengths and the role before the record is written.
func (a *Admin) Validate() error {
	return validateRecord(a)
}

// NewAdmin returns an admin with the defaults applied to a fresh record.
func NewAdmin() *Admin {
	return &Admin{Role: RoleSuperAdmin}
}

// AdminPatch holds the admin fields present in an inbound payload.
type AdminPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	SecondaryPhone *string
	DisplayName    *string
	Bio            *string
	Password       *string
	Role           *string
	AadharNumber   *string
	PANNumber      *string
	GSTNumber      *string
	FSSAINumber    *string
	LocationPatch
}

// Apply copies the non-credential fields of p onto a.
func (p AdminPatch) Apply(a *Admin) {
	setString(&a.FirstName, p.FirstName)
	setString(&a.LastName, p.LastName)
	setString(&a.Email, p.Email)
	setString(&a.Phone, p.Phone)
	setString(&a.SecondaryPhone, p.SecondaryPhone)
	setString(&a.DisplayName, p.DisplayName)
	setString(&a.Bio, p.Bio)
	if p.Role != nil {
		a.Role = Role(*p.Role)
	}
	setString(&a.AadharNumber, p.AadharNumber)
	setString(&a.PANNumber, p.PANNumber)
	setString(&a.GSTNumber, p.GSTNumber)
	setString(&a.FSSAINumber, p.FSSAINumber)
	p.LocationPatch.apply(&a.Location)
}
