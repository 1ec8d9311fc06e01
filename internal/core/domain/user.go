package domain

// Location holds the optional postal fields shared by users and admins.
type Location struct {
	CountryCode string `field:"country_code" validate:"max=5"`
	Address     string `field:"address"`
	City        string `field:"city" validate:"max=50"`
	State       string `field:"state" validate:"max=50"`
	Country     string `field:"country" validate:"max=50"`
	Pincode     string `field:"pincode" validate:"max=10"`
}

// LocationPatch carries the location fields present in an inbound payload.
type LocationPatch struct {
	CountryCode *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	Pincode     *string
}

func (p LocationPatch) apply(l *Location) {
	setString(&l.CountryCode, p.CountryCode)
	setString(&l.Address, p.Address)
	setString(&l.City, p.City)
	setString(&l.State, p.State)
	setString(&l.Country, p.Country)
	setString(&l.Pincode, p.Pincode)
}

// User is an end-consumer identity record. Email and phone are unique across users.
type User struct {
	ID           int64
	FirstName    string `field:"first_name" validate:"required,max=30"`
	LastName     string `field:"last_name" validate:"required,max=30"`
	Email        string `field:"email" validate:"required,email,max=254"`
	Phone        string `field:"phone" validate:"required,max=15"`
	PasswordHash string `field:"password" validate:"required"`
	Location
}

// Validate checks required fields and lengths before the record is written.
func (u *User) Validate() error {
	return validateRecord(u)
}

// UserPatch holds the user fields present in an inbound payload. A nil field
// leaves the stored value untouched. Password is plaintext and is never applied
// directly; the caller hashes it first.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Password  *string
	LocationPatch
}

// Apply copies the non-credential fields of p onto u.
func (p UserPatch) Apply(u *User) {
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.Email, p.Email)
	setString(&u.Phone, p.Phone)
	p.LocationPatch.apply(&u.Location)
}

// WithoutCredentials returns a copy of p that carries no password.
func (p UserPatch) WithoutCredentials() UserPatch {
	p.Password = nil
	return p
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
