package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Renter is the authenticated caller on whose behalf rentals are made.
type Renter struct {
	ID   int
	Role Role
}

func (r Renter) IsAdmin() bool {
	return r.Role == RoleAdmin
}
