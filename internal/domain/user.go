package domain

// Role decides which dashboard a user lands on after login.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCourier  Role = "Courier"
	RoleCustomer Role = "Customer"
)

// Valid reports whether r is one of the roles the backend accepts at registration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCourier, RoleCustomer:
		return true
	}
	return false
}

// Represents an account known to the backend.
// The email is the identifier used by parcels (owner) and assignments (courier).
type User struct {
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
