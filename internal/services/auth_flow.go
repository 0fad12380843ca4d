package services

import (
	"strings"

	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
)

// Dashboard is the landing view chosen after login.
type Dashboard string

const (
	AdminDashboard    Dashboard = "admin"
	CourierDashboard  Dashboard = "courier"
	CustomerDashboard Dashboard = "customer"
)

// DashboardFor routes a logged-in user by role. A missing or unknown role
// lands on the customer dashboard.
func DashboardFor(role domain.Role) Dashboard {
	switch role {
	case domain.RoleAdmin:
		return AdminDashboard
	case domain.RoleCourier:
		return CourierDashboard
	default:
		return CustomerDashboard
	}
}

// Actions lists what each dashboard offers, in menu order.
func (d Dashboard) Actions() []string {
	switch d {
	case AdminDashboard:
		return []string{"manage users", "manage delivery boxes", "show parcels", "create parcel", "show otp logs"}
	case CourierDashboard:
		return []string{"manage parcels"}
	default:
		return []string{"track parcel", "smart box pickup"}
	}
}

// Registration is the sign-up form as entered.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// ValidateRegistration checks the form and builds the request. Every field
// must be filled and the two passwords must match.
func ValidateRegistration(r Registration) (contracts.RegisterRequest, error) {
	fields := []struct{ name, value string }{
		{"name", r.Name},
		{"email", r.Email},
		{"password", r.Password},
		{"confirmPassword", r.ConfirmPassword},
		{"role", string(r.Role)},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return contracts.RegisterRequest{}, &domain.ValidationError{Field: f.name, Message: "please fill in all fields"}
		}
	}
	if r.Password != r.ConfirmPassword {
		return contracts.RegisterRequest{}, &domain.ValidationError{Field: "confirmPassword", Message: "passwords do not match"}
	}
	if !r.Role.Valid() {
		return contracts.RegisterRequest{}, &domain.ValidationError{Field: "role", Message: "must be one of Admin, Courier, Customer"}
	}

	return contracts.RegisterRequest{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
		Role:     r.Role,
	}, nil
}
