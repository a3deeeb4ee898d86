package domain

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleRentalAgent Role = "rental_agent"
	RoleMechanic    Role = "mechanic"
)

// IsManager reports whether the role carries managerial privileges
func (r Role) IsManager() bool {
	return r == RoleAdmin || r == RoleManager
}

// IsStaff reports whether the role is front-line staff
func (r Role) IsStaff() bool {
	return r == RoleRentalAgent || r == RoleMechanic
}

// CanManageFleet reports whether the role may mutate car records
func (r Role) CanManageFleet() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMechanic
}

type Employee struct {
	ID           string    `json:"id"`
	BranchID     *string   `json:"branch_id,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
