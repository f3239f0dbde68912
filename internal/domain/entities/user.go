package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a back-office role
type UserRole string

const (
	RoleCustomer     UserRole = "CUSTOMER"
	RoleSalesManager UserRole = "SALES_MANAGER"
	RoleLoanAdmin    UserRole = "LOAN_ADMIN"
	RoleCoordinator  UserRole = "COORDINATOR"
	RoleConnector    UserRole = "CONNECTOR"
)

// ValidRole reports whether r is one of the defined back-office roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleSalesManager, RoleLoanAdmin, RoleCoordinator, RoleConnector:
		return true
	}
	return false
}

// User represents a back-office user or customer
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
