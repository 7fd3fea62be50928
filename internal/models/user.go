package models

import "time"

type UserRole string

const (
	RoleSupervisor UserRole = "supervisor"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "superadmin"
)

// CanEditCompleted reports whether the role may still edit a completed trip.
// Supervisors are locked out once the trip is finalized.
func (r UserRole) CanEditCompleted() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	Phone        string   `gorm:"size:30"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
