package models

type UserRole string
type JobStatus string

const (
	UserRoleClient       UserRole = "Client"
	UserRoleProfessional UserRole = "Professional"

	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
)

// ValidRole reports whether role is one of the two account types.
func ValidRole(role UserRole) bool {
	return role == UserRoleClient || role == UserRoleProfessional
}
