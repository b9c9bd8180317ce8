// internal/domain/models/admin.go
package models

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin is the identity record of a signed-in administrator. It is the
// value serialized into the persisted admin session slot.
type Admin struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LastLogin string `json:"lastLogin"` // RFC 3339
}
