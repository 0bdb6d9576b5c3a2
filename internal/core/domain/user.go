package domain

// UserRole is the application role stored on a user profile.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleRetailer UserRole = "retailer"
	RoleAgent    UserRole = "agent"
	RoleTerminal UserRole = "terminal" // Login profile attached to a single terminal
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleRetailer, RoleAgent, RoleTerminal:
		return true
	}
	return false
}

// UserProfile represents a user of the application in the domain.
type UserProfile struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	PasswordHash *string  `json:"-"`
	AuditFields
}
