package domain

// Role is the marketplace role carried in the caller's token.
type Role string

// RoleAdmin may act on any order.
const RoleAdmin Role = "admin"

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller is an administrator.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

// HasStanding reports whether the caller may act on the order.
func (c Caller) HasStanding(o *Order) bool {
	return c.IsAdmin() || o.Involves(c.UserID)
}
