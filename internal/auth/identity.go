package auth

import "splybob/internal/models"

// Identity is the resolved caller of a request: either anonymous or a known
// user. Consumers must go through User() rather than assuming a caller
// exists, so an unauthenticated request can never be mistaken for a manager.
type Identity struct {
	user *models.User
}

func Anonymous() Identity {
	return Identity{}
}

func Authenticated(user *models.User) Identity {
	return Identity{user: user}
}

// User returns the authenticated user, if any.
func (id Identity) User() (*models.User, bool) {
	return id.user, id.user != nil
}

func (id Identity) IsSupplier() bool {
	return id.user != nil && id.user.Role == models.RoleSupplier
}

// OwnerKey is the value supplier-owned documents are matched against: the
// supplier user's display name, or their email when no name is set.
func (id Identity) OwnerKey() string {
	if id.user == nil {
		return ""
	}
	if id.user.Name != "" {
		return id.user.Name
	}
	return id.user.Email
}
