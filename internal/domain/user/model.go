package user

import "strings"

// Role is the account role assigned by the auth service.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleConsumer Role = "consumer"
)

// Permission names one guarded operation on the API surface. Handlers
// declare the permission they need instead of listing accepted roles.
type Permission string

const (
	PermMatchesWrite     Permission = "matches:write"
	PermMatchesDelete    Permission = "matches:delete"
	PermNewsWrite        Permission = "news:write"
	PermNewsDelete       Permission = "news:delete"
	PermPlayersWrite     Permission = "players:write"
	PermPlayersDelete    Permission = "players:delete"
	PermSponsorsWrite    Permission = "sponsors:write"
	PermSponsorsDelete   Permission = "sponsors:delete"
	PermNewsletterManage Permission = "newsletter:manage"
)

var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: {
		PermMatchesWrite:     {},
		PermMatchesDelete:    {},
		PermNewsWrite:        {},
		PermNewsDelete:       {},
		PermPlayersWrite:     {},
		PermPlayersDelete:    {},
		PermSponsorsWrite:    {},
		PermSponsorsDelete:   {},
		PermNewsletterManage: {},
	},
	RoleEditor: {
		PermMatchesWrite: {},
		PermNewsWrite:    {},
		PermPlayersWrite: {},
		PermSponsorsWrite: {},
	},
	RoleConsumer: {},
}

// Allows reports whether the role grants the permission.
func (r Role) Allows(p Permission) bool {
	perms, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = perms[p]
	return ok
}

// ParseRole maps a raw role string onto the known set; unknown values
// degrade to consumer.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleEditor:
		return RoleEditor
	default:
		return RoleConsumer
	}
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID   string
	Username string
	Role     Role
	Active   bool
}
