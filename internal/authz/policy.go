// Package authz is the single source of truth for role capability checks.
//
// The portal's role model is a strict hierarchy:
//
//	admin > sector_admin > subsector_admin > user
//
// Every handler goes through this package instead of comparing role strings
// inline, so a capability change happens in exactly one place.
package authz

// Role is a portal role string as carried in JWT claims and the users table.
type Role string

// Portal roles, strongest first.
const (
	RoleAdmin          Role = "admin"
	RoleSectorAdmin    Role = "sector_admin"
	RoleSubsectorAdmin Role = "subsector_admin"
	RoleUser           Role = "user"
)

// rank maps roles onto the hierarchy. Higher outranks lower.
var rank = map[Role]int{
	RoleAdmin:          3,
	RoleSectorAdmin:    2,
	RoleSubsectorAdmin: 1,
	RoleUser:           0,
}

// Valid reports whether r is a known portal role.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast reports whether r outranks or equals other in the hierarchy.
// Unknown roles never satisfy any requirement (fail closed).
func (r Role) AtLeast(other Role) bool {
	ra, ok := rank[r]
	if !ok {
		return false
	}
	rb, ok := rank[other]
	if !ok {
		return false
	}
	return ra >= rb
}

// Actor is the authenticated caller as seen by capability checks: the role
// plus the organizational scope the role applies to.
type Actor struct {
	UserID      string
	Role        Role
	SectorID    string
	SubsectorID string
}

// CanSend reports whether the actor may broadcast notifications at all.
// Plain users cannot send.
func CanSend(a Actor) bool {
	return a.Role.AtLeast(RoleSubsectorAdmin)
}

// CanManageGroups reports whether the actor may create notification groups.
// The tier matches the send capability.
func CanManageGroups(a Actor) bool {
	return a.Role.AtLeast(RoleSubsectorAdmin)
}

// CanApproveUsers reports whether the actor may approve sign-up requests.
func CanApproveUsers(a Actor) bool {
	return a.Role == RoleAdmin
}

// CanTargetScope reports whether the actor may address the given
// sector/subsector scope with a broadcast or group.
//
//   - admin: any scope, including the global (empty) one.
//   - sector_admin: only their own sector, any subsector inside it.
//   - subsector_admin: only their own subsector within their own sector.
//   - user: nothing.
//
// An empty sectorID and subsectorID means a global (unscoped) target, which
// only admins may address.
func CanTargetScope(a Actor, sectorID, subsectorID string) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleSectorAdmin:
		if sectorID == "" {
			return false
		}
		return sectorID == a.SectorID
	case RoleSubsectorAdmin:
		if sectorID == "" || subsectorID == "" {
			return false
		}
		return sectorID == a.SectorID && subsectorID == a.SubsectorID
	default:
		return false
	}
}
