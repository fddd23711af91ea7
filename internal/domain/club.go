package domain

import "time"

// Club is the tenant: every ledger row is partitioned by its ID.
type Club struct {
	ID        string
	Name      string
	Subdomain string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Role is the authorization level of a principal within a club.
type Role string

const (
	RoleMember    Role = "member"
	RoleTreasurer Role = "treasurer"
	RoleAdmin     Role = "admin"
)

var roleLevels = map[Role]int{
	RoleMember:    1,
	RoleTreasurer: 2,
	RoleAdmin:     3,
}

// Valid reports whether the role is a known one.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether the role grants at least the given level.
func (r Role) AtLeast(min Role) bool {
	return roleLevels[r] >= roleLevels[min]
}

// Principal is the pre-authenticated caller identity supplied by the auth
// collaborator. The ledger core does not authenticate; it only authorizes.
type Principal struct {
	UserID string
	ClubID string
	Role   Role
}

// CanOperateTreasury reports whether the principal may run balance-affecting
// operations.
func (p Principal) CanOperateTreasury() bool {
	return p.Role.AtLeast(RoleTreasurer)
}
