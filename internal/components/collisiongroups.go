package components

// Group is a collision-filter bitmask. The layout follows the Rapier
// convention: a collider belongs to the groups in Memberships and is willing
// to interact with the groups in Filter.
type Group uint32

const (
	GroupNone Group = 0
	GroupAll  Group = 0xffffffff

	Group1 Group = 1 << 0
	Group2 Group = 1 << 1
	Group3 Group = 1 << 2
)

// Remove clears the given bits from the group.
func (g Group) Remove(other Group) Group {
	return g &^ other
}

// CollisionGroups pairs a membership mask with an interaction filter.
type CollisionGroups struct {
	Memberships Group
	Filter      Group
}

func NewCollisionGroups(memberships, filter Group) CollisionGroups {
	return CollisionGroups{Memberships: memberships, Filter: filter}
}

// Allows reports whether two colliders may interact. Both sides must accept:
// each collider's memberships have to intersect the other's filter.
func (c CollisionGroups) Allows(other CollisionGroups) bool {
	return c.Memberships&other.Filter != 0 && other.Memberships&c.Filter != 0
}
