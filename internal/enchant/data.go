package enchant

import "github.com/goldenstack/enchantd/internal/domain"

// Data describes one enchantment: its identity, sampling weight, slot
// classifier, cost bounds and conflict set. Instances are treated as immutable
// once registered in a Manager; different Managers can carry completely
// different Data for the same identity.
type Data struct {
	ID       domain.EnchantmentID
	Weight   int
	MaxLevel int // highest level the enchantment itself supports

	// Registry flags consumed by the stock include predicates.
	TreasureOnly bool
	Discoverable bool

	Slot             SlotType
	MinCost, MaxCost LevelFunc

	// Enchantments this one conflicts with. Conflict is symmetric in effect
	// but stored one-sided; see CollidesWith.
	Incompatible []domain.EnchantmentID
}

// MinimumLevel evaluates the record's minimum cost bound at the given level.
func (d *Data) MinimumLevel(level int) int {
	return d.MinCost(d, level)
}

// MaximumLevel evaluates the record's maximum cost bound at the given level.
func (d *Data) MaximumLevel(level int) int {
	return d.MaxCost(d, level)
}

// CollidesWith reports whether this enchantment conflicts with other. Two
// records conflict when their IDs are equal, or when either one lists the
// other's ID as incompatible. An enchantment always collides with itself,
// which is what prevents re-selection during the pick loop.
func (d *Data) CollidesWith(other *Data) bool {
	if d.ID == other.ID {
		return true
	}
	for _, id := range d.Incompatible {
		if id == other.ID {
			return true
		}
	}
	for _, id := range other.Incompatible {
		if id == d.ID {
			return true
		}
	}
	return false
}
