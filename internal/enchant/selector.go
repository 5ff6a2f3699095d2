package enchant

import (
	"math"
	"math/rand"

	"github.com/goldenstack/enchantd/internal/domain"
)

// Predicate decides whether an enchantment should be considered at all.
type Predicate func(d *Data) bool

// ItemPredicate decides something about a target item, e.g. whether slot
// checks should be bypassed for it.
type ItemPredicate func(item *domain.ItemStack) bool

// Discoverable includes every enchantment whose registry flags allow it to be
// found, treasure or not. This is the predicate for loot-chest style rolls.
func Discoverable(d *Data) bool {
	return d.Discoverable
}

// DiscoverableAndNotTreasure includes only non-treasure discoverable
// enchantments. This is the predicate for enchanting-table style rolls.
func DiscoverableAndNotTreasure(d *Data) bool {
	return d.Discoverable && !d.TreasureOnly
}

// AlwaysAddIfBook bypasses slot checks for books, letting them accept any
// enchantment. Callers that want the classic behavior should swap the book
// material for its enchanted form themselves after applying the result.
func AlwaysAddIfBook(item *domain.ItemStack) bool {
	return item.Material == domain.MaterialBook
}

// BonusStrategy selects how the enchantability bonus is rolled during level
// randomization. The two forms come from different dataset revisions and are
// statistically different (binomial-like vs uniform), so the choice is
// explicit rather than assumed.
type BonusStrategy int

const (
	// BonusTwoDraws adds two independent uniform draws in [0, enchantability/4].
	BonusTwoDraws BonusStrategy = iota
	// BonusSingleDraw adds one uniform draw in [0, 2*(enchantability/4)+1].
	BonusSingleDraw
)

// WeightedEnchant pairs a Data record with one concrete level. It exists only
// for the duration of one selection call; its sampling weight is the record's.
type WeightedEnchant struct {
	Data  *Data
	Level int
}

// Weight returns the candidate's sampling weight.
func (w WeightedEnchant) Weight() int {
	return w.Data.Weight
}

// pickWeighted walks the list subtracting each candidate's weight from value
// and returns the index of the first candidate where the running value goes
// negative, or -1 if the value was too large. value should be drawn uniformly
// in [0, total weight).
func pickWeighted(list []WeightedEnchant, value float64) int {
	for i, w := range list {
		value -= float64(w.Weight())
		if value < 0 {
			return i
		}
	}
	return -1
}

// WeightedEnchantments generates the candidate list for an item at the given
// level budget. For each registered enchantment, in stable catalog order:
// enchantments failing pred are skipped; enchantments whose slot doesn't
// accept the item are skipped unless forceAll accepts the item; the
// enchantment's levels are then scanned from its max level down to 1 and the
// first level whose [min, max] cost range contains the budget is emitted.
// At most one candidate is emitted per enchantment.
//
// A nil pred includes everything; a nil forceAll never bypasses slot checks.
func (m *Manager) WeightedEnchantments(item *domain.ItemStack, levels int, pred Predicate, forceAll ItemPredicate) []WeightedEnchant {
	var enchants []WeightedEnchant
	addUnconditionally := forceAll != nil && forceAll(item)
	for _, d := range m.AllData() {
		if pred != nil && !pred(d) {
			continue
		}
		if !addUnconditionally && !d.Slot(item) {
			continue
		}
		for i := d.MaxLevel; i > 0; i-- {
			if levels >= d.MinimumLevel(i) && levels <= d.MaximumLevel(i) {
				enchants = append(enchants, WeightedEnchant{Data: d, Level: i})
				break
			}
		}
	}
	return enchants
}

// RandomizeLevel derives the effective level budget from the requested one and
// the item's enchantability. The bonus roll depends on the manager's
// BonusStrategy; both forms then apply a symmetric perturbation of up to ±15%,
// round to nearest, and floor the result at 1.
func (m *Manager) RandomizeLevel(levels, enchantability int, rng *rand.Rand) int {
	switch m.bonus {
	case BonusSingleDraw:
		levels += 1 + rng.Intn((enchantability/4)*2+2)
	default:
		levels += 1 + rng.Intn(enchantability/4+1) + rng.Intn(enchantability/4+1)
	}
	multiplier := (rng.Float64() + rng.Float64() - 1) * 0.15
	levels = int(math.Round(float64(levels) * (1 + multiplier)))
	if levels < 1 {
		levels = 1
	}
	return levels
}

// SelectEnchants performs the weighted pick-and-exclude loop over a candidate
// list. One candidate is always picked (unless the list is empty, which
// consumes no draws). Each further round happens with probability
// (levels+1)/50, floored at 1/50; before every further pick the candidates
// colliding with the most recent pick are pruned, and the budget is halved.
// The returned list never contains two colliding entries.
//
// The input slice is not modified.
func SelectEnchants(candidates []WeightedEnchant, levels int, rng *rand.Rand) []WeightedEnchant {
	var picked []WeightedEnchant
	if len(candidates) == 0 {
		return picked
	}

	list := make([]WeightedEnchant, len(candidates))
	copy(list, candidates)

	total := 0.0
	for _, w := range list {
		total += float64(w.Weight())
	}

	idx := pickWeighted(list, rng.Float64()*total)
	if idx < 0 {
		return picked
	}
	picked = append(picked, list[idx])

	// The picked candidate stays in the list; the collision pruning below
	// removes it before the next pick, since an enchantment collides with
	// itself. There is always a 1/50 chance of another round, so a high
	// enough budget can stack almost everything the item accepts.
	for rng.Intn(50) <= levels {
		last := picked[len(picked)-1]
		kept := list[:0]
		for _, w := range list {
			if last.Data.CollidesWith(w.Data) {
				total -= float64(w.Weight())
				continue
			}
			kept = append(kept, w)
		}
		list = kept
		if len(list) == 0 {
			break
		}
		if idx := pickWeighted(list, rng.Float64()*total); idx >= 0 {
			picked = append(picked, list[idx])
		}
		levels /= 2
	}
	return picked
}

// EnchantsWithLevels randomizes the level budget for the item and runs the
// full candidate-generation and selection pipeline. The random source is
// supplied by the caller, so seeded generators reproduce results exactly.
func (m *Manager) EnchantsWithLevels(item *domain.ItemStack, levels int, rng *rand.Rand, pred Predicate, forceAll ItemPredicate) []WeightedEnchant {
	levels = m.RandomizeLevel(levels, m.Enchantability(item.Material), rng)
	return SelectEnchants(m.WeightedEnchantments(item, levels, pred, forceAll), levels, rng)
}

// Enchant runs EnchantsWithLevels and applies the picks to a copy of the item.
func (m *Manager) Enchant(item *domain.ItemStack, levels int, rng *rand.Rand, pred Predicate, forceAll ItemPredicate) *domain.ItemStack {
	picks := m.EnchantsWithLevels(item, levels, rng, pred, forceAll)
	enchants := make(map[domain.EnchantmentID]int, len(picks))
	for _, w := range picks {
		enchants[w.Data.ID] = w.Level
	}
	return item.WithEnchantments(enchants)
}
