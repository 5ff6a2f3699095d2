package enchant

import "github.com/goldenstack/enchantd/internal/domain"

// DefaultData returns the shared default enchantment dataset. The map is
// process-wide and read-only; callers must not modify it. Managers built with
// UseDefaultData observe it directly until their own table is written to.
func DefaultData() map[domain.EnchantmentID]*Data {
	return defaultData
}

// DefaultEnchantability returns the shared default material enchantability
// table. Read-only, same rules as DefaultData.
func DefaultEnchantability() map[domain.Material]int {
	return defaultEnchantability
}

func def(id domain.EnchantmentID, weight, maxLevel int, slot SlotType, min, max LevelFunc, incompatible ...domain.EnchantmentID) *Data {
	return &Data{
		ID:           id,
		Weight:       weight,
		MaxLevel:     maxLevel,
		Discoverable: true,
		Slot:         slot,
		MinCost:      min,
		MaxCost:      max,
		Incompatible: incompatible,
	}
}

func treasure(d *Data) *Data {
	d.TreasureOnly = true
	return d
}

func undiscoverable(d *Data) *Data {
	d.Discoverable = false
	return d
}

var defaultData = map[domain.EnchantmentID]*Data{
	domain.EnchantProtection:           def(domain.EnchantProtection, 10, 4, Armor, Adjusted(1, 11), AddToMin(11), domain.EnchantBlastProtection, domain.EnchantFireProtection, domain.EnchantProjectileProtection),
	domain.EnchantFireProtection:       def(domain.EnchantFireProtection, 5, 4, Armor, Adjusted(10, 8), AddToMin(8), domain.EnchantProtection, domain.EnchantBlastProtection, domain.EnchantProjectileProtection),
	domain.EnchantBlastProtection:      def(domain.EnchantBlastProtection, 2, 4, Armor, Adjusted(5, 8), AddToMin(8), domain.EnchantProtection, domain.EnchantFireProtection, domain.EnchantProjectileProtection),
	domain.EnchantProjectileProtection: def(domain.EnchantProjectileProtection, 5, 4, Armor, Adjusted(3, 6), AddToMin(6), domain.EnchantProtection, domain.EnchantBlastProtection, domain.EnchantFireProtection),
	domain.EnchantFeatherFalling:       def(domain.EnchantFeatherFalling, 5, 4, ArmorFeet, Adjusted(5, 6), AddToMin(6)),
	domain.EnchantRespiration:          def(domain.EnchantRespiration, 2, 3, ArmorHelmet, Multiply(10), AddToMin(30)),
	domain.EnchantAquaAffinity:         def(domain.EnchantAquaAffinity, 2, 1, ArmorHelmet, Multiply(1), AddToMin(40)),
	domain.EnchantThorns:               def(domain.EnchantThorns, 1, 3, Armor, Adjusted(10, 20), AddToDefault(50)),
	domain.EnchantDepthStrider:         def(domain.EnchantDepthStrider, 2, 3, ArmorFeet, Multiply(10), AddToMin(15), domain.EnchantFrostWalker),
	domain.EnchantFrostWalker:          treasure(def(domain.EnchantFrostWalker, 2, 2, ArmorFeet, Multiply(10), AddToMin(15), domain.EnchantDepthStrider)),
	domain.EnchantBindingCurse:         treasure(def(domain.EnchantBindingCurse, 1, 1, Armor, Multiply(25), Constant(50))),
	domain.EnchantSoulSpeed:            undiscoverable(treasure(def(domain.EnchantSoulSpeed, 1, 3, ArmorFeet, Multiply(10), AddToMin(15)))),

	domain.EnchantSharpness:        def(domain.EnchantSharpness, 10, 5, Weapon, Adjusted(1, 11), AddToMin(20), domain.EnchantSmite, domain.EnchantBaneOfArthropods),
	domain.EnchantSmite:            def(domain.EnchantSmite, 5, 5, Weapon, Adjusted(5, 8), AddToMin(20), domain.EnchantSharpness, domain.EnchantBaneOfArthropods),
	domain.EnchantBaneOfArthropods: def(domain.EnchantBaneOfArthropods, 5, 5, Weapon, Adjusted(5, 8), AddToMin(20), domain.EnchantSharpness, domain.EnchantSmite),
	domain.EnchantKnockback:        def(domain.EnchantKnockback, 5, 2, Weapon, Adjusted(5, 20), AddToDefault(50)),
	domain.EnchantFireAspect:       def(domain.EnchantFireAspect, 2, 2, Weapon, Adjusted(10, 20), AddToDefault(50)),
	domain.EnchantLooting:          def(domain.EnchantLooting, 2, 3, Weapon, Adjusted(15, 9), AddToDefault(50)),
	domain.EnchantSweeping:         def(domain.EnchantSweeping, 2, 3, Weapon, Adjusted(5, 9), AddToMin(15)),

	domain.EnchantEfficiency: def(domain.EnchantEfficiency, 10, 5, Tool, Adjusted(1, 10), AddToDefault(50)),
	domain.EnchantSilkTouch:  def(domain.EnchantSilkTouch, 1, 1, Tool, Multiply(15), AddToDefault(50), domain.EnchantFortune),
	domain.EnchantFortune:    def(domain.EnchantFortune, 2, 3, Tool, Adjusted(15, 9), AddToDefault(50), domain.EnchantSilkTouch),
	domain.EnchantUnbreaking: def(domain.EnchantUnbreaking, 5, 3, Breakable, Adjusted(5, 8), AddToDefault(50)),
	domain.EnchantMending:    treasure(def(domain.EnchantMending, 2, 1, Breakable, Multiply(25), AddToMin(50))),

	domain.EnchantPower:    def(domain.EnchantPower, 10, 5, Bow, Adjusted(1, 10), AddToMin(15)),
	domain.EnchantPunch:    def(domain.EnchantPunch, 2, 2, Bow, Adjusted(12, 20), AddToMin(25)),
	domain.EnchantFlame:    def(domain.EnchantFlame, 2, 1, Bow, Multiply(20), Constant(50)),
	domain.EnchantInfinity: def(domain.EnchantInfinity, 1, 1, Bow, Multiply(20), Constant(50), domain.EnchantMending),

	domain.EnchantLuckOfTheSea: def(domain.EnchantLuckOfTheSea, 2, 3, FishingRod, Adjusted(15, 9), AddToDefault(50)),
	domain.EnchantLure:         def(domain.EnchantLure, 2, 3, FishingRod, Adjusted(15, 9), AddToDefault(50)),

	domain.EnchantLoyalty:    def(domain.EnchantLoyalty, 5, 3, Trident, Basic(5, 7), Constant(50)),
	domain.EnchantImpaling:   def(domain.EnchantImpaling, 2, 5, Trident, Adjusted(1, 8), AddToMin(20)),
	domain.EnchantRiptide:    def(domain.EnchantRiptide, 2, 3, Trident, Basic(10, 7), Constant(50), domain.EnchantLoyalty, domain.EnchantChanneling),
	domain.EnchantChanneling: def(domain.EnchantChanneling, 1, 1, Trident, Multiply(25), Constant(50)),

	domain.EnchantMultishot:   def(domain.EnchantMultishot, 2, 1, Crossbow, Multiply(20), Constant(50), domain.EnchantPiercing),
	domain.EnchantPiercing:    def(domain.EnchantPiercing, 10, 4, Crossbow, Adjusted(1, 10), Constant(50), domain.EnchantMultishot),
	domain.EnchantQuickCharge: def(domain.EnchantQuickCharge, 5, 3, Crossbow, Adjusted(12, 20), Constant(50)),

	domain.EnchantVanishingCurse: treasure(def(domain.EnchantVanishingCurse, 1, 1, All, Multiply(25), Constant(50))),
}

var defaultEnchantability = map[domain.Material]int{
	domain.MaterialTrident:    1,
	domain.MaterialBook:       1,
	domain.MaterialFishingRod: 1,
	domain.MaterialBow:        1,
	domain.MaterialCrossbow:   1,

	domain.MaterialLeatherHelmet:       15,
	domain.MaterialLeatherChestplate:   15,
	domain.MaterialLeatherLeggings:     15,
	domain.MaterialLeatherBoots:        15,
	domain.MaterialChainmailHelmet:     12,
	domain.MaterialChainmailChestplate: 12,
	domain.MaterialChainmailLeggings:   12,
	domain.MaterialChainmailBoots:      12,
	domain.MaterialIronHelmet:          9,
	domain.MaterialIronChestplate:      9,
	domain.MaterialIronLeggings:        9,
	domain.MaterialIronBoots:           9,
	domain.MaterialGoldenHelmet:        25,
	domain.MaterialGoldenChestplate:    25,
	domain.MaterialGoldenLeggings:      25,
	domain.MaterialGoldenBoots:         25,
	domain.MaterialDiamondHelmet:       10,
	domain.MaterialDiamondChestplate:   10,
	domain.MaterialDiamondLeggings:     10,
	domain.MaterialDiamondBoots:        10,
	domain.MaterialTurtleHelmet:        9,
	domain.MaterialNetheriteHelmet:     15,
	domain.MaterialNetheriteChestplate: 15,
	domain.MaterialNetheriteLeggings:   15,
	domain.MaterialNetheriteBoots:      15,

	domain.MaterialWoodenSword:      15,
	domain.MaterialWoodenPickaxe:    15,
	domain.MaterialWoodenAxe:        15,
	domain.MaterialWoodenShovel:     15,
	domain.MaterialWoodenHoe:        15,
	domain.MaterialStoneSword:       5,
	domain.MaterialStonePickaxe:     5,
	domain.MaterialStoneAxe:         5,
	domain.MaterialStoneShovel:      5,
	domain.MaterialStoneHoe:         5,
	domain.MaterialIronSword:        14,
	domain.MaterialIronPickaxe:      14,
	domain.MaterialIronAxe:          14,
	domain.MaterialIronShovel:       14,
	domain.MaterialIronHoe:          14,
	domain.MaterialGoldenSword:      22,
	domain.MaterialGoldenPickaxe:    22,
	domain.MaterialGoldenAxe:        22,
	domain.MaterialGoldenShovel:     22,
	domain.MaterialGoldenHoe:        22,
	domain.MaterialDiamondSword:     10,
	domain.MaterialDiamondPickaxe:   10,
	domain.MaterialDiamondAxe:       10,
	domain.MaterialDiamondShovel:    10,
	domain.MaterialDiamondHoe:       10,
	domain.MaterialNetheriteSword:   15,
	domain.MaterialNetheritePickaxe: 15,
	domain.MaterialNetheriteAxe:     15,
	domain.MaterialNetheriteShovel:  15,
	domain.MaterialNetheriteHoe:     15,
}
