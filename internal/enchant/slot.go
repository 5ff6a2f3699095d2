package enchant

import "github.com/goldenstack/enchantd/internal/domain"

// SlotType classifies whether an item qualifies for an enchantment's slot.
// Predicates are pure functions over static material registry metadata.
type SlotType func(item *domain.ItemStack) bool

// Armor matches any armor piece.
func Armor(item *domain.ItemStack) bool {
	return domain.MaterialRegistry(item.Material).Armor
}

// ArmorHelmet matches materials worn in the helmet slot.
func ArmorHelmet(item *domain.ItemStack) bool {
	return domain.MaterialRegistry(item.Material).EquipmentSlot == domain.SlotHelmet
}

// ArmorChestplate matches materials worn in the chestplate slot.
func ArmorChestplate(item *domain.ItemStack) bool {
	return domain.MaterialRegistry(item.Material).EquipmentSlot == domain.SlotChestplate
}

// ArmorLeggings matches materials worn in the leggings slot.
func ArmorLeggings(item *domain.ItemStack) bool {
	return domain.MaterialRegistry(item.Material).EquipmentSlot == domain.SlotLeggings
}

// ArmorFeet matches materials worn in the boots slot.
func ArmorFeet(item *domain.ItemStack) bool {
	return domain.MaterialRegistry(item.Material).EquipmentSlot == domain.SlotBoots
}

// Weapon matches swords.
func Weapon(item *domain.ItemStack) bool {
	switch item.Material {
	case domain.MaterialWoodenSword, domain.MaterialStoneSword, domain.MaterialIronSword,
		domain.MaterialGoldenSword, domain.MaterialDiamondSword, domain.MaterialNetheriteSword:
		return true
	}
	return false
}

// Tool matches mining tools (pickaxe, axe, shovel, hoe).
func Tool(item *domain.ItemStack) bool {
	switch item.Material {
	case domain.MaterialWoodenPickaxe, domain.MaterialWoodenAxe, domain.MaterialWoodenShovel, domain.MaterialWoodenHoe,
		domain.MaterialStonePickaxe, domain.MaterialStoneAxe, domain.MaterialStoneShovel, domain.MaterialStoneHoe,
		domain.MaterialIronPickaxe, domain.MaterialIronAxe, domain.MaterialIronShovel, domain.MaterialIronHoe,
		domain.MaterialGoldenPickaxe, domain.MaterialGoldenAxe, domain.MaterialGoldenShovel, domain.MaterialGoldenHoe,
		domain.MaterialDiamondPickaxe, domain.MaterialDiamondAxe, domain.MaterialDiamondShovel, domain.MaterialDiamondHoe,
		domain.MaterialNetheritePickaxe, domain.MaterialNetheriteAxe, domain.MaterialNetheriteShovel, domain.MaterialNetheriteHoe:
		return true
	}
	return false
}

// FishingRod matches fishing rods.
func FishingRod(item *domain.ItemStack) bool {
	return item.Material == domain.MaterialFishingRod
}

// Trident matches tridents.
func Trident(item *domain.ItemStack) bool {
	return item.Material == domain.MaterialTrident
}

// Bow matches bows.
func Bow(item *domain.ItemStack) bool {
	return item.Material == domain.MaterialBow
}

// Crossbow matches crossbows.
func Crossbow(item *domain.ItemStack) bool {
	return item.Material == domain.MaterialCrossbow
}

// Wearable matches armor plus the handful of non-armor materials that can be
// worn (carved pumpkins, elytra, mob heads).
func Wearable(item *domain.ItemStack) bool {
	if domain.MaterialRegistry(item.Material).Armor {
		return true
	}
	switch item.Material {
	case domain.MaterialCarvedPumpkin, domain.MaterialElytra,
		domain.MaterialPlayerHead, domain.MaterialZombieHead, domain.MaterialSkeletonSkull,
		domain.MaterialWitherSkeletonSkull, domain.MaterialCreeperHead, domain.MaterialDragonHead:
		return true
	}
	return false
}

// Breakable matches materials with durability.
func Breakable(item *domain.ItemStack) bool {
	return domain.MaterialRegistry(item.Material).MaxDamage != 0
}

// All matches anything breakable or wearable.
func All(item *domain.ItemStack) bool {
	return Breakable(item) || Wearable(item)
}
