package domain

// Material identifies the kind of an item (e.g. "diamond_sword").
type Material string

// EquipmentSlot is the slot a material can be equipped in, if any.
type EquipmentSlot string

const (
	SlotNone       EquipmentSlot = ""
	SlotHelmet     EquipmentSlot = "helmet"
	SlotChestplate EquipmentSlot = "chestplate"
	SlotLeggings   EquipmentSlot = "leggings"
	SlotBoots      EquipmentSlot = "boots"
	SlotMainHand   EquipmentSlot = "main_hand"
)

// Materials referenced by the default enchantment dataset
const (
	MaterialBook       Material = "book"
	MaterialBow        Material = "bow"
	MaterialCrossbow   Material = "crossbow"
	MaterialFishingRod Material = "fishing_rod"
	MaterialTrident    Material = "trident"
	MaterialElytra     Material = "elytra"

	MaterialCarvedPumpkin       Material = "carved_pumpkin"
	MaterialPlayerHead          Material = "player_head"
	MaterialZombieHead          Material = "zombie_head"
	MaterialSkeletonSkull       Material = "skeleton_skull"
	MaterialWitherSkeletonSkull Material = "wither_skeleton_skull"
	MaterialCreeperHead         Material = "creeper_head"
	MaterialDragonHead          Material = "dragon_head"

	MaterialLeatherHelmet       Material = "leather_helmet"
	MaterialLeatherChestplate   Material = "leather_chestplate"
	MaterialLeatherLeggings     Material = "leather_leggings"
	MaterialLeatherBoots        Material = "leather_boots"
	MaterialChainmailHelmet     Material = "chainmail_helmet"
	MaterialChainmailChestplate Material = "chainmail_chestplate"
	MaterialChainmailLeggings   Material = "chainmail_leggings"
	MaterialChainmailBoots      Material = "chainmail_boots"
	MaterialIronHelmet          Material = "iron_helmet"
	MaterialIronChestplate      Material = "iron_chestplate"
	MaterialIronLeggings        Material = "iron_leggings"
	MaterialIronBoots           Material = "iron_boots"
	MaterialGoldenHelmet        Material = "golden_helmet"
	MaterialGoldenChestplate    Material = "golden_chestplate"
	MaterialGoldenLeggings      Material = "golden_leggings"
	MaterialGoldenBoots         Material = "golden_boots"
	MaterialDiamondHelmet       Material = "diamond_helmet"
	MaterialDiamondChestplate   Material = "diamond_chestplate"
	MaterialDiamondLeggings     Material = "diamond_leggings"
	MaterialDiamondBoots        Material = "diamond_boots"
	MaterialNetheriteHelmet     Material = "netherite_helmet"
	MaterialNetheriteChestplate Material = "netherite_chestplate"
	MaterialNetheriteLeggings   Material = "netherite_leggings"
	MaterialNetheriteBoots      Material = "netherite_boots"
	MaterialTurtleHelmet        Material = "turtle_helmet"

	MaterialWoodenSword    Material = "wooden_sword"
	MaterialStoneSword     Material = "stone_sword"
	MaterialIronSword      Material = "iron_sword"
	MaterialGoldenSword    Material = "golden_sword"
	MaterialDiamondSword   Material = "diamond_sword"
	MaterialNetheriteSword Material = "netherite_sword"

	MaterialWoodenPickaxe    Material = "wooden_pickaxe"
	MaterialWoodenAxe        Material = "wooden_axe"
	MaterialWoodenShovel     Material = "wooden_shovel"
	MaterialWoodenHoe        Material = "wooden_hoe"
	MaterialStonePickaxe     Material = "stone_pickaxe"
	MaterialStoneAxe         Material = "stone_axe"
	MaterialStoneShovel      Material = "stone_shovel"
	MaterialStoneHoe         Material = "stone_hoe"
	MaterialIronPickaxe      Material = "iron_pickaxe"
	MaterialIronAxe          Material = "iron_axe"
	MaterialIronShovel       Material = "iron_shovel"
	MaterialIronHoe          Material = "iron_hoe"
	MaterialGoldenPickaxe    Material = "golden_pickaxe"
	MaterialGoldenAxe        Material = "golden_axe"
	MaterialGoldenShovel     Material = "golden_shovel"
	MaterialGoldenHoe        Material = "golden_hoe"
	MaterialDiamondPickaxe   Material = "diamond_pickaxe"
	MaterialDiamondAxe       Material = "diamond_axe"
	MaterialDiamondShovel    Material = "diamond_shovel"
	MaterialDiamondHoe       Material = "diamond_hoe"
	MaterialNetheritePickaxe Material = "netherite_pickaxe"
	MaterialNetheriteAxe     Material = "netherite_axe"
	MaterialNetheriteShovel  Material = "netherite_shovel"
	MaterialNetheriteHoe     Material = "netherite_hoe"
)

// MaterialInfo is the static registry metadata for a material. Classification
// predicates read only this data; it never changes at runtime.
type MaterialInfo struct {
	EquipmentSlot EquipmentSlot
	Armor         bool
	MaxDamage     int
}

// MaterialRegistry returns the registry metadata for a material. Unknown
// materials yield the zero MaterialInfo (no slot, not armor, unbreakable).
func MaterialRegistry(m Material) MaterialInfo {
	return materialRegistry[m]
}

// KnownMaterial reports whether the material exists in the registry.
func KnownMaterial(m Material) bool {
	_, ok := materialRegistry[m]
	return ok
}

func armor(slot EquipmentSlot, maxDamage int) MaterialInfo {
	return MaterialInfo{EquipmentSlot: slot, Armor: true, MaxDamage: maxDamage}
}

func tool(maxDamage int) MaterialInfo {
	return MaterialInfo{EquipmentSlot: SlotMainHand, MaxDamage: maxDamage}
}

var materialRegistry = map[Material]MaterialInfo{
	MaterialBook:       {},
	MaterialBow:        tool(384),
	MaterialCrossbow:   tool(465),
	MaterialFishingRod: tool(64),
	MaterialTrident:    tool(250),
	MaterialElytra:     {EquipmentSlot: SlotChestplate, MaxDamage: 432},

	MaterialCarvedPumpkin:       {EquipmentSlot: SlotHelmet},
	MaterialPlayerHead:          {EquipmentSlot: SlotHelmet},
	MaterialZombieHead:          {EquipmentSlot: SlotHelmet},
	MaterialSkeletonSkull:       {EquipmentSlot: SlotHelmet},
	MaterialWitherSkeletonSkull: {EquipmentSlot: SlotHelmet},
	MaterialCreeperHead:         {EquipmentSlot: SlotHelmet},
	MaterialDragonHead:          {EquipmentSlot: SlotHelmet},

	MaterialLeatherHelmet:       armor(SlotHelmet, 55),
	MaterialLeatherChestplate:   armor(SlotChestplate, 80),
	MaterialLeatherLeggings:     armor(SlotLeggings, 75),
	MaterialLeatherBoots:        armor(SlotBoots, 65),
	MaterialChainmailHelmet:     armor(SlotHelmet, 165),
	MaterialChainmailChestplate: armor(SlotChestplate, 240),
	MaterialChainmailLeggings:   armor(SlotLeggings, 225),
	MaterialChainmailBoots:      armor(SlotBoots, 195),
	MaterialIronHelmet:          armor(SlotHelmet, 165),
	MaterialIronChestplate:      armor(SlotChestplate, 240),
	MaterialIronLeggings:        armor(SlotLeggings, 225),
	MaterialIronBoots:           armor(SlotBoots, 195),
	MaterialGoldenHelmet:        armor(SlotHelmet, 77),
	MaterialGoldenChestplate:    armor(SlotChestplate, 112),
	MaterialGoldenLeggings:      armor(SlotLeggings, 105),
	MaterialGoldenBoots:         armor(SlotBoots, 91),
	MaterialDiamondHelmet:       armor(SlotHelmet, 363),
	MaterialDiamondChestplate:   armor(SlotChestplate, 528),
	MaterialDiamondLeggings:     armor(SlotLeggings, 495),
	MaterialDiamondBoots:        armor(SlotBoots, 429),
	MaterialNetheriteHelmet:     armor(SlotHelmet, 407),
	MaterialNetheriteChestplate: armor(SlotChestplate, 592),
	MaterialNetheriteLeggings:   armor(SlotLeggings, 555),
	MaterialNetheriteBoots:      armor(SlotBoots, 481),
	MaterialTurtleHelmet:        armor(SlotHelmet, 275),

	MaterialWoodenSword:    tool(59),
	MaterialStoneSword:     tool(131),
	MaterialIronSword:      tool(250),
	MaterialGoldenSword:    tool(32),
	MaterialDiamondSword:   tool(1561),
	MaterialNetheriteSword: tool(2031),

	MaterialWoodenPickaxe:    tool(59),
	MaterialWoodenAxe:        tool(59),
	MaterialWoodenShovel:     tool(59),
	MaterialWoodenHoe:        tool(59),
	MaterialStonePickaxe:     tool(131),
	MaterialStoneAxe:         tool(131),
	MaterialStoneShovel:      tool(131),
	MaterialStoneHoe:         tool(131),
	MaterialIronPickaxe:      tool(250),
	MaterialIronAxe:          tool(250),
	MaterialIronShovel:       tool(250),
	MaterialIronHoe:          tool(250),
	MaterialGoldenPickaxe:    tool(32),
	MaterialGoldenAxe:        tool(32),
	MaterialGoldenShovel:     tool(32),
	MaterialGoldenHoe:        tool(32),
	MaterialDiamondPickaxe:   tool(1561),
	MaterialDiamondAxe:       tool(1561),
	MaterialDiamondShovel:    tool(1561),
	MaterialDiamondHoe:       tool(1561),
	MaterialNetheritePickaxe: tool(2031),
	MaterialNetheriteAxe:     tool(2031),
	MaterialNetheriteShovel:  tool(2031),
	MaterialNetheriteHoe:     tool(2031),
}
