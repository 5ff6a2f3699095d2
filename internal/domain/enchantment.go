package domain

// EnchantmentID is the stable identity of an enchantment (e.g. "sharpness").
// Identity equality, not structural equality, drives conflict checks and
// catalog lookups.
type EnchantmentID string

// Vanilla enchantment identities
const (
	EnchantProtection           EnchantmentID = "protection"
	EnchantFireProtection       EnchantmentID = "fire_protection"
	EnchantFeatherFalling       EnchantmentID = "feather_falling"
	EnchantBlastProtection      EnchantmentID = "blast_protection"
	EnchantProjectileProtection EnchantmentID = "projectile_protection"
	EnchantRespiration          EnchantmentID = "respiration"
	EnchantAquaAffinity         EnchantmentID = "aqua_affinity"
	EnchantThorns               EnchantmentID = "thorns"
	EnchantDepthStrider         EnchantmentID = "depth_strider"
	EnchantFrostWalker          EnchantmentID = "frost_walker"
	EnchantBindingCurse         EnchantmentID = "binding_curse"
	EnchantSoulSpeed            EnchantmentID = "soul_speed"
	EnchantSharpness            EnchantmentID = "sharpness"
	EnchantSmite                EnchantmentID = "smite"
	EnchantBaneOfArthropods     EnchantmentID = "bane_of_arthropods"
	EnchantKnockback            EnchantmentID = "knockback"
	EnchantFireAspect           EnchantmentID = "fire_aspect"
	EnchantLooting              EnchantmentID = "looting"
	EnchantSweeping             EnchantmentID = "sweeping"
	EnchantEfficiency           EnchantmentID = "efficiency"
	EnchantSilkTouch            EnchantmentID = "silk_touch"
	EnchantUnbreaking           EnchantmentID = "unbreaking"
	EnchantFortune              EnchantmentID = "fortune"
	EnchantPower                EnchantmentID = "power"
	EnchantPunch                EnchantmentID = "punch"
	EnchantFlame                EnchantmentID = "flame"
	EnchantInfinity             EnchantmentID = "infinity"
	EnchantLuckOfTheSea         EnchantmentID = "luck_of_the_sea"
	EnchantLure                 EnchantmentID = "lure"
	EnchantLoyalty              EnchantmentID = "loyalty"
	EnchantImpaling             EnchantmentID = "impaling"
	EnchantRiptide              EnchantmentID = "riptide"
	EnchantChanneling           EnchantmentID = "channeling"
	EnchantMultishot            EnchantmentID = "multishot"
	EnchantQuickCharge          EnchantmentID = "quick_charge"
	EnchantPiercing             EnchantmentID = "piercing"
	EnchantMending              EnchantmentID = "mending"
	EnchantVanishingCurse       EnchantmentID = "vanishing_curse"
)

// AppliedEnchant is one (enchantment, level) pair produced by a selection run.
type AppliedEnchant struct {
	ID          EnchantmentID `json:"id"`
	DisplayName string        `json:"display_name,omitempty"`
	Level       int           `json:"level"`
}

// EnchantResult is the outcome of enchanting one item.
type EnchantResult struct {
	Material     Material         `json:"material"`
	Levels       int              `json:"levels"`
	Seed         int64            `json:"seed"`
	Enchantments []AppliedEnchant `json:"enchantments"`
}
