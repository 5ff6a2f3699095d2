package enchant

// Schema paths
const (
	TablesSchemaPath = "configs/schemas/enchantments.schema.json"
)

// Log messages
const (
	LogMsgTablesLoaded    = "Enchantment tables loaded"
	LogMsgTableApplied    = "Enchantment table overrides applied"
	LogMsgEnchantSelected = "Enchantments selected"
)

// Error messages
const (
	ErrMsgReadTablesFailed  = "failed to read enchantment tables: %w"
	ErrMsgParseTablesFailed = "failed to parse enchantment tables: %w"

	ErrMsgConfigNil          = "config is nil"
	ErrMsgNoEnchantsDefined  = "no enchantments defined"
	ErrFmtEnchantEmptyID     = "%w: enchantment at index %d has empty id"
	ErrFmtDuplicateEnchant   = "%w: '%s'"
	ErrFmtNonPositiveWeight  = "%w: enchantment '%s' has non-positive weight"
	ErrFmtNonPositiveLevel   = "%w: enchantment '%s' has non-positive max_level"
	ErrFmtUnknownSlot        = "%w: enchantment '%s' has unknown slot '%s'"
	ErrFmtUnknownBoundFn     = "%w: enchantment '%s' has unknown bound function '%s'"
	ErrFmtRecursiveMinBound  = "%w: enchantment '%s' min_cost cannot use add_to_min"
	ErrFmtUnknownMaterial    = "%w: enchantability entry '%s' is not a known material"
	ErrFmtNegativeEnchantVal = "%w: enchantability for '%s' is negative"
)
