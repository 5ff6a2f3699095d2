package config

const (
	// Configuration file paths
	ConfigPathTables       = "configs/enchantments.json"
	ConfigPathTablesSchema = "configs/schemas/enchantments.schema.json"
)

// Bonus strategy values accepted by BONUS_STRATEGY
const (
	BonusStrategyTwoDraws   = "two_draws"
	BonusStrategySingleDraw = "single_draw"
)

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = "5m"
)
