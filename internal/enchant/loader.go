package enchant

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goldenstack/enchantd/internal/domain"
	"github.com/goldenstack/enchantd/internal/validation"
)

// Sentinel errors for the tables loader
var (
	ErrDuplicateEnchantID = errors.New("duplicate enchantment id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for enchantment table overrides.
// Entries replace the catalog record with the same id; the defaults stay in
// place for everything the file does not mention.
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Enchantments   []Def          `json:"enchantments"`
	Enchantability map[string]int `json:"enchantability,omitempty"`
}

// Def represents a single enchantment definition in the JSON
type Def struct {
	ID           string   `json:"id"`
	Weight       int      `json:"weight"`
	MaxLevel     int      `json:"max_level"`
	Treasure     bool     `json:"treasure,omitempty"`
	Discoverable *bool    `json:"discoverable,omitempty"` // defaults to true
	Slot         string   `json:"slot"`
	MinCost      BoundDef `json:"min_cost"`
	MaxCost      BoundDef `json:"max_cost"`
	Incompatible []string `json:"incompatible,omitempty"`
}

// BoundDef represents one cost bound as a named function plus its parameters.
// Which parameters are read depends on fn: "constant", "multiply", "add_to_min"
// and "add_to_default" use value; "adjusted" and "basic" use min and step.
type BoundDef struct {
	Fn    string `json:"fn"`
	Value int    `json:"value,omitempty"`
	Min   int    `json:"min,omitempty"`
	Step  int    `json:"step,omitempty"`
}

// Loader handles loading and validating enchantment table configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Apply(config *Config, m *Manager) error
}

type tablesLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &tablesLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an enchantment tables JSON file
func (l *tablesLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTablesFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, TablesSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTablesFailed, err)
	}

	return &config, nil
}

var slotsByName = map[string]SlotType{
	"armor":            Armor,
	"armor_helmet":     ArmorHelmet,
	"armor_chestplate": ArmorChestplate,
	"armor_leggings":   ArmorLeggings,
	"armor_feet":       ArmorFeet,
	"weapon":           Weapon,
	"tool":             Tool,
	"fishing_rod":      FishingRod,
	"trident":          Trident,
	"bow":              Bow,
	"crossbow":         Crossbow,
	"wearable":         Wearable,
	"breakable":        Breakable,
	"all":              All,
}

// Validate checks the table configuration for errors
func (l *tablesLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Enchantments) == 0 && len(config.Enchantability) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoEnchantsDefined)
	}

	ids := make(map[string]bool, len(config.Enchantments))
	for i := range config.Enchantments {
		def := &config.Enchantments[i]
		if err := l.validateEnchantDef(i, def, ids); err != nil {
			return err
		}
	}

	for mat, value := range config.Enchantability {
		if !domain.KnownMaterial(domain.Material(mat)) {
			return fmt.Errorf(ErrFmtUnknownMaterial, ErrInvalidConfig, mat)
		}
		if value < 0 {
			return fmt.Errorf(ErrFmtNegativeEnchantVal, ErrInvalidConfig, mat)
		}
	}

	return nil
}

func (l *tablesLoader) validateEnchantDef(index int, def *Def, ids map[string]bool) error {
	if def.ID == "" {
		return fmt.Errorf(ErrFmtEnchantEmptyID, ErrInvalidConfig, index)
	}

	if ids[def.ID] {
		return fmt.Errorf(ErrFmtDuplicateEnchant, ErrDuplicateEnchantID, def.ID)
	}
	ids[def.ID] = true

	if def.Weight <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveWeight, ErrInvalidConfig, def.ID)
	}
	if def.MaxLevel <= 0 {
		return fmt.Errorf(ErrFmtNonPositiveLevel, ErrInvalidConfig, def.ID)
	}
	if _, ok := slotsByName[def.Slot]; !ok {
		return fmt.Errorf(ErrFmtUnknownSlot, ErrInvalidConfig, def.ID, def.Slot)
	}

	for _, bound := range []BoundDef{def.MinCost, def.MaxCost} {
		if _, err := bound.levelFunc(); err != nil {
			return fmt.Errorf(ErrFmtUnknownBoundFn, ErrInvalidConfig, def.ID, bound.Fn)
		}
	}

	// add_to_min reads the record's own min bound, so installing it as the
	// min bound would recurse without end
	if def.MinCost.Fn == "add_to_min" {
		return fmt.Errorf(ErrFmtRecursiveMinBound, ErrInvalidConfig, def.ID)
	}

	return nil
}

func (b BoundDef) levelFunc() (LevelFunc, error) {
	switch b.Fn {
	case "constant":
		return Constant(b.Value), nil
	case "multiply":
		return Multiply(b.Value), nil
	case "adjusted":
		return Adjusted(b.Min, b.Step), nil
	case "basic":
		return Basic(b.Min, b.Step), nil
	case "add_to_min":
		return AddToMin(b.Value), nil
	case "add_to_default":
		return AddToDefault(b.Value), nil
	}
	return nil, fmt.Errorf("unknown bound function %q", b.Fn)
}

// Apply writes the configuration's records into the manager. Validate should
// have been called first; Apply repeats only the checks it needs to build
// records safely.
func (l *tablesLoader) Apply(config *Config, m *Manager) error {
	if err := l.Validate(config); err != nil {
		return err
	}

	for _, def := range config.Enchantments {
		minCost, _ := def.MinCost.levelFunc()
		maxCost, _ := def.MaxCost.levelFunc()

		discoverable := true
		if def.Discoverable != nil {
			discoverable = *def.Discoverable
		}

		incompatible := make([]domain.EnchantmentID, 0, len(def.Incompatible))
		for _, id := range def.Incompatible {
			incompatible = append(incompatible, domain.EnchantmentID(id))
		}

		m.PutData(&Data{
			ID:           domain.EnchantmentID(def.ID),
			Weight:       def.Weight,
			MaxLevel:     def.MaxLevel,
			TreasureOnly: def.Treasure,
			Discoverable: discoverable,
			Slot:         slotsByName[def.Slot],
			MinCost:      minCost,
			MaxCost:      maxCost,
			Incompatible: incompatible,
		})
	}

	for mat, value := range config.Enchantability {
		m.PutEnchantability(domain.Material(mat), value)
	}

	return nil
}
