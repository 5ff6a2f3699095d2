package domain

// ItemStack is the target-object descriptor the selection engine classifies.
// Only Material matters for candidate generation; Enchantments holds whatever
// has already been applied to the item.
type ItemStack struct {
	Material     Material              `json:"material"`
	Enchantments map[EnchantmentID]int `json:"enchantments,omitempty"`
}

// NewItemStack creates an ItemStack of the given material with no enchantments.
func NewItemStack(material Material) *ItemStack {
	return &ItemStack{Material: material}
}

// WithEnchantments returns a copy of the item with the given levels merged in.
// The receiver is not modified.
func (i *ItemStack) WithEnchantments(enchants map[EnchantmentID]int) *ItemStack {
	merged := make(map[EnchantmentID]int, len(i.Enchantments)+len(enchants))
	for id, level := range i.Enchantments {
		merged[id] = level
	}
	for id, level := range enchants {
		merged[id] = level
	}
	return &ItemStack{Material: i.Material, Enchantments: merged}
}
