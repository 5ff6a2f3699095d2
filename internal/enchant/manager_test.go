package enchant

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenstack/enchantd/internal/domain"
)

func TestManagerDefaultsFallthrough(t *testing.T) {
	m := NewBuilder().Build()

	d := m.DataFor(domain.EnchantSharpness)
	require.NotNil(t, d)
	assert.Equal(t, 10, d.Weight)
	assert.Equal(t, 5, d.MaxLevel)

	assert.Equal(t, 10, m.Enchantability(domain.MaterialDiamondSword))
	assert.Len(t, m.AllKeys(), len(defaultData))
}

func TestManagerWithoutDefaults(t *testing.T) {
	m := NewBuilder().UseDefaultData(false).UseDefaultEnchantability(false).Build()

	assert.Nil(t, m.DataFor(domain.EnchantSharpness))
	assert.Empty(t, m.AllKeys())
	assert.Equal(t, 0, m.Enchantability(domain.MaterialDiamondSword))
}

func TestManagerPutOverridesDefault(t *testing.T) {
	m := NewBuilder().Build()

	m.PutData(&Data{
		ID:           domain.EnchantSharpness,
		Weight:       99,
		MaxLevel:     10,
		Discoverable: true,
		Slot:         Weapon,
		MinCost:      Constant(1),
		MaxCost:      Constant(100),
	})

	d := m.DataFor(domain.EnchantSharpness)
	require.NotNil(t, d)
	assert.Equal(t, 99, d.Weight)

	// The rest of the defaults survive the promotion
	assert.NotNil(t, m.DataFor(domain.EnchantProtection))
	assert.Len(t, m.AllKeys(), len(defaultData))

	// The shared default table itself is untouched
	assert.Equal(t, 10, defaultData[domain.EnchantSharpness].Weight)
}

func TestManagerRemoveDefaultKeyStaysGone(t *testing.T) {
	for _, eager := range []bool{false, true} {
		m := NewBuilder().EagerCopyDefaults(eager).Build()

		m.RemoveData(domain.EnchantMending)
		assert.Nil(t, m.DataFor(domain.EnchantMending), "eager=%v", eager)
		assert.Len(t, m.AllKeys(), len(defaultData)-1, "eager=%v", eager)

		// Removing again is a no-op
		m.RemoveData(domain.EnchantMending)
		assert.Len(t, m.AllKeys(), len(defaultData)-1, "eager=%v", eager)
	}
}

func TestManagerRemoveUnknownKeyNoPromotion(t *testing.T) {
	m := NewBuilder().Build()

	m.RemoveData("no_such_enchant")
	assert.Len(t, m.AllKeys(), len(defaultData))
}

func TestManagerEnchantabilityWrites(t *testing.T) {
	m := NewBuilder().Build()

	// Writing the default value back keeps the fallthrough intact
	m.PutEnchantability(domain.MaterialDiamondSword, 10)
	assert.Equal(t, 10, m.Enchantability(domain.MaterialDiamondSword))

	m.PutEnchantability(domain.MaterialDiamondSword, 42)
	assert.Equal(t, 42, m.Enchantability(domain.MaterialDiamondSword))
	assert.Equal(t, 25, m.Enchantability(domain.MaterialGoldenBoots))

	m.RemoveEnchantability(domain.MaterialDiamondSword)
	assert.Equal(t, 0, m.Enchantability(domain.MaterialDiamondSword))
}

func TestManagerAllDataSorted(t *testing.T) {
	m := NewBuilder().Build()

	data := m.AllData()
	require.Len(t, data, len(defaultData))

	ids := make([]string, len(data))
	for i, d := range data {
		ids[i] = string(d.ID)
	}
	assert.True(t, sort.StringsAreSorted(ids), "AllData must iterate in sorted ID order")
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := NewBuilder().UseConcurrentMaps(true).Build()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.PutEnchantability(domain.MaterialBook, j)
				m.PutData(&Data{ID: "stress", Weight: 1, MaxLevel: 1, Slot: All, MinCost: Constant(1), MaxCost: Constant(50)})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = m.DataFor(domain.EnchantSharpness)
				_ = m.Enchantability(domain.MaterialBook)
				_ = m.AllData()
			}
		}()
	}
	wg.Wait()

	assert.NotNil(t, m.DataFor("stress"))
}
