package enchant

import (
	"sort"
	"sync"

	"github.com/goldenstack/enchantd/internal/domain"
)

// Manager is the catalog of enchantment Data and material enchantability that
// the selection engine reads. Each instance owns its two tables, so different
// consumers can carry completely different values for the same enchantment.
//
// Under the lazy policy (the default) a Manager built with UseDefaultData /
// UseDefaultEnchantability does not copy the shared default tables; reads fall
// through to them until the first write (including a remove) promotes the
// table to an owned copy. EagerCopyDefaults switches to copying at build time
// instead. The two policies diverge when a caller removes a key that exists
// only in the defaults before any other write.
type Manager struct {
	// nil when built without UseConcurrentMaps; all locking helpers no-op.
	mu *sync.RWMutex

	// nil until promoted under the lazy policy.
	data           map[domain.EnchantmentID]*Data
	enchantability map[domain.Material]int

	useDefaultData           bool
	useDefaultEnchantability bool
	bonus                    BonusStrategy
}

// Builder configures and creates Manager instances.
type Builder struct {
	concurrent               bool
	useDefaultData           bool
	useDefaultEnchantability bool
	eagerCopyDefaults        bool
	bonus                    BonusStrategy
}

// NewBuilder returns a Builder with the default settings: plain maps, default
// tables enabled, lazy promotion, two-draw bonus strategy.
func NewBuilder() *Builder {
	return &Builder{
		useDefaultData:           true,
		useDefaultEnchantability: true,
		bonus:                    BonusTwoDraws,
	}
}

// UseConcurrentMaps guards the manager's tables with a mutex so one instance
// can be shared across goroutines.
func (b *Builder) UseConcurrentMaps(v bool) *Builder {
	b.concurrent = v
	return b
}

// UseDefaultData backs the enchantment table with the shared default dataset.
func (b *Builder) UseDefaultData(v bool) *Builder {
	b.useDefaultData = v
	return b
}

// UseDefaultEnchantability backs the enchantability table with the shared
// default dataset.
func (b *Builder) UseDefaultEnchantability(v bool) *Builder {
	b.useDefaultEnchantability = v
	return b
}

// EagerCopyDefaults copies the default tables into owned maps at build time
// instead of lazily falling back to the shared tables until first write.
func (b *Builder) EagerCopyDefaults(v bool) *Builder {
	b.eagerCopyDefaults = v
	return b
}

// Bonus selects the enchantability bonus roll strategy used by
// RandomizeLevel.
func (b *Builder) Bonus(s BonusStrategy) *Builder {
	b.bonus = s
	return b
}

// Build creates a new Manager from this builder. Safe to call multiple times.
func (b *Builder) Build() *Manager {
	m := &Manager{
		useDefaultData:           b.useDefaultData,
		useDefaultEnchantability: b.useDefaultEnchantability,
		bonus:                    b.bonus,
	}
	if b.concurrent {
		m.mu = &sync.RWMutex{}
	}
	if b.eagerCopyDefaults {
		m.initData()
		m.initEnchantability()
	}
	return m
}

func (m *Manager) lock() {
	if m.mu != nil {
		m.mu.Lock()
	}
}

func (m *Manager) unlock() {
	if m.mu != nil {
		m.mu.Unlock()
	}
}

func (m *Manager) rlock() {
	if m.mu != nil {
		m.mu.RLock()
	}
}

func (m *Manager) runlock() {
	if m.mu != nil {
		m.mu.RUnlock()
	}
}

// initData promotes the enchantment table to an owned map. Caller must hold
// the write lock when concurrency is enabled.
func (m *Manager) initData() {
	m.data = make(map[domain.EnchantmentID]*Data, len(defaultData))
	if m.useDefaultData {
		for id, d := range defaultData {
			m.data[id] = d
		}
	}
}

func (m *Manager) initEnchantability() {
	m.enchantability = make(map[domain.Material]int, len(defaultEnchantability))
	if m.useDefaultEnchantability {
		for mat, v := range defaultEnchantability {
			m.enchantability[mat] = v
		}
	}
}

// PutData associates the data's ID with the data, promoting the table first if
// it is still backed by the defaults.
func (m *Manager) PutData(d *Data) {
	m.lock()
	defer m.unlock()
	if m.data == nil {
		m.initData()
	}
	m.data[d.ID] = d
}

// DataFor returns the data registered for the given ID, or nil.
func (m *Manager) DataFor(id domain.EnchantmentID) *Data {
	m.rlock()
	defer m.runlock()
	if m.data == nil {
		if m.useDefaultData {
			return defaultData[id]
		}
		return nil
	}
	return m.data[id]
}

// RemoveData removes the given ID from the manager. Removing a key that only
// exists in the defaults still promotes the table, so the key stays gone.
func (m *Manager) RemoveData(id domain.EnchantmentID) {
	m.lock()
	defer m.unlock()
	if m.data == nil {
		// Don't promote if there is nothing to remove
		if !m.useDefaultData {
			return
		}
		if _, ok := defaultData[id]; !ok {
			return
		}
		m.initData()
	}
	delete(m.data, id)
}

// AllKeys returns every registered enchantment ID in sorted order.
func (m *Manager) AllKeys() []domain.EnchantmentID {
	m.rlock()
	defer m.runlock()
	source := m.data
	if source == nil {
		if !m.useDefaultData {
			return nil
		}
		source = defaultData
	}
	keys := make([]domain.EnchantmentID, 0, len(source))
	for id := range source {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// AllData returns every registered Data in sorted-key order. The sort keeps
// catalog iteration order stable so seeded selection runs are reproducible.
func (m *Manager) AllData() []*Data {
	m.rlock()
	defer m.runlock()
	source := m.data
	if source == nil {
		if !m.useDefaultData {
			return nil
		}
		source = defaultData
	}
	keys := make([]domain.EnchantmentID, 0, len(source))
	for id := range source {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]*Data, len(keys))
	for i, id := range keys {
		out[i] = source[id]
	}
	return out
}

// PutEnchantability associates the material with the given enchantability.
func (m *Manager) PutEnchantability(mat domain.Material, value int) {
	m.lock()
	defer m.unlock()
	if m.enchantability == nil {
		// Don't promote if the default already holds this exact value
		if m.useDefaultEnchantability {
			if v, ok := defaultEnchantability[mat]; ok && v == value {
				return
			}
		}
		m.initEnchantability()
	}
	m.enchantability[mat] = value
}

// Enchantability returns the enchantability for the material. Unknown
// materials yield 0, never an error.
func (m *Manager) Enchantability(mat domain.Material) int {
	m.rlock()
	defer m.runlock()
	if m.enchantability == nil {
		if m.useDefaultEnchantability {
			return defaultEnchantability[mat]
		}
		return 0
	}
	return m.enchantability[mat]
}

// RemoveEnchantability removes the material from the enchantability table.
func (m *Manager) RemoveEnchantability(mat domain.Material) {
	m.lock()
	defer m.unlock()
	if m.enchantability == nil {
		if !m.useDefaultEnchantability {
			return
		}
		if _, ok := defaultEnchantability[mat]; !ok {
			return
		}
		m.initEnchantability()
	}
	delete(m.enchantability, mat)
}
