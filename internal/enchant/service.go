package enchant

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goldenstack/enchantd/internal/domain"
	"github.com/goldenstack/enchantd/internal/logger"
	"github.com/goldenstack/enchantd/internal/metrics"
)

// Options tunes one enchanting run.
type Options struct {
	// Seed pins the random source so the run is reproducible. Nil draws a
	// seed from the clock; the seed actually used is echoed in the result.
	Seed *int64

	// Treasure admits treasure-only enchantments, as loot-chest rolls do.
	Treasure bool
}

// CandidateView is one entry of a candidate pool, for inspection.
type CandidateView struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Level       int    `json:"level"`
	Weight      int    `json:"weight"`
}

// EnchantmentView is one catalog record, for listing.
type EnchantmentView struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Weight       int      `json:"weight"`
	MaxLevel     int      `json:"max_level"`
	Treasure     bool     `json:"treasure"`
	Discoverable bool     `json:"discoverable"`
	Incompatible []string `json:"incompatible,omitempty"`
}

// Service defines the enchanting interface
type Service interface {
	EnchantItem(ctx context.Context, material string, levels int, opts Options) (*domain.EnchantResult, error)
	PreviewCandidates(ctx context.Context, material string, levels int, opts Options) ([]CandidateView, error)
	ListEnchantments(ctx context.Context) []EnchantmentView
	PutEnchantment(ctx context.Context, def Def) error
	RemoveEnchantment(ctx context.Context, id string) error
	PutEnchantability(ctx context.Context, material string, value int) error
}

type service struct {
	manager *Manager
	loader  Loader

	// Candidate pools are pure functions of the catalog, the material and
	// the raw level budget, so they cache cleanly. Any catalog write purges.
	candidates *expirable.LRU[string, []CandidateView]

	titler cases.Caser
}

// NewService creates a new enchanting service around the given manager. The
// manager should be built with UseConcurrentMaps when the service is shared.
func NewService(manager *Manager, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		manager:    manager,
		loader:     NewLoader(),
		candidates: expirable.NewLRU[string, []CandidateView](cacheSize, nil, cacheTTL),
		titler:     cases.Title(language.English),
	}
}

// DisplayName renders an enchantment ID for humans: "luck_of_the_sea"
// becomes "Luck Of The Sea".
func (s *service) DisplayName(id domain.EnchantmentID) string {
	return s.titler.String(strings.ReplaceAll(string(id), "_", " "))
}

func (s *service) includePredicate(opts Options) Predicate {
	if opts.Treasure {
		return Discoverable
	}
	return DiscoverableAndNotTreasure
}

// EnchantItem enchants a fresh item of the given material at the given level
// budget and returns the applied enchantments.
func (s *service) EnchantItem(ctx context.Context, material string, levels int, opts Options) (*domain.EnchantResult, error) {
	log := logger.FromContext(ctx)

	mat := domain.Material(material)
	if !domain.KnownMaterial(mat) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMaterial, material)
	}
	if levels < 0 {
		return nil, fmt.Errorf("%w: levels must not be negative", domain.ErrInvalidInput)
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	item := domain.NewItemStack(mat)
	picks := s.manager.EnchantsWithLevels(item, levels, rng, s.includePredicate(opts), AlwaysAddIfBook)

	applied := make([]domain.AppliedEnchant, 0, len(picks))
	for _, w := range picks {
		applied = append(applied, domain.AppliedEnchant{
			ID:          w.Data.ID,
			DisplayName: s.DisplayName(w.Data.ID),
			Level:       w.Level,
		})
	}

	metrics.RecordEnchantPerformed(material, len(applied))
	log.Info(LogMsgEnchantSelected,
		"material", material,
		"levels", levels,
		"seed", seed,
		"picks", len(applied))

	return &domain.EnchantResult{
		Material:     mat,
		Levels:       levels,
		Seed:         seed,
		Enchantments: applied,
	}, nil
}

// PreviewCandidates returns the candidate pool for the material at the exact
// level budget given, without randomization and without drawing anything.
func (s *service) PreviewCandidates(ctx context.Context, material string, levels int, opts Options) ([]CandidateView, error) {
	mat := domain.Material(material)
	if !domain.KnownMaterial(mat) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMaterial, material)
	}
	if levels < 0 {
		return nil, fmt.Errorf("%w: levels must not be negative", domain.ErrInvalidInput)
	}

	key := fmt.Sprintf("%s:%d:%t", material, levels, opts.Treasure)
	if views, ok := s.candidates.Get(key); ok {
		return views, nil
	}

	item := domain.NewItemStack(mat)
	pool := s.manager.WeightedEnchantments(item, levels, s.includePredicate(opts), AlwaysAddIfBook)
	metrics.RecordCandidatePoolSize(len(pool))

	views := make([]CandidateView, 0, len(pool))
	for _, w := range pool {
		views = append(views, CandidateView{
			ID:          string(w.Data.ID),
			DisplayName: s.DisplayName(w.Data.ID),
			Level:       w.Level,
			Weight:      w.Weight(),
		})
	}

	s.candidates.Add(key, views)
	return views, nil
}

// ListEnchantments returns every catalog record in stable order.
func (s *service) ListEnchantments(ctx context.Context) []EnchantmentView {
	data := s.manager.AllData()
	views := make([]EnchantmentView, 0, len(data))
	for _, d := range data {
		incompatible := make([]string, 0, len(d.Incompatible))
		for _, id := range d.Incompatible {
			incompatible = append(incompatible, string(id))
		}
		views = append(views, EnchantmentView{
			ID:           string(d.ID),
			DisplayName:  s.DisplayName(d.ID),
			Weight:       d.Weight,
			MaxLevel:     d.MaxLevel,
			Treasure:     d.TreasureOnly,
			Discoverable: d.Discoverable,
			Incompatible: incompatible,
		})
	}
	return views
}

// PutEnchantment registers or replaces one catalog record.
func (s *service) PutEnchantment(ctx context.Context, def Def) error {
	log := logger.FromContext(ctx)

	config := &Config{Enchantments: []Def{def}}
	if err := s.loader.Apply(config, s.manager); err != nil {
		return err
	}

	s.candidates.Purge()
	log.Info(LogMsgTableApplied, "id", def.ID)
	return nil
}

// RemoveEnchantment removes one catalog record. Removing an unknown ID
// reports domain.ErrEnchantmentNotFound.
func (s *service) RemoveEnchantment(ctx context.Context, id string) error {
	eid := domain.EnchantmentID(id)
	if s.manager.DataFor(eid) == nil {
		return fmt.Errorf("%w: %s", domain.ErrEnchantmentNotFound, id)
	}
	s.manager.RemoveData(eid)
	s.candidates.Purge()
	return nil
}

// PutEnchantability sets the enchantability for one material.
func (s *service) PutEnchantability(ctx context.Context, material string, value int) error {
	mat := domain.Material(material)
	if !domain.KnownMaterial(mat) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownMaterial, material)
	}
	if value < 0 {
		return fmt.Errorf("%w: enchantability must not be negative", domain.ErrInvalidInput)
	}
	s.manager.PutEnchantability(mat, value)
	s.candidates.Purge()
	return nil
}
