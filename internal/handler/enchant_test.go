package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenstack/enchantd/internal/domain"
	"github.com/goldenstack/enchantd/internal/enchant"
)

func newTestEnchantHandler(t *testing.T) *EnchantHandler {
	t.Helper()
	InitValidator()
	m := enchant.NewBuilder().UseConcurrentMaps(true).Build()
	return NewEnchantHandler(enchant.NewService(m, 64, time.Minute))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleEnchantItem(t *testing.T) {
	h := newTestEnchantHandler(t)

	t.Run("success with explicit seed", func(t *testing.T) {
		seed := int64(42)
		w := postJSON(t, h.HandleEnchantItem, "/api/v1/enchant", EnchantItemRequest{
			Material: "diamond_sword",
			Levels:   30,
			Seed:     &seed,
		})

		require.Equal(t, http.StatusOK, w.Code)

		var result domain.EnchantResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, domain.Material("diamond_sword"), result.Material)
		assert.Equal(t, seed, result.Seed)
		assert.NotEmpty(t, result.Enchantments)
	})

	t.Run("same seed reproduces the same result", func(t *testing.T) {
		seed := int64(7)
		body := EnchantItemRequest{Material: "iron_pickaxe", Levels: 20, Seed: &seed}

		a := postJSON(t, h.HandleEnchantItem, "/api/v1/enchant", body)
		b := postJSON(t, h.HandleEnchantItem, "/api/v1/enchant", body)

		require.Equal(t, http.StatusOK, a.Code)
		assert.Equal(t, a.Body.String(), b.Body.String())
	})

	t.Run("unknown material rejected by validation", func(t *testing.T) {
		w := postJSON(t, h.HandleEnchantItem, "/api/v1/enchant", EnchantItemRequest{
			Material: "obsidian_sword",
			Levels:   30,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown material")
	})

	t.Run("negative levels rejected", func(t *testing.T) {
		w := postJSON(t, h.HandleEnchantItem, "/api/v1/enchant", EnchantItemRequest{
			Material: "diamond_sword",
			Levels:   -5,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/enchant", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()

		h.HandleEnchantItem(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandlePreviewCandidates(t *testing.T) {
	h := newTestEnchantHandler(t)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/candidates?material=diamond_sword&levels=30", nil)
		w := httptest.NewRecorder()

		h.HandlePreviewCandidates(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []enchant.CandidateView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data)
	})

	t.Run("missing material", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/candidates", nil)
		w := httptest.NewRecorder()

		h.HandlePreviewCandidates(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "material")
	})

	t.Run("invalid levels parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/candidates?material=diamond_sword&levels=ten", nil)
		w := httptest.NewRecorder()

		h.HandlePreviewCandidates(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLevels)
	})

	t.Run("invalid treasure parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/candidates?material=diamond_sword&treasure=yes-please", nil)
		w := httptest.NewRecorder()

		h.HandlePreviewCandidates(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidTreasure)
	})

	t.Run("unknown material", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/candidates?material=obsidian_sword", nil)
		w := httptest.NewRecorder()

		h.HandlePreviewCandidates(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUnknownMaterialError)
	})
}

func TestHandleListEnchantments(t *testing.T) {
	h := newTestEnchantHandler(t)

	req := httptest.NewRequest("GET", "/api/v1/enchantments", nil)
	w := httptest.NewRecorder()

	h.HandleListEnchantments(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []enchant.EnchantmentView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, len(enchant.DefaultData()))
}

func TestHandlePutEnchantment(t *testing.T) {
	h := newTestEnchantHandler(t)

	t.Run("stores a new enchantment", func(t *testing.T) {
		w := postJSON(t, h.HandlePutEnchantment, "/api/v1/enchantments", enchant.Def{
			ID:       "lifesteal",
			Weight:   2,
			MaxLevel: 3,
			Treasure: true,
			Slot:     "weapon",
			MinCost:  enchant.BoundDef{Fn: "adjusted", Min: 15, Step: 9},
			MaxCost:  enchant.BoundDef{Fn: "add_to_default", Value: 50},
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), MsgEnchantmentStoredSuccess)
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		w := postJSON(t, h.HandlePutEnchantment, "/api/v1/enchantments", enchant.Def{
			ID:       "lifesteal",
			Weight:   2,
			MaxLevel: 3,
			Slot:     "offhand",
			MinCost:  enchant.BoundDef{Fn: "constant", Value: 1},
			MaxCost:  enchant.BoundDef{Fn: "constant", Value: 50},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidTableConfigError)
	})
}

func TestHandleRemoveEnchantment(t *testing.T) {
	h := newTestEnchantHandler(t)

	t.Run("removes an existing enchantment", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/enchantments?id=mending", nil)
		w := httptest.NewRecorder()

		h.HandleRemoveEnchantment(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgEnchantmentRemovedSuccess)
	})

	t.Run("missing id parameter", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/enchantments", nil)
		w := httptest.NewRecorder()

		h.HandleRemoveEnchantment(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/enchantments?id=no_such_enchant", nil)
		w := httptest.NewRecorder()

		h.HandleRemoveEnchantment(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgEnchantmentNotFoundError)
	})
}

func TestHandlePutEnchantability(t *testing.T) {
	h := newTestEnchantHandler(t)

	t.Run("stores a value", func(t *testing.T) {
		w := postJSON(t, h.HandlePutEnchantability, "/api/v1/enchantability", PutEnchantabilityRequest{
			Material: "golden_sword",
			Value:    30,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), MsgEnchantabilityStoredSuccess)
	})

	t.Run("unknown material rejected by validation", func(t *testing.T) {
		w := postJSON(t, h.HandlePutEnchantability, "/api/v1/enchantability", PutEnchantabilityRequest{
			Material: "obsidian_sword",
			Value:    30,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative value rejected", func(t *testing.T) {
		w := postJSON(t, h.HandlePutEnchantability, "/api/v1/enchantability", PutEnchantabilityRequest{
			Material: "golden_sword",
			Value:    -1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
