package handler

import (
	"net/http"
	"strconv"

	"github.com/goldenstack/enchantd/internal/enchant"
)

// EnchantHandler serves the enchanting and catalog endpoints.
type EnchantHandler struct {
	service enchant.Service
}

func NewEnchantHandler(service enchant.Service) *EnchantHandler {
	return &EnchantHandler{service: service}
}

type EnchantItemRequest struct {
	Material string `json:"material" validate:"required,material"`
	Levels   int    `json:"levels" validate:"gte=0"`
	Seed     *int64 `json:"seed,omitempty"`
	Treasure bool   `json:"treasure,omitempty"`
}

// HandleEnchantItem runs one enchanting roll and returns the applied
// enchantments together with the seed that produced them.
func (h *EnchantHandler) HandleEnchantItem(w http.ResponseWriter, r *http.Request) {
	var req EnchantItemRequest
	if !decodeValid(w, r, &req, "Enchant item") {
		return
	}

	result, err := h.service.EnchantItem(r.Context(), req.Material, req.Levels, enchant.Options{
		Seed:     req.Seed,
		Treasure: req.Treasure,
	})
	if err != nil {
		respondServiceError(w, r, "Enchant item", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandlePreviewCandidates returns the candidate pool for a material at an
// exact level budget, without consuming any randomness.
func (h *EnchantHandler) HandlePreviewCandidates(w http.ResponseWriter, r *http.Request) {
	material, ok := requiredQuery(w, r, "material")
	if !ok {
		return
	}

	levelsStr := queryDefault(r, "levels", "30")
	levels, err := strconv.Atoi(levelsStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidLevels, http.StatusBadRequest)
		return
	}

	treasureStr := queryDefault(r, "treasure", "false")
	treasure, err := strconv.ParseBool(treasureStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidTreasure, http.StatusBadRequest)
		return
	}

	candidates, err := h.service.PreviewCandidates(r.Context(), material, levels, enchant.Options{Treasure: treasure})
	if err != nil {
		respondServiceError(w, r, "Preview candidates", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: candidates})
}

// HandleListEnchantments lists every catalog record.
func (h *EnchantHandler) HandleListEnchantments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.service.ListEnchantments(r.Context())})
}

// HandlePutEnchantment registers or replaces one catalog record.
func (h *EnchantHandler) HandlePutEnchantment(w http.ResponseWriter, r *http.Request) {
	var req enchant.Def
	if !decodeValid(w, r, &req, "Put enchantment") {
		return
	}

	if err := h.service.PutEnchantment(r.Context(), req); err != nil {
		respondServiceError(w, r, "Put enchantment", err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgEnchantmentStoredSuccess})
}

// HandleRemoveEnchantment removes one catalog record by id.
func (h *EnchantHandler) HandleRemoveEnchantment(w http.ResponseWriter, r *http.Request) {
	id, ok := requiredQuery(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveEnchantment(r.Context(), id); err != nil {
		respondServiceError(w, r, "Remove enchantment", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEnchantmentRemovedSuccess})
}

type PutEnchantabilityRequest struct {
	Material string `json:"material" validate:"required,material"`
	Value    int    `json:"value" validate:"gte=0"`
}

// HandlePutEnchantability sets the enchantability for one material.
func (h *EnchantHandler) HandlePutEnchantability(w http.ResponseWriter, r *http.Request) {
	var req PutEnchantabilityRequest
	if !decodeValid(w, r, &req, "Put enchantability") {
		return
	}

	if err := h.service.PutEnchantability(r.Context(), req.Material, req.Value); err != nil {
		respondServiceError(w, r, "Put enchantability", err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgEnchantabilityStoredSuccess})
}
