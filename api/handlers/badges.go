package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/openarisan/arisan-chain/api/types"
)

// BadgeHandler handles badge registry HTTP requests
type BadgeHandler struct {
	service types.BadgeService
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(service types.BadgeService) *BadgeHandler {
	return &BadgeHandler{service: service}
}

// HandleHolder handles GET /v1/badges/holder/{address}
func (h *BadgeHandler) HandleHolder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	holder := strings.TrimPrefix(r.URL.Path, "/v1/badges/holder/")
	if holder == "" {
		writeError(w, http.StatusBadRequest, "missing_holder", "Holder address is required")
		return
	}

	badges, err := h.service.GetBadgesByHolder(r.Context(), holder)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "holder_badges_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"holder": holder,
		"badges": badges,
	})
}

// HandlePool handles GET /v1/badges/pool/{id}
func (h *BadgeHandler) HandlePool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, "/v1/badges/pool/")
	poolID, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_pool_id", "Pool ID must be a number")
		return
	}

	badges, err := h.service.GetBadgesByPool(r.Context(), poolID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "pool_badges_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pool_id": poolID,
		"badges":  badges,
	})
}

// HandleTop handles GET /v1/badges/top
func (h *BadgeHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	holders, err := h.service.GetTopHolders(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "top_holders_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"holders": holders,
	})
}
