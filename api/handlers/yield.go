package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/openarisan/arisan-chain/api/types"
)

// YieldHandler handles yield ledger HTTP requests
type YieldHandler struct {
	service types.YieldService
}

// NewYieldHandler creates a new yield handler
func NewYieldHandler(service types.YieldService) *YieldHandler {
	return &YieldHandler{service: service}
}

// HandleStrategies handles GET /v1/yield/strategies
func (h *YieldHandler) HandleStrategies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	strategies, err := h.service.ListStrategies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_strategies_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"strategies": strategies,
	})
}

// HandleTotal handles GET /v1/yield/total
func (h *YieldHandler) HandleTotal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	total, err := h.service.GetTotalManagedFunds(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "total_funds_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_managed_funds": total,
	})
}

// HandleInvestment handles GET /v1/yield/pools/{id}
func (h *YieldHandler) HandleInvestment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	idPart := strings.TrimPrefix(r.URL.Path, "/v1/yield/pools/")
	poolID, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_pool_id", "Pool ID must be a number")
		return
	}

	inv, err := h.service.GetInvestment(r.Context(), poolID)
	if err != nil {
		writeError(w, http.StatusNotFound, "investment_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, inv)
}
