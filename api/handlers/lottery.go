package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/openarisan/arisan-chain/api/types"
)

// LotteryHandler handles draw history HTTP requests
type LotteryHandler struct {
	service types.LotteryService
}

// NewLotteryHandler creates a new lottery handler
func NewLotteryHandler(service types.LotteryService) *LotteryHandler {
	return &LotteryHandler{service: service}
}

// HandlePoolRounds handles /v1/lottery/pools/{id}/rounds and
// /v1/lottery/pools/{id}/current
func (h *LotteryHandler) HandlePoolRounds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/lottery/pools/")
	idPart := rest
	endpoint := ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		idPart = rest[:i]
		endpoint = rest[i+1:]
	}

	poolID, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_pool_id", "Pool ID must be a number")
		return
	}

	switch endpoint {
	case "", "rounds":
		rounds, err := h.service.ListRounds(r.Context(), poolID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "list_rounds_failed", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"pool_id": poolID,
			"rounds":  rounds,
		})

	case "current":
		round, err := h.service.GetCurrentRound(r.Context(), poolID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "current_round_failed", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"pool_id": poolID,
			"round":   round,
		})

	default:
		writeError(w, http.StatusNotFound, "not_found", "Endpoint not found")
	}
}
