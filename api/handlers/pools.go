package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/openarisan/arisan-chain/api/types"
)

// PoolHandler handles pool-related HTTP requests
type PoolHandler struct {
	service types.PoolService
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(service types.PoolService) *PoolHandler {
	return &PoolHandler{service: service}
}

// HandlePools handles /v1/pools endpoint (GET for list, POST for create)
func (h *PoolHandler) HandlePools(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listPools(w, r)
	case http.MethodPost:
		h.createPool(w, r)
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	}
}

// HandlePool handles /v1/pools/{id} and /v1/pools/{id}/{action} endpoints
func (h *PoolHandler) HandlePool(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	prefix := "/v1/pools/"
	if !strings.HasPrefix(path, prefix) {
		writeError(w, http.StatusBadRequest, "invalid_path", "Invalid path")
		return
	}
	rest := strings.TrimPrefix(path, prefix)

	idPart := rest
	action := ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		idPart = rest[:i]
		action = rest[i+1:]
	}

	poolID, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_pool_id", "Pool ID must be a number")
		return
	}

	switch action {
	case "":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
			return
		}
		h.getPool(w, r, poolID)
	case "members":
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
			return
		}
		h.getMembers(w, r, poolID)
	case "join":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
			return
		}
		h.joinPool(w, r, poolID)
	case "leave":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
			return
		}
		h.leavePool(w, r, poolID)
	case "withdraw":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
			return
		}
		h.withdraw(w, r, poolID)
	default:
		writeError(w, http.StatusNotFound, "not_found", "Endpoint not found")
	}
}

// HandleStats handles /v1/stats
func (h *PoolHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stats_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// listPools handles GET /v1/pools
func (h *PoolHandler) listPools(w http.ResponseWriter, r *http.Request) {
	pools, err := h.service.ListPools(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_pools_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pools": pools,
	})
}

// createPool handles POST /v1/pools
func (h *PoolHandler) createPool(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing_name", "name is required")
		return
	}
	if req.ContributionAmount == "" {
		writeError(w, http.StatusBadRequest, "missing_contribution_amount", "contribution_amount is required")
		return
	}
	if req.MaxMembers < 2 {
		writeError(w, http.StatusBadRequest, "invalid_max_members", "max_members must be at least 2")
		return
	}
	if req.DurationSeconds <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_duration", "duration_seconds must be positive")
		return
	}

	// Get creator from header or body
	if req.Creator == "" {
		req.Creator = r.Header.Get("X-Member-Address")
	}
	if req.Creator == "" {
		writeError(w, http.StatusBadRequest, "missing_creator", "creator address is required")
		return
	}

	pool, err := h.service.CreatePool(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "create_pool_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, pool)
}

// getPool handles GET /v1/pools/{id}
func (h *PoolHandler) getPool(w http.ResponseWriter, r *http.Request, poolID uint64) {
	pool, err := h.service.GetPool(r.Context(), poolID)
	if err != nil {
		writeError(w, http.StatusNotFound, "pool_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pool)
}

// getMembers handles GET /v1/pools/{id}/members
func (h *PoolHandler) getMembers(w http.ResponseWriter, r *http.Request, poolID uint64) {
	members, err := h.service.GetMembers(r.Context(), poolID)
	if err != nil {
		writeError(w, http.StatusNotFound, "pool_not_found", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pool_id": poolID,
		"members": members,
	})
}

// joinPool handles POST /v1/pools/{id}/join
func (h *PoolHandler) joinPool(w http.ResponseWriter, r *http.Request, poolID uint64) {
	var req types.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	if req.Member == "" {
		req.Member = r.Header.Get("X-Member-Address")
	}
	if req.Member == "" {
		writeError(w, http.StatusBadRequest, "missing_member", "member address is required")
		return
	}
	if req.Amount == "" {
		writeError(w, http.StatusBadRequest, "missing_amount", "amount is required")
		return
	}

	pool, err := h.service.JoinPool(r.Context(), poolID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "join_pool_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, pool)
}

// leavePool handles POST /v1/pools/{id}/leave
func (h *PoolHandler) leavePool(w http.ResponseWriter, r *http.Request, poolID uint64) {
	var req types.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	if req.Member == "" {
		req.Member = r.Header.Get("X-Member-Address")
	}
	if req.Member == "" {
		writeError(w, http.StatusBadRequest, "missing_member", "member address is required")
		return
	}

	resp, err := h.service.LeavePool(r.Context(), poolID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "leave_pool_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// withdraw handles POST /v1/pools/{id}/withdraw
func (h *PoolHandler) withdraw(w http.ResponseWriter, r *http.Request, poolID uint64) {
	var req types.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	if req.Member == "" {
		req.Member = r.Header.Get("X-Member-Address")
	}
	if req.Member == "" {
		writeError(w, http.StatusBadRequest, "missing_member", "member address is required")
		return
	}

	resp, err := h.service.Withdraw(r.Context(), poolID, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "withdraw_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   code,
		"message": message,
	})
}
