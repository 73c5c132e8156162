package http

import (
	"encoding/json"
	"net/http"

	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

// DemoteHandler serves the demotion proxy endpoint
type DemoteHandler struct {
	demoteUC interfaces.Demoter
}

// NewDemoteHandler creates a new demote handler
func NewDemoteHandler(demoteUC interfaces.Demoter) *DemoteHandler {
	return &DemoteHandler{demoteUC: demoteUC}
}

// HandleDemoteOwner changes the role of the member owning the submitted token.
// Upstream refusals are reported in the body with status 200.
func (h *DemoteHandler) HandleDemoteOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.DemoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = model.DefaultTargetRole
	}

	resp, err := h.demoteUC.Demote(ctx, &req)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
