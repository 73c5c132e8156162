package http

import (
	"encoding/json"
	"net/http"

	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

// RunHandler exposes the batch run controller
type RunHandler struct {
	runner interfaces.Runner
}

// NewRunHandler creates a new run handler
func NewRunHandler(runner interfaces.Runner) *RunHandler {
	return &RunHandler{runner: runner}
}

type startRunRequest struct {
	Input string           `json:"input"`
	Role  model.TargetRole `json:"role"`
}

// HandleStart starts a run in the background and returns its ID
func (h *RunHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req startRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = model.DefaultTargetRole
	}

	runID, err := h.runner.Start(ctx, req.Input, req.Role, nil)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusAccepted, map[string]string{
		"run_id": runID.String(),
	})
}

// HandleSnapshot returns the current state, stats and results
func (h *RunHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.runner.Snapshot())
}

// HandleClear drops the last run's results
func (h *RunHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.runner.Clear(ctx); err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{
		"message": "results cleared",
	})
}

// HandleCancel stops the active run
func (h *RunHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.runner.Cancel(ctx); err != nil {
		handleError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusAccepted, map[string]string{
		"message": "cancellation requested",
	})
}
