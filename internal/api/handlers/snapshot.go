package handlers

import (
	"net/http"

	"github.com/foresight-labs/foresight/internal/service"
)

type SnapshotHandler struct {
	svc *service.SnapshotService
}

func NewSnapshotHandler(svc *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{svc: svc}
}

// Get serves the combined planning snapshot pre-rendered by the service so
// the pretty-printed formatting and key order stay byte-stable.
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Render()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render snapshot")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
