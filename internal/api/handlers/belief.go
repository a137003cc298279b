package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foresight-labs/foresight/internal/domain"
	"github.com/foresight-labs/foresight/internal/service"
	"github.com/go-chi/chi/v5"
)

type BeliefHandler struct {
	svc *service.BeliefService
}

func NewBeliefHandler(svc *service.BeliefService) *BeliefHandler {
	return &BeliefHandler{svc: svc}
}

type createBeliefRequest struct {
	Key        string  `json:"key"`
	Hypothesis string  `json:"hypothesis"`
	Prior      float64 `json:"prior"`
}

type beliefResponse struct {
	Key string `json:"key"`
	domain.Belief
}

func (h *BeliefHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBeliefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}
	if req.Hypothesis == "" {
		writeError(w, http.StatusBadRequest, "hypothesis is required")
		return
	}

	b := h.svc.Add(req.Key, req.Hypothesis, req.Prior)
	writeJSON(w, http.StatusCreated, beliefResponse{Key: req.Key, Belief: b})
}

func (h *BeliefHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *BeliefHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	b, ok := h.svc.Get(key)
	if !ok {
		writeError(w, http.StatusNotFound, "belief not found")
		return
	}

	writeJSON(w, http.StatusOK, beliefResponse{Key: key, Belief: b})
}

type addEvidenceRequest struct {
	Likelihood float64 `json:"likelihood"`
}

// AddEvidence applies new evidence to a belief. Evidence for an unknown key
// is accepted and dropped (204), mirroring the tolerant store semantics.
func (h *BeliefHandler) AddEvidence(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req addEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, found, err := h.svc.Update(key, req.Likelihood)
	if err != nil {
		if errors.Is(err, service.ErrDegenerateEvidence) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update belief")
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, beliefResponse{Key: key, Belief: b})
}
