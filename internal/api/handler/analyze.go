package handler

import (
	"errors"
	"net/http"
	"strings"

	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/processor"
)

// maxBatch bounds one batch upload.
const maxBatch = 50

type analyzeRequest struct {
	FileName   string `json:"fileName"`
	Transcript string `json:"transcript"`
}

// Analyze handles POST /api/v1/analyze.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	var req analyzeRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.FileName) == "" {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "fileName is required", nil)
		return
	}

	item, err := h.ingestor.Process(r.Context(), c, req.FileName, req.Transcript)
	if errors.Is(err, processor.ErrEmptyTranscript) {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "transcript is required", nil)
		return
	}
	if err != nil {
		h.log.WithRequest(r).WithError(err).Warn("analysis failed")
		response.Error(w, http.StatusBadGateway, "ANALYSIS_FAILED", err.Error(), nil)
		return
	}

	if err := h.store.Add(c, item); err != nil {
		h.storeError(w, r, err)
		return
	}
	response.Created(w, item)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch. Each upload succeeds or
// fails on its own; the response lists outcomes in upload order.
func (h *Handlers) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	var req struct {
		Uploads []processor.Upload `json:"uploads"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Uploads) == 0 || len(req.Uploads) > maxBatch {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "uploads must hold 1 to 50 transcripts", nil)
		return
	}

	results := h.ingestor.ProcessBatch(r.Context(), c, req.Uploads)
	for i := range results {
		if results[i].Item == nil {
			continue
		}
		if err := h.store.Add(c, *results[i].Item); err != nil {
			results[i].Item = nil
			results[i].Error = err.Error()
		}
	}
	response.JSON(w, results)
}
