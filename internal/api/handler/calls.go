package handler

import (
	"net/http"
	"strconv"

	"qa-insights-go/internal/api/response"
	"qa-insights-go/internal/export"
	"qa-insights-go/internal/scoring"
	"qa-insights-go/internal/store"
	"qa-insights-go/internal/types"
)

type callDetail struct {
	types.ResultItem
	QaScores   types.QaScoreBreakdown `json:"qaScores"`
	Annotation store.Annotation       `json:"annotation"`
	Adherence  scoring.Adherence      `json:"troubleshootingAdherence"`
}

// Call handles GET /api/v1/calls/{hash}.
func (h *Handlers) Call(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	hash := pathParam(r, "hash")
	item, err := h.store.Get(c, hash)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	ann, err := h.store.Annotation(c, hash)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	response.JSON(w, callDetail{
		ResultItem: item,
		QaScores:   scoring.CalculateQaScores(item.Result),
		Annotation: ann,
		Adherence:  scoring.TroubleshootingAdherence(len(item.Result.TroubleshootingFlow), ann.Troubleshooting),
	})
}

// SetNote handles PUT /api/v1/calls/{hash}/note.
func (h *Handlers) SetNote(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.store.SetNote(c, pathParam(r, "hash"), req.Note); err != nil {
		h.storeError(w, r, err)
		return
	}
	response.JSON(w, req)
}

// ToggleReviewed handles POST /api/v1/calls/{hash}/reviewed.
func (h *Handlers) ToggleReviewed(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	var req struct {
		Reviewer string `json:"reviewer"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Reviewer == "" {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "reviewer is required", nil)
		return
	}
	by, err := h.store.ToggleReviewed(c, pathParam(r, "hash"), req.Reviewer)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	response.JSON(w, map[string]any{"reviewed": by != "", "reviewedBy": by})
}

// SetTroubleshooting handles PUT /api/v1/calls/{hash}/troubleshooting/{step}.
func (h *Handlers) SetTroubleshooting(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	step, err := strconv.Atoi(pathParam(r, "step"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "step must be an integer", nil)
		return
	}
	var req struct {
		Status types.TroubleshootingStatus `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}

	hash := pathParam(r, "hash")
	fb, err := h.store.SetTroubleshooting(c, hash, step, req.Status)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	item, err := h.store.Get(c, hash)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	response.JSON(w, map[string]any{
		"troubleshooting": fb,
		"adherence":       scoring.TroubleshootingAdherence(len(item.Result.TroubleshootingFlow), fb),
	})
}

// Report handles GET /api/v1/calls/{hash}/report.
func (h *Handlers) Report(w http.ResponseWriter, r *http.Request) {
	c, ok := h.campaignOf(w, r)
	if !ok {
		return
	}
	hash := pathParam(r, "hash")
	item, err := h.store.Get(c, hash)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	ann, err := h.store.Annotation(c, hash)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	response.Text(w, export.FormatText(item.FileName, item.Result, ann.Note, ann.Troubleshooting, c))
}
