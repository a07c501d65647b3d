// internal/store/store.go
package store

import (
	"errors"
	"fmt"
	"sync"

	"qa-insights-go/internal/types"
)

var (
	ErrNotFound        = errors.New("call not found")
	ErrDuplicateCallID = errors.New("call id already analyzed")
	ErrDuplicateHash   = errors.New("content already analyzed")
	ErrMissingHash     = errors.New("content hash is required")
	ErrReviewedByOther = errors.New("call already reviewed by another reviewer")
	ErrStepOutOfRange  = errors.New("troubleshooting step out of range")
	ErrInvalidStatus   = errors.New("invalid troubleshooting status")
)

// Annotation is everything reviewers attach to a call. It lives beside the
// record, keyed by content hash, and never inside it.
type Annotation struct {
	Note            string                        `json:"note"`
	ReviewedBy      string                        `json:"reviewedBy,omitempty"`
	Troubleshooting types.TroubleshootingFeedback `json:"troubleshooting"`
}

type campaignData struct {
	items       []types.ResultItem
	byHash      map[string]int
	callIDs     map[string]struct{}
	annotations map[string]*Annotation
}

func newCampaignData() *campaignData {
	return &campaignData{
		byHash:      make(map[string]int),
		callIDs:     make(map[string]struct{}),
		annotations: make(map[string]*Annotation),
	}
}

// Store is the in-memory record collection, one per campaign.
// Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	campaigns map[types.Campaign]*campaignData
}

func New() *Store {
	return &Store{campaigns: make(map[types.Campaign]*campaignData)}
}

// data must be called with mu held for writing when create is true.
func (s *Store) data(c types.Campaign, create bool) *campaignData {
	d, ok := s.campaigns[c]
	if !ok && create {
		d = newCampaignData()
		s.campaigns[c] = d
	}
	return d
}

// Add appends an analyzed call. The content hash addresses the call and its
// annotations, so it must be set and unique; a repeated call id is rejected too.
func (s *Store) Add(c types.Campaign, item types.ResultItem) error {
	if item.ContentHash == "" {
		return ErrMissingHash
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.data(c, true)
	id := item.Result.CallDetails.CallID
	if _, dup := d.callIDs[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateCallID, id)
	}
	if _, dup := d.byHash[item.ContentHash]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateHash, item.ContentHash)
	}
	d.callIDs[id] = struct{}{}
	d.byHash[item.ContentHash] = len(d.items)
	d.items = append(d.items, item)
	return nil
}

// Items returns a copy of the campaign's calls in insertion order.
func (s *Store) Items(c types.Campaign) []types.ResultItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.data(c, false)
	if d == nil {
		return []types.ResultItem{}
	}
	out := make([]types.ResultItem, len(d.items))
	copy(out, d.items)
	return out
}

func (s *Store) Len(c types.Campaign) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.data(c, false); d != nil {
		return len(d.items)
	}
	return 0
}

func (s *Store) Get(c types.Campaign, hash string) (types.ResultItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := s.data(c, false)
	if d == nil {
		return types.ResultItem{}, ErrNotFound
	}
	i, ok := d.byHash[hash]
	if !ok {
		return types.ResultItem{}, ErrNotFound
	}
	return d.items[i], nil
}

// Annotation returns a copy of the call's annotation; unannotated calls get the zero value.
func (s *Store) Annotation(c types.Campaign, hash string) (Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, err := s.lookup(c, hash)
	if err != nil {
		return Annotation{}, err
	}
	a, ok := d.annotations[hash]
	if !ok {
		return Annotation{Troubleshooting: types.TroubleshootingFeedback{}}, nil
	}
	return a.clone(), nil
}

// Notes returns every non-empty note in the campaign keyed by content hash.
func (s *Store) Notes(c types.Campaign) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string)
	d := s.data(c, false)
	if d == nil {
		return out
	}
	for h, a := range d.annotations {
		if a.Note != "" {
			out[h] = a.Note
		}
	}
	return out
}

func (s *Store) SetNote(c types.Campaign, hash, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, _, err := s.annotation(c, hash)
	if err != nil {
		return err
	}
	a.Note = note
	return nil
}

// ToggleReviewed marks the call reviewed by reviewer, or clears the mark when
// reviewer already holds it. A call held by someone else is left unchanged.
// It returns the reviewer now holding the call, empty when cleared.
func (s *Store) ToggleReviewed(c types.Campaign, hash, reviewer string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, _, err := s.annotation(c, hash)
	if err != nil {
		return "", err
	}
	switch a.ReviewedBy {
	case "":
		a.ReviewedBy = reviewer
	case reviewer:
		a.ReviewedBy = ""
	default:
		return a.ReviewedBy, ErrReviewedByOther
	}
	return a.ReviewedBy, nil
}

// SetTroubleshooting records the reviewer's status for one troubleshooting
// step. Setting the status a step already has clears it.
func (s *Store) SetTroubleshooting(c types.Campaign, hash string, step int, status types.TroubleshootingStatus) (types.TroubleshootingFeedback, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, item, err := s.annotation(c, hash)
	if err != nil {
		return nil, err
	}
	if step < 0 || step >= len(item.Result.TroubleshootingFlow) {
		return nil, fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	if a.Troubleshooting[step] == status {
		delete(a.Troubleshooting, step)
	} else {
		a.Troubleshooting[step] = status
	}
	return a.clone().Troubleshooting, nil
}

func (s *Store) lookup(c types.Campaign, hash string) (*campaignData, error) {
	d := s.data(c, false)
	if d == nil {
		return nil, ErrNotFound
	}
	if _, ok := d.byHash[hash]; !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// annotation must be called with mu held for writing.
func (s *Store) annotation(c types.Campaign, hash string) (*Annotation, types.ResultItem, error) {
	d, err := s.lookup(c, hash)
	if err != nil {
		return nil, types.ResultItem{}, err
	}
	a, ok := d.annotations[hash]
	if !ok {
		a = &Annotation{Troubleshooting: types.TroubleshootingFeedback{}}
		d.annotations[hash] = a
	}
	return a, d.items[d.byHash[hash]], nil
}

func (a *Annotation) clone() Annotation {
	out := Annotation{Note: a.Note, ReviewedBy: a.ReviewedBy, Troubleshooting: make(types.TroubleshootingFeedback, len(a.Troubleshooting))}
	for k, v := range a.Troubleshooting {
		out.Troubleshooting[k] = v
	}
	return out
}
