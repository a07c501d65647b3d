package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-insights-go/internal/store"
	"qa-insights-go/internal/types"
	"qa-insights-go/internal/types/fixtures"
)

const ic = types.CampaignInternetCable

func seeded(t *testing.T) (*store.Store, types.ResultItem) {
	t.Helper()
	s := store.New()
	r := fixtures.InternetCable("Ana", "C-1", 80, 70, 60)
	r.TroubleshootingFlow = []string{"Restart modem", "Check cabling", "Schedule technician"}
	item := fixtures.Item(r)
	require.NoError(t, s.Add(ic, item))
	return s, item
}

func TestAdd_RejectsDuplicateCallID(t *testing.T) {
	s, item := seeded(t)
	dup := item
	dup.ContentHash = "other"

	err := s.Add(ic, dup)
	assert.ErrorIs(t, err, store.ErrDuplicateCallID)
	assert.Equal(t, 1, s.Len(ic))
}

func TestAdd_RejectsDuplicateHash(t *testing.T) {
	s, item := seeded(t)
	other := fixtures.Item(fixtures.InternetCable("Bo", "C-2", 50, 50, 50))
	other.ContentHash = item.ContentHash

	err := s.Add(ic, other)
	assert.ErrorIs(t, err, store.ErrDuplicateHash)
	assert.Equal(t, 1, s.Len(ic))

	got, err := s.Get(ic, item.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, item.FileName, got.FileName)
}

func TestAdd_RejectsMissingHash(t *testing.T) {
	s := store.New()
	item := fixtures.Item(fixtures.InternetCable("Ana", "C-1", 80, 70, 60))
	item.ContentHash = ""

	assert.ErrorIs(t, s.Add(ic, item), store.ErrMissingHash)
	assert.Equal(t, 0, s.Len(ic))
}

func TestAdd_CampaignsAreSeparate(t *testing.T) {
	s, item := seeded(t)
	require.NoError(t, s.Add(types.CampaignBanking, item))

	assert.Equal(t, 1, s.Len(ic))
	assert.Equal(t, 1, s.Len(types.CampaignBanking))
}

func TestItems_CopyInInsertionOrder(t *testing.T) {
	s := store.New()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, s.Add(ic, fixtures.Item(fixtures.GeneralInquiry("x", id, 50))))
	}

	items := s.Items(ic)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Result.CallDetails.CallID)
	assert.Equal(t, "C", items[2].Result.CallDetails.CallID)

	items[0].FileName = "mutated"
	assert.Equal(t, "A.txt", s.Items(ic)[0].FileName)
	assert.NotNil(t, s.Items(types.CampaignBanking))
}

func TestGet(t *testing.T) {
	s, item := seeded(t)

	got, err := s.Get(ic, item.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, item, got)

	_, err = s.Get(ic, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(types.CampaignBanking, item.ContentHash)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNotes(t *testing.T) {
	s, item := seeded(t)

	require.NoError(t, s.SetNote(ic, item.ContentHash, "coach on empathy"))
	a, err := s.Annotation(ic, item.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, "coach on empathy", a.Note)
	assert.Equal(t, map[string]string{item.ContentHash: "coach on empathy"}, s.Notes(ic))

	require.NoError(t, s.SetNote(ic, item.ContentHash, ""))
	assert.Empty(t, s.Notes(ic))

	assert.ErrorIs(t, s.SetNote(ic, "missing", "x"), store.ErrNotFound)
}

func TestToggleReviewed(t *testing.T) {
	s, item := seeded(t)
	h := item.ContentHash

	by, err := s.ToggleReviewed(ic, h, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, "lead-1", by)

	by, err = s.ToggleReviewed(ic, h, "lead-2")
	assert.ErrorIs(t, err, store.ErrReviewedByOther)
	assert.Equal(t, "lead-1", by)

	by, err = s.ToggleReviewed(ic, h, "lead-1")
	require.NoError(t, err)
	assert.Empty(t, by)

	a, err := s.Annotation(ic, h)
	require.NoError(t, err)
	assert.Empty(t, a.ReviewedBy)
}

func TestSetTroubleshooting_TogglesSameStatus(t *testing.T) {
	s, item := seeded(t)
	h := item.ContentHash

	fb, err := s.SetTroubleshooting(ic, h, 0, types.StepChecked)
	require.NoError(t, err)
	assert.Equal(t, types.TroubleshootingFeedback{0: types.StepChecked}, fb)

	fb, err = s.SetTroubleshooting(ic, h, 0, types.StepCrossed)
	require.NoError(t, err)
	assert.Equal(t, types.TroubleshootingFeedback{0: types.StepCrossed}, fb)

	fb, err = s.SetTroubleshooting(ic, h, 0, types.StepCrossed)
	require.NoError(t, err)
	assert.Empty(t, fb)
}

func TestSetTroubleshooting_Errors(t *testing.T) {
	s, item := seeded(t)
	h := item.ContentHash

	_, err := s.SetTroubleshooting(ic, h, 3, types.StepChecked)
	assert.ErrorIs(t, err, store.ErrStepOutOfRange)
	_, err = s.SetTroubleshooting(ic, h, -1, types.StepChecked)
	assert.ErrorIs(t, err, store.ErrStepOutOfRange)
	_, err = s.SetTroubleshooting(ic, h, 0, "maybe")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)
	_, err = s.SetTroubleshooting(ic, "missing", 0, types.StepNA)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAnnotation_ReturnsCopy(t *testing.T) {
	s, item := seeded(t)
	_, err := s.SetTroubleshooting(ic, item.ContentHash, 1, types.StepNA)
	require.NoError(t, err)

	a, err := s.Annotation(ic, item.ContentHash)
	require.NoError(t, err)
	a.Troubleshooting[2] = types.StepChecked

	again, err := s.Annotation(ic, item.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, types.TroubleshootingFeedback{1: types.StepNA}, again.Troubleshooting)
}

func TestConcurrentAdds(t *testing.T) {
	s := store.New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Add(ic, fixtures.Item(fixtures.GeneralInquiry("x", fmt.Sprintf("C-%d", i), 50)))
			_ = s.Items(ic)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len(ic))
}
