package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qa-insights-go/internal/types"
)

func TestTroubleshootingAdherence(t *testing.T) {
	t.Run("no feedback", func(t *testing.T) {
		assert.Equal(t, Adherence{}, TroubleshootingAdherence(4, nil))
	})

	t.Run("counts checked over applicable", func(t *testing.T) {
		fb := types.TroubleshootingFeedback{0: types.StepChecked, 1: types.StepCrossed, 2: types.StepNA, 3: types.StepChecked}
		got := TroubleshootingAdherence(4, fb)
		assert.Equal(t, 2, got.Followed)
		assert.Equal(t, 3, got.Applicable)
		assert.InDelta(t, 66.666, got.Percent, 0.01)
		assert.True(t, got.Scored)
	})

	t.Run("unreviewed steps stay applicable", func(t *testing.T) {
		got := TroubleshootingAdherence(5, types.TroubleshootingFeedback{0: types.StepChecked})
		assert.Equal(t, 5, got.Applicable)
		assert.InDelta(t, 20, got.Percent, 1e-9)
	})

	t.Run("all n/a is not scored", func(t *testing.T) {
		got := TroubleshootingAdherence(2, types.TroubleshootingFeedback{0: types.StepNA, 1: types.StepNA})
		assert.False(t, got.Scored)
		assert.Equal(t, 0, got.Applicable)
	})
}
