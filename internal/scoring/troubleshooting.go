package scoring

import "qa-insights-go/internal/types"

// Adherence summarises reviewer feedback on a call's troubleshooting steps.
type Adherence struct {
	Followed   int     `json:"followed"`
	Applicable int     `json:"applicable"`
	Percent    float64 `json:"percent"`
	// Scored is false when no feedback exists or every step is marked n/a.
	Scored bool `json:"scored"`
}

// TroubleshootingAdherence counts checked steps out of the steps not marked n/a.
func TroubleshootingAdherence(steps int, feedback types.TroubleshootingFeedback) Adherence {
	if steps == 0 || feedback == nil {
		return Adherence{}
	}
	na, checked := 0, 0
	for _, st := range feedback {
		switch st {
		case types.StepNA:
			na++
		case types.StepChecked:
			checked++
		}
	}
	a := Adherence{Followed: checked, Applicable: steps - na}
	if a.Applicable > 0 {
		a.Percent = float64(a.Followed) / float64(a.Applicable) * 100
		a.Scored = true
	}
	return a
}
