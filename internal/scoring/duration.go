package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reDuration = regexp.MustCompile(`^\d+:\d+$`)

// ParseDurationToSeconds converts "MM:SS" to seconds. Anything that is not
// digits:digits yields 0. The minutes field is unbounded.
func ParseDurationToSeconds(s string) int {
	if !reDuration.MatchString(s) {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return mins*60 + secs
}

// FormatDuration renders seconds as "MM:SS". Seconds are rounded, not floored,
// and a rounded 60 carries into the minutes (59.6 -> "01:00").
func FormatDuration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		return "00:00"
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(RoundHalfUp(math.Mod(seconds, 60)))
	if secs == 60 {
		mins++
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// RoundHalfUp rounds .5 towards positive infinity.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
