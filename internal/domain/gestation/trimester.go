package gestation

import "strings"

// Trimester is one of the three pregnancy phases, ordered First < Second < Third.
type Trimester int

const (
	First  Trimester = 1
	Second Trimester = 2
	Third  Trimester = 3
)

const (
	lastWeekOfFirst  = 12
	lastWeekOfSecond = 27
)

// TrimesterForWeeks buckets completed gestational weeks into a trimester.
// Boundaries are inclusive on the lower trimester: week 12 is still First and
// week 27 is still Second.
func TrimesterForWeeks(weeks int) Trimester {
	switch {
	case weeks <= lastWeekOfFirst:
		return First
	case weeks <= lastWeekOfSecond:
		return Second
	default:
		return Third
	}
}

var trimesterLabels = map[Trimester]string{
	First:  "1st Trimester",
	Second: "2nd Trimester",
	Third:  "3rd Trimester",
}

var trimesterNames = map[Trimester]string{
	First:  "First Trimester",
	Second: "Second Trimester",
	Third:  "Third Trimester",
}

var trimesterWeekRanges = map[Trimester]string{
	First:  "1-12 weeks",
	Second: "13-27 weeks",
	Third:  "28-40 weeks",
}

// Label returns the ordinal label used as the key of the symptom advice table,
// e.g. "2nd Trimester". Out-of-range values return "".
func (t Trimester) Label() string {
	return trimesterLabels[t]
}

// Name returns the long display name, e.g. "Second Trimester".
func (t Trimester) Name() string {
	return trimesterNames[t]
}

// WeekRange returns the human-readable week span of the trimester.
func (t Trimester) WeekRange() string {
	return trimesterWeekRanges[t]
}

func (t Trimester) Valid() bool {
	return t >= First && t <= Third
}

// ParseTrimesterLabel is the inverse of Label. Matching ignores case and
// surrounding whitespace.
func ParseTrimesterLabel(label string) (Trimester, bool) {
	label = strings.TrimSpace(label)
	for t, l := range trimesterLabels {
		if strings.EqualFold(l, label) {
			return t, true
		}
	}
	return 0, false
}
