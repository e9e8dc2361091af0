// Package gestation converts a last menstrual period (LMP) into a gestational
// state: completed weeks, trimester, due date, progress and a baby size
// comparison. Every function here is pure; "today" is always passed in.
package gestation

import (
	"fmt"
	"math"
	"time"
)

const (
	daysPerWeek   = 7
	termWeeks     = 40
	termDays      = termWeeks * daysPerWeek
	secondsPerDay = 24 * 60 * 60
)

// State is the gestational state derived from an LMP and a reference date.
// Trimester and BabySizeLabel follow TotalWeeks; DueDate follows the LMP.
type State struct {
	TotalWeeks         int       `json:"total_weeks"`
	ExtraDays          int       `json:"extra_days"`
	Trimester          Trimester `json:"trimester"`
	DueDate            time.Time `json:"due_date"`
	RemainingWeeks     int       `json:"remaining_weeks"`
	ProgressPercentage int       `json:"progress_percentage"`
	BabySizeLabel      string    `json:"baby_size_label"`
	IsOverdue          bool      `json:"is_overdue"`
}

// Compute derives the gestational state for lmp as of asOf. A nil lmp yields
// the unknown state (zero State, false). An LMP after asOf clamps the elapsed
// weeks and days to zero.
func Compute(lmp *time.Time, asOf time.Time) (State, bool) {
	if lmp == nil {
		return State{}, false
	}

	start := calendarDate(*lmp)
	today := calendarDate(asOf)

	elapsed := daysBetween(start, today)
	if elapsed < 0 {
		elapsed = 0
	}
	totalWeeks := elapsed / daysPerWeek

	dueDate := DueDate(*lmp)
	remainingDays := daysBetween(today, dueDate)
	if remainingDays < 0 {
		remainingDays = 0
	}

	return State{
		TotalWeeks:         totalWeeks,
		ExtraDays:          elapsed % daysPerWeek,
		Trimester:          TrimesterForWeeks(totalWeeks),
		DueDate:            dueDate,
		RemainingWeeks:     remainingDays / daysPerWeek,
		ProgressPercentage: ProgressForWeeks(totalWeeks),
		BabySizeLabel:      BabySizeForWeeks(totalWeeks),
		IsOverdue:          totalWeeks > termWeeks,
	}, true
}

// DueDate returns lmp + 280 days as a calendar date (UTC midnight).
func DueDate(lmp time.Time) time.Time {
	return calendarDate(lmp).AddDate(0, 0, termDays)
}

// ProgressForWeeks returns round(weeks/40*100) capped at 100.
func ProgressForWeeks(weeks int) int {
	if weeks <= 0 {
		return 0
	}
	pct := int(math.Round(float64(weeks) * 100 / termWeeks))
	if pct > 100 {
		return 100
	}
	return pct
}

// Headline is the short journey message shown next to the progress bar.
func (s State) Headline() string {
	if s.IsOverdue {
		return "Baby is ready to meet you!"
	}
	return fmt.Sprintf("%d weeks to go!", s.RemainingWeeks)
}

func (s State) BabySizeSentence() string {
	return fmt.Sprintf("Your baby is about the size of a %s!", s.BabySizeLabel)
}

// PostnatalCareEligible reports whether postnatal care content should be
// offered: third trimester or overdue.
func (s State) PostnatalCareEligible() bool {
	return s.Trimester == Third || s.IsOverdue
}

// calendarDate drops the time of day, keeping the date as seen in t's own
// location, and pins it to UTC so day arithmetic is DST-free.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
