package pregnancy

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/gestation"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/triage"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Profile maps to the pregnancy_profile table.
type Profile struct {
	ID                  uuid.UUID  `db:"id" json:"id" yaml:"id"`
	FirstName           string     `db:"first_name" json:"first_name" yaml:"first_name"`
	LastName            string     `db:"last_name" json:"last_name" yaml:"last_name"`
	Email               *string    `db:"email" json:"email,omitempty" yaml:"email,omitempty"`
	DateOfBirth         *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	LastMenstrualPeriod *time.Time `db:"last_menstrual_period" json:"last_menstrual_period,omitempty" yaml:"last_menstrual_period,omitempty"`
	ProfileCompleted    bool       `db:"profile_completed" json:"profile_completed" yaml:"profile_completed"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at" yaml:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at" yaml:"updated_at"`
}

func (p *Profile) clone() *Profile {
	cp := *p
	if p.Email != nil {
		e := *p.Email
		cp.Email = &e
	}
	if p.DateOfBirth != nil {
		d := *p.DateOfBirth
		cp.DateOfBirth = &d
	}
	if p.LastMenstrualPeriod != nil {
		d := *p.LastMenstrualPeriod
		cp.LastMenstrualPeriod = &d
	}
	return &cp
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// ParseOptionalDate is ParseDate for optional fields: "" yields nil.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Status values of an Assessment.
const (
	StatusKnown   = "known"
	StatusUnknown = "unknown"
)

// Assessment is the presentation of a gestational state. Gestation is nil
// when the LMP is unknown.
type Assessment struct {
	Status    string     `json:"status" yaml:"status"`
	AsOf      string     `json:"as_of" yaml:"as_of"`
	Gestation *Gestation `json:"gestation,omitempty" yaml:"gestation,omitempty"`
}

type Gestation struct {
	LastMenstrualPeriod   string `json:"last_menstrual_period" yaml:"last_menstrual_period"`
	Weeks                 int    `json:"weeks" yaml:"weeks"`
	Days                  int    `json:"days" yaml:"days"`
	Trimester             int    `json:"trimester" yaml:"trimester"`
	TrimesterLabel        string `json:"trimester_label" yaml:"trimester_label"`
	TrimesterName         string `json:"trimester_name" yaml:"trimester_name"`
	TrimesterWeeks        string `json:"trimester_weeks" yaml:"trimester_weeks"`
	DueDate               string `json:"due_date" yaml:"due_date"`
	RemainingWeeks        int    `json:"remaining_weeks" yaml:"remaining_weeks"`
	ProgressPercentage    int    `json:"progress_percentage" yaml:"progress_percentage"`
	BabySize              string `json:"baby_size" yaml:"baby_size"`
	BabySizeSentence      string `json:"baby_size_sentence" yaml:"baby_size_sentence"`
	Headline              string `json:"headline" yaml:"headline"`
	Overdue               bool   `json:"overdue" yaml:"overdue"`
	PostnatalCareEligible bool   `json:"postnatal_care_eligible" yaml:"postnatal_care_eligible"`

	Guide gestation.WeekGuide `json:"guide" yaml:"guide"`
}

// NewAssessment renders the result of gestation.Compute.
func NewAssessment(lmp *time.Time, asOf time.Time, state gestation.State, known bool) Assessment {
	a := Assessment{Status: StatusUnknown, AsOf: formatDate(asOf)}
	if !known || lmp == nil {
		return a
	}
	a.Status = StatusKnown
	a.Gestation = &Gestation{
		LastMenstrualPeriod:   formatDate(*lmp),
		Weeks:                 state.TotalWeeks,
		Days:                  state.ExtraDays,
		Trimester:             int(state.Trimester),
		TrimesterLabel:        state.Trimester.Label(),
		TrimesterName:         state.Trimester.Name(),
		TrimesterWeeks:        state.Trimester.WeekRange(),
		DueDate:               formatDate(state.DueDate),
		RemainingWeeks:        state.RemainingWeeks,
		ProgressPercentage:    state.ProgressPercentage,
		BabySize:              state.BabySizeLabel,
		BabySizeSentence:      state.BabySizeSentence(),
		Headline:              state.Headline(),
		Overdue:               state.IsOverdue,
		PostnatalCareEligible: state.PostnatalCareEligible(),
		Guide:                 gestation.Guide(state.TotalWeeks),
	}
	return a
}

// TrimesterLabel is the label triage keys advice by, or "" when unknown.
func (a Assessment) TrimesterLabel() string {
	if a.Gestation == nil {
		return ""
	}
	return a.Gestation.TrimesterLabel
}

// TriageReport is a triage result together with the trimester label it was
// composed for.
type TriageReport struct {
	TrimesterLabel string                 `json:"trimester" yaml:"trimester"`
	CustomSymptoms []triage.CustomSymptom `json:"custom_symptoms" yaml:"custom_symptoms"`
	triage.Result  `yaml:",inline"`
}

// ProfileTriage adds the gestational assessment the trimester came from.
type ProfileTriage struct {
	ProfileID  uuid.UUID    `json:"profile_id" yaml:"profile_id"`
	Assessment Assessment   `json:"assessment" yaml:"assessment"`
	Triage     TriageReport `json:"triage" yaml:"triage"`
}
