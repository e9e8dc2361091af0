package pregnancy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/gestation"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/triage"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrContactNotFound = errors.New("emergency contact not found")
	ErrValidation      = errors.New("validation failed")
)

// maxPregnancyDays rejects LMPs so old they are almost certainly typos.
const maxPregnancyDays = 320

// MaxGuideWeek is the latest week the tracker guide accepts.
const MaxGuideWeek = maxPregnancyDays / 7

type Service struct {
	profiles ProfileRepository
	contacts ContactRepository
	composer *triage.Composer
	now      func() time.Time
	loc      *time.Location
}

type Option func(*Service)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone "today" is taken in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithContactRepository sets where emergency contacts are stored. The default
// keeps them in memory.
func WithContactRepository(r ContactRepository) Option {
	return func(s *Service) {
		if r != nil {
			s.contacts = r
		}
	}
}

// NewService wires a service. A nil composer uses the compiled-in catalog
// and advice table.
func NewService(profiles ProfileRepository, composer *triage.Composer, opts ...Option) *Service {
	if composer == nil {
		composer = triage.NewComposer(nil, nil)
	}
	s := &Service{
		profiles: profiles,
		contacts: NewContactRepoMemory(),
		composer: composer,
		now:      time.Now,
		loc:      time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current time in the configured zone.
func (s *Service) Today() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) asOfOrToday(asOf *time.Time) time.Time {
	if asOf != nil {
		return *asOf
	}
	return s.Today()
}

// -- Stateless operations --

func (s *Service) Symptoms() []triage.Symptom {
	return s.composer.Catalog().Symptoms()
}

// Assess computes the gestational state for lmp. A nil asOf means today.
func (s *Service) Assess(lmp *time.Time, asOf *time.Time) Assessment {
	ref := s.asOfOrToday(asOf)
	state, known := gestation.Compute(lmp, ref)
	return NewAssessment(lmp, ref, state, known)
}

// Triage composes advice for an explicit trimester label. Custom symptoms
// without an id are given one.
func (s *Service) Triage(ids []int, custom []triage.CustomSymptom, trimesterLabel string) TriageReport {
	custom = normalizeCustom(custom)
	return TriageReport{
		TrimesterLabel: trimesterLabel,
		CustomSymptoms: custom,
		Result:         s.composer.Compose(ids, custom, trimesterLabel),
	}
}

// TriageForLMP derives the trimester from lmp before composing. An unknown
// LMP composes with an empty label.
func (s *Service) TriageForLMP(lmp *time.Time, asOf *time.Time, ids []int, custom []triage.CustomSymptom) (Assessment, TriageReport) {
	a := s.Assess(lmp, asOf)
	return a, s.Triage(ids, custom, a.TrimesterLabel())
}

func normalizeCustom(custom []triage.CustomSymptom) []triage.CustomSymptom {
	out := make([]triage.CustomSymptom, 0, len(custom))
	for _, cs := range custom {
		name := strings.TrimSpace(cs.Name)
		if name == "" {
			continue
		}
		if cs.ID == "" {
			out = append(out, triage.NewCustomSymptom(name))
			continue
		}
		out = append(out, triage.CustomSymptom{ID: cs.ID, Name: name})
	}
	return out
}

// -- Profiles --

func (s *Service) validateProfile(p *Profile) error {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	if p.FirstName == "" {
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if p.LastName == "" {
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	}
	if p.Email != nil {
		e := strings.TrimSpace(*p.Email)
		if e == "" {
			p.Email = nil
		} else if err := validate.Var(e, "email"); err != nil {
			return fmt.Errorf("%w: invalid email %q", ErrValidation, e)
		} else {
			p.Email = &e
		}
	}
	if p.LastMenstrualPeriod != nil {
		if err := s.validateLMP(*p.LastMenstrualPeriod); err != nil {
			return err
		}
	}
	if p.DateOfBirth != nil && s.dateAfterToday(*p.DateOfBirth) {
		return fmt.Errorf("%w: date_of_birth cannot be in the future", ErrValidation)
	}
	p.ProfileCompleted = p.LastMenstrualPeriod != nil
	return nil
}

func (s *Service) todayDate() time.Time {
	y, m, d := s.Today().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) dateAfterToday(t time.Time) bool {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).After(s.todayDate())
}

func (s *Service) validateLMP(lmp time.Time) error {
	if s.dateAfterToday(lmp) {
		return fmt.Errorf("%w: last_menstrual_period cannot be in the future", ErrValidation)
	}
	y, m, d := lmp.Date()
	if s.todayDate().Sub(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) > maxPregnancyDays*24*time.Hour {
		return fmt.Errorf("%w: last_menstrual_period is more than %d days ago", ErrValidation, maxPregnancyDays)
	}
	return nil
}

func (s *Service) CreateProfile(ctx context.Context, p *Profile) error {
	if err := s.validateProfile(p); err != nil {
		return err
	}
	return s.profiles.Create(ctx, p)
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, p *Profile) error {
	if err := s.validateProfile(p); err != nil {
		return err
	}
	return s.profiles.Update(ctx, p)
}

// DeleteProfile removes the profile and its emergency contacts.
func (s *Service) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		return err
	}
	return s.contacts.DeleteByProfile(ctx, id)
}

func (s *Service) ListProfiles(ctx context.Context, limit, offset int) ([]*Profile, int, error) {
	return s.profiles.List(ctx, limit, offset)
}

// CompleteSetup records the LMP and marks the profile complete.
func (s *Service) CompleteSetup(ctx context.Context, id uuid.UUID, lmp time.Time) (*Profile, error) {
	if err := s.validateLMP(lmp); err != nil {
		return nil, err
	}
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.LastMenstrualPeriod = &lmp
	p.ProfileCompleted = true
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AssessProfile assesses the stored LMP. A profile without one is unknown,
// not an error.
func (s *Service) AssessProfile(ctx context.Context, id uuid.UUID, asOf *time.Time) (Assessment, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	return s.Assess(p.LastMenstrualPeriod, asOf), nil
}

func (s *Service) TriageProfile(ctx context.Context, id uuid.UUID, asOf *time.Time, ids []int, custom []triage.CustomSymptom) (*ProfileTriage, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a, report := s.TriageForLMP(p.LastMenstrualPeriod, asOf, ids, custom)
	return &ProfileTriage{ProfileID: p.ID, Assessment: a, Triage: report}, nil
}

// -- Emergency contacts --

func validateContact(c *EmergencyContact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Relationship = strings.TrimSpace(c.Relationship)
	if c.Name == "" {
		return fmt.Errorf("%w: contact_name is required", ErrValidation)
	}
	if c.Phone == "" {
		return fmt.Errorf("%w: contact_phone is required", ErrValidation)
	}
	return nil
}

// AddContact stores c under profileID. The profile must exist.
func (s *Service) AddContact(ctx context.Context, profileID uuid.UUID, c *EmergencyContact) error {
	if err := validateContact(c); err != nil {
		return err
	}
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return err
	}
	c.ProfileID = profileID
	return s.contacts.Create(ctx, c)
}

func (s *Service) ListContacts(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*EmergencyContact, int, error) {
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return nil, 0, err
	}
	return s.contacts.ListByProfile(ctx, profileID, limit, offset)
}

// UpdateContact replaces the contact c.ID under profileID.
func (s *Service) UpdateContact(ctx context.Context, profileID uuid.UUID, c *EmergencyContact) error {
	if err := validateContact(c); err != nil {
		return err
	}
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return err
	}
	c.ProfileID = profileID
	return s.contacts.Update(ctx, c)
}

func (s *Service) DeleteContact(ctx context.Context, profileID, id uuid.UUID) error {
	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		return err
	}
	return s.contacts.Delete(ctx, profileID, id)
}
