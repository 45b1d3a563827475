package state

import (
	"fmt"
	"sync"

	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/models"
	"github.com/willowmind/willow/internal/repository"
	"github.com/willowmind/willow/internal/services"
)

// ProfileState mediates the profile screen. Saved holds the persisted row as
// a live query; the draft holds in-memory edits that nobody outside this
// container sees until Save. Destroying the container without saving loses
// the draft.
type ProfileState struct {
	repo  *repository.ProfileRepository
	Saved *LiveQuery[models.UserProfile]

	mu     sync.Mutex
	draft  models.UserProfile
	fields map[string]FormField
	dirty  bool
}

func NewProfileState(bus *db.ChangeBus, repo *repository.ProfileRepository) *ProfileState {
	fields := make(map[string]FormField)
	for _, field := range ProfileFormFields() {
		fields[field.Key] = field
	}
	return &ProfileState{
		repo:   repo,
		Saved:  NewLiveQuery(bus, repo.Load, db.TableUserProfiles),
		fields: fields,
	}
}

// BeginEdit (re)loads the draft from the persisted row, dropping any
// unsaved edits.
func (s *ProfileState) BeginEdit() error {
	profile, err := s.repo.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.draft = profile
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// SetField applies one form edit to the draft only.
func (s *ProfileState) SetField(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	field, ok := s.fields[key]
	if !ok {
		return fmt.Errorf("unknown profile field %q", key)
	}
	if err := field.Set(&s.draft, value); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// Field reads one field from the draft.
func (s *ProfileState) Field(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	field, ok := s.fields[key]
	if !ok {
		return "", fmt.Errorf("unknown profile field %q", key)
	}
	return field.Get(&s.draft), nil
}

// Draft returns a copy of the current in-memory edits.
func (s *ProfileState) Draft() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *ProfileState) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Save persists the draft. The saved live query re-emits once the upsert
// commits.
func (s *ProfileState) Save() <-chan error {
	s.mu.Lock()
	draft := s.draft
	s.mu.Unlock()
	return dispatch(func() error {
		if err := s.repo.Save(draft); err != nil {
			return err
		}
		s.mu.Lock()
		s.dirty = false
		s.mu.Unlock()
		return nil
	})
}

// Discard drops unsaved edits, restoring the draft to the persisted row.
func (s *ProfileState) Discard() error {
	return s.BeginEdit()
}

// BodyStats derives BMI figures from the draft's height and weight.
func (s *ProfileState) BodyStats() (bmi float64, category string, idealMin float64, idealMax float64) {
	s.mu.Lock()
	heightCm, weightKg := s.draft.HeightCm, s.draft.WeightKg
	s.mu.Unlock()

	bmi = services.BMI(weightKg, heightCm)
	category = services.BMICategory(bmi)
	idealMin, idealMax = services.IdealWeightRange(heightCm)
	return bmi, category, idealMin, idealMax
}

func (s *ProfileState) Close() {
	s.Saved.Close()
}
