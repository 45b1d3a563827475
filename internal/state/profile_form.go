package state

import (
	"fmt"
	"strconv"

	"github.com/willowmind/willow/internal/models"
)

// FieldKind tells the form layer what input to render for a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldDate
	FieldTime
	FieldMultiline
)

// FormField binds one profile attribute to the edit form through an explicit
// accessor pair. The list below is the compile-time replacement for the
// reflective property binding the profile screen would otherwise need.
type FormField struct {
	Key  string
	Kind FieldKind
	Get  func(profile *models.UserProfile) string
	Set  func(profile *models.UserProfile, value string) error
}

func textField(key string, kind FieldKind, get func(*models.UserProfile) *string) FormField {
	return FormField{
		Key:  key,
		Kind: kind,
		Get:  func(profile *models.UserProfile) string { return *get(profile) },
		Set: func(profile *models.UserProfile, value string) error {
			*get(profile) = value
			return nil
		},
	}
}

func floatField(key string, get func(*models.UserProfile) *float64) FormField {
	return FormField{
		Key:  key,
		Kind: FieldNumber,
		Get: func(profile *models.UserProfile) string {
			return strconv.FormatFloat(*get(profile), 'f', -1, 64)
		},
		Set: func(profile *models.UserProfile, value string) error {
			if value == "" {
				*get(profile) = 0
				return nil
			}
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			*get(profile) = parsed
			return nil
		},
	}
}

func intField(key string, get func(*models.UserProfile) *int) FormField {
	return FormField{
		Key:  key,
		Kind: FieldNumber,
		Get: func(profile *models.UserProfile) string {
			return strconv.Itoa(*get(profile))
		},
		Set: func(profile *models.UserProfile, value string) error {
			if value == "" {
				*get(profile) = 0
				return nil
			}
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			*get(profile) = parsed
			return nil
		},
	}
}

// ProfileFormFields enumerates all 27 editable profile attributes in display
// order.
func ProfileFormFields() []FormField {
	return []FormField{
		textField("FirstName", FieldText, func(p *models.UserProfile) *string { return &p.FirstName }),
		textField("LastName", FieldText, func(p *models.UserProfile) *string { return &p.LastName }),
		textField("Nickname", FieldText, func(p *models.UserProfile) *string { return &p.Nickname }),
		textField("DateOfBirth", FieldDate, func(p *models.UserProfile) *string { return &p.DateOfBirth }),
		textField("Gender", FieldText, func(p *models.UserProfile) *string { return &p.Gender }),
		floatField("HeightCm", func(p *models.UserProfile) *float64 { return &p.HeightCm }),
		floatField("WeightKg", func(p *models.UserProfile) *float64 { return &p.WeightKg }),
		textField("BloodType", FieldText, func(p *models.UserProfile) *string { return &p.BloodType }),
		textField("Occupation", FieldText, func(p *models.UserProfile) *string { return &p.Occupation }),
		textField("Email", FieldText, func(p *models.UserProfile) *string { return &p.Email }),
		textField("Phone", FieldText, func(p *models.UserProfile) *string { return &p.Phone }),
		textField("City", FieldText, func(p *models.UserProfile) *string { return &p.City }),
		textField("Country", FieldText, func(p *models.UserProfile) *string { return &p.Country }),
		textField("EmergencyContactName", FieldText, func(p *models.UserProfile) *string { return &p.EmergencyContactName }),
		textField("EmergencyContactPhone", FieldText, func(p *models.UserProfile) *string { return &p.EmergencyContactPhone }),
		floatField("SleepGoalHours", func(p *models.UserProfile) *float64 { return &p.SleepGoalHours }),
		intField("WaterGoalGlasses", func(p *models.UserProfile) *int { return &p.WaterGoalGlasses }),
		intField("StepsGoal", func(p *models.UserProfile) *int { return &p.StepsGoal }),
		intField("MeditationMinutesGoal", func(p *models.UserProfile) *int { return &p.MeditationMinutesGoal }),
		textField("WakeTime", FieldTime, func(p *models.UserProfile) *string { return &p.WakeTime }),
		textField("BedTime", FieldTime, func(p *models.UserProfile) *string { return &p.BedTime }),
		textField("Allergies", FieldMultiline, func(p *models.UserProfile) *string { return &p.Allergies }),
		textField("Medications", FieldMultiline, func(p *models.UserProfile) *string { return &p.Medications }),
		textField("Conditions", FieldMultiline, func(p *models.UserProfile) *string { return &p.Conditions }),
		textField("FavoriteQuote", FieldText, func(p *models.UserProfile) *string { return &p.FavoriteQuote }),
		textField("Hobbies", FieldText, func(p *models.UserProfile) *string { return &p.Hobbies }),
		textField("Bio", FieldMultiline, func(p *models.UserProfile) *string { return &p.Bio }),
	}
}
