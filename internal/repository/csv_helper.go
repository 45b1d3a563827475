package repository

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/willowmind/willow/internal/models"
)

// ProfileCSVHeader is the exact 27-column header of a profile export. Import
// validates against it verbatim.
var ProfileCSVHeader = []string{
	"FirstName",
	"LastName",
	"Nickname",
	"DateOfBirth",
	"Gender",
	"HeightCm",
	"WeightKg",
	"BloodType",
	"Occupation",
	"Email",
	"Phone",
	"City",
	"Country",
	"EmergencyContactName",
	"EmergencyContactPhone",
	"SleepGoalHours",
	"WaterGoalGlasses",
	"StepsGoal",
	"MeditationMinutesGoal",
	"WakeTime",
	"BedTime",
	"Allergies",
	"Medications",
	"Conditions",
	"FavoriteQuote",
	"Hobbies",
	"Bio",
}

// WriteProfileCSV serializes the single profile row as a header line plus one
// record.
func WriteProfileCSV(writer io.Writer, profile models.UserProfile) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(ProfileCSVHeader); err != nil {
		return err
	}
	if err := csvWriter.Write(profileToRecord(profile)); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// ReadProfileCSV parses a profile export. The boolean is false, with a nil
// error, when the header does not match exactly, the record is missing or
// short, or a numeric column fails to parse; the caller then leaves the
// stored profile untouched.
func ReadProfileCSV(reader io.Reader) (models.UserProfile, bool, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return models.UserProfile{}, false, nil
	}
	if !headerMatches(header) {
		return models.UserProfile{}, false, nil
	}

	record, err := csvReader.Read()
	if err != nil {
		return models.UserProfile{}, false, nil
	}
	if len(record) < len(ProfileCSVHeader) {
		return models.UserProfile{}, false, nil
	}

	profile, ok := recordToProfile(record)
	if !ok {
		return models.UserProfile{}, false, nil
	}
	return profile, true, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(ProfileCSVHeader) {
		return false
	}
	for i, column := range ProfileCSVHeader {
		if header[i] != column {
			return false
		}
	}
	return true
}

func profileToRecord(profile models.UserProfile) []string {
	return []string{
		profile.FirstName,
		profile.LastName,
		profile.Nickname,
		profile.DateOfBirth,
		profile.Gender,
		formatFloat(profile.HeightCm),
		formatFloat(profile.WeightKg),
		profile.BloodType,
		profile.Occupation,
		profile.Email,
		profile.Phone,
		profile.City,
		profile.Country,
		profile.EmergencyContactName,
		profile.EmergencyContactPhone,
		formatFloat(profile.SleepGoalHours),
		strconv.Itoa(profile.WaterGoalGlasses),
		strconv.Itoa(profile.StepsGoal),
		strconv.Itoa(profile.MeditationMinutesGoal),
		profile.WakeTime,
		profile.BedTime,
		profile.Allergies,
		profile.Medications,
		profile.Conditions,
		profile.FavoriteQuote,
		profile.Hobbies,
		profile.Bio,
	}
}

func recordToProfile(record []string) (models.UserProfile, bool) {
	heightCm, ok := parseFloat(record[5])
	if !ok {
		return models.UserProfile{}, false
	}
	weightKg, ok := parseFloat(record[6])
	if !ok {
		return models.UserProfile{}, false
	}
	sleepGoalHours, ok := parseFloat(record[15])
	if !ok {
		return models.UserProfile{}, false
	}
	waterGoalGlasses, ok := parseInt(record[16])
	if !ok {
		return models.UserProfile{}, false
	}
	stepsGoal, ok := parseInt(record[17])
	if !ok {
		return models.UserProfile{}, false
	}
	meditationMinutesGoal, ok := parseInt(record[18])
	if !ok {
		return models.UserProfile{}, false
	}

	return models.UserProfile{
		ID:                    models.ProfileID,
		FirstName:             record[0],
		LastName:              record[1],
		Nickname:              record[2],
		DateOfBirth:           record[3],
		Gender:                record[4],
		HeightCm:              heightCm,
		WeightKg:              weightKg,
		BloodType:             record[7],
		Occupation:            record[8],
		Email:                 record[9],
		Phone:                 record[10],
		City:                  record[11],
		Country:               record[12],
		EmergencyContactName:  record[13],
		EmergencyContactPhone: record[14],
		SleepGoalHours:        sleepGoalHours,
		WaterGoalGlasses:      waterGoalGlasses,
		StepsGoal:             stepsGoal,
		MeditationMinutesGoal: meditationMinutesGoal,
		WakeTime:              record[19],
		BedTime:               record[20],
		Allergies:             record[21],
		Medications:           record[22],
		Conditions:            record[23],
		FavoriteQuote:         record[24],
		Hobbies:               record[25],
		Bio:                   record[26],
	}, true
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
