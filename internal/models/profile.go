package models

// ProfileID is the fixed primary key of the single user_profiles row.
const ProfileID uint = 1

// UserProfile is a singleton: every save replaces the row with ID 1.
type UserProfile struct {
	ID                    uint `gorm:"primaryKey"`
	FirstName             string
	LastName              string
	Nickname              string
	DateOfBirth           string
	Gender                string
	HeightCm              float64
	WeightKg              float64
	BloodType             string
	Occupation            string
	Email                 string
	Phone                 string
	City                  string
	Country               string
	EmergencyContactName  string
	EmergencyContactPhone string
	SleepGoalHours        float64
	WaterGoalGlasses      int
	StepsGoal             int
	MeditationMinutesGoal int
	WakeTime              string
	BedTime               string
	Allergies             string
	Medications           string
	Conditions            string
	FavoriteQuote         string
	Hobbies               string
	Bio                   string
}
