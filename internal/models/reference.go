package models

// FunFact and MentalHealthTip are static reference sets: seeded once into an
// empty table and never mutated afterwards.

type FunFact struct {
	ID   uint   `gorm:"primaryKey"`
	Text string `gorm:"not null"`
}

type MentalHealthTip struct {
	ID   uint   `gorm:"primaryKey"`
	Text string `gorm:"not null"`
}

func DefaultFunFacts() []FunFact {
	return []FunFact{
		{Text: "Your brain generates about 20 watts of power, enough to run a dim light bulb."},
		{Text: "Laughing lowers stress hormones and boosts infection-fighting antibodies."},
		{Text: "Spending just 20 minutes in nature measurably reduces cortisol levels."},
		{Text: "Humming stimulates the vagus nerve, which helps calm the nervous system."},
		{Text: "Gratitude journaling has been linked to better sleep quality."},
	}
}

func DefaultMentalHealthTips() []MentalHealthTip {
	return []MentalHealthTip{
		{Text: "Name the feeling. Labeling an emotion reduces its intensity."},
		{Text: "Try the 4-7-8 breath: inhale 4s, hold 7s, exhale 8s."},
		{Text: "Step outside for daylight within an hour of waking."},
		{Text: "Write down three small things that went well today."},
		{Text: "Reach out to one person you trust, even with a short message."},
	}
}
