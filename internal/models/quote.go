package models

type Quote struct {
	ID       string `gorm:"primaryKey"`
	Text     string `gorm:"not null"`
	Author   string `gorm:"not null;default:''"`
	Category string `gorm:"not null;default:''"`
	Favorite bool   `gorm:"not null;default:false"`
}

// DefaultQuotes is the reference set installed on first read of an empty
// quotes table. IDs are fixed so they stay stable across app runs.
func DefaultQuotes() []Quote {
	return []Quote{
		{ID: "q-001", Text: "The best way out is always through.", Author: "Robert Frost", Category: "perseverance"},
		{ID: "q-002", Text: "You do not have to be good.", Author: "Mary Oliver", Category: "self-compassion"},
		{ID: "q-003", Text: "Nothing can bring you peace but yourself.", Author: "Ralph Waldo Emerson", Category: "calm"},
		{ID: "q-004", Text: "It always seems impossible until it's done.", Author: "Nelson Mandela", Category: "perseverance"},
		{ID: "q-005", Text: "Feelings are just visitors. Let them come and go.", Author: "Mooji", Category: "mindfulness"},
		{ID: "q-006", Text: "Be where you are, not where you think you should be.", Author: "Unknown", Category: "mindfulness"},
		{ID: "q-007", Text: "Rest is not idleness.", Author: "John Lubbock", Category: "rest"},
		{ID: "q-008", Text: "This too shall pass.", Author: "Persian proverb", Category: "calm"},
		{ID: "q-009", Text: "Small steps every day.", Author: "Unknown", Category: "habits"},
		{ID: "q-010", Text: "You are allowed to be both a masterpiece and a work in progress.", Author: "Sophia Bush", Category: "self-compassion"},
	}
}
