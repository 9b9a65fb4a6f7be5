package matrix

import "strings"

// Supported label languages.
const (
	LangRU = "ru"
	LangEN = "en"
)

var labels = map[string]map[Attribute]string{
	LangRU: {
		Temperament: "Темперамент",
		Character:   "Характер",
		Health:      "Здоровье",
		Luck:        "Удача",
		Goal:        "Цель",
		Energy:      "Энергия",
		Logic:       "Логика",
		Duty:        "Долг",
		Family:      "Семья",
		Interest:    "Интерес",
		Work:        "Труд",
		Memory:      "Память",
		Habits:      "Привычки",
		Life:        "Быт",
	},
	LangEN: {
		Temperament: "Temperament",
		Character:   "Character",
		Health:      "Health",
		Luck:        "Luck",
		Goal:        "Goal",
		Energy:      "Energy",
		Logic:       "Logic",
		Duty:        "Duty",
		Family:      "Family",
		Interest:    "Interest",
		Work:        "Work",
		Memory:      "Memory",
		Habits:      "Habits",
		Life:        "Life",
	},
}

// Label returns the display label for an attribute. Unknown languages fall back to Russian.
func Label(lang string, a Attribute) string {
	dict, ok := labels[strings.ToLower(lang)]
	if !ok {
		dict = labels[LangRU]
	}
	if label, ok := dict[a]; ok {
		return label
	}
	return string(a)
}

// SupportedLang reports whether a label dictionary exists for lang.
func SupportedLang(lang string) bool {
	_, ok := labels[strings.ToLower(lang)]
	return ok
}
