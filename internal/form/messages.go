package form

import (
	"strings"

	"github.com/verte-zerg/matrica/internal/matrix"
)

// Messages holds the user-facing strings of the form.
type Messages struct {
	Title       string
	Day         string
	Month       string
	Year        string
	Submit      string
	FillAll     string
	BadDay      string
	BadMonth    string
	BadYear     string
	Destiny     string
	Additional  string
	CopyButton  string
	Copied      string
	MatrixTitle string
	Help        string
	HelpResult  string
	Hints       [3]string
}

var messages = map[string]Messages{
	matrix.LangRU: {
		Title:       "Матрица по дате рождения",
		Day:         "День",
		Month:       "Месяц",
		Year:        "Год",
		Submit:      "Рассчитать",
		FillAll:     "Пожалуйста, заполните все поля",
		BadDay:      "Укажите корректный день (1-31)",
		BadMonth:    "Укажите корректный месяц (1-12)",
		BadYear:     "Укажите корректный год (1900-2100)",
		Destiny:     "Число судьбы",
		Additional:  "Дополнительные числа",
		CopyButton:  "Скопировать матрицу",
		Copied:      "Скопировано!",
		MatrixTitle: "Матрица",
		Help:        "tab: следующее поле  enter: рассчитать  esc: выход",
		HelpResult:  "tab: следующее поле  enter: рассчитать  ctrl+y/c: скопировать  ↑/↓: прокрутка  esc: выход",
		Hints:       [3]string{"ДД", "ММ", "ГГГГ"},
	},
	matrix.LangEN: {
		Title:       "Birth date matrix",
		Day:         "Day",
		Month:       "Month",
		Year:        "Year",
		Submit:      "Calculate",
		FillAll:     "Please fill in all fields",
		BadDay:      "Enter a valid day (1-31)",
		BadMonth:    "Enter a valid month (1-12)",
		BadYear:     "Enter a valid year (1900-2100)",
		Destiny:     "Destiny number",
		Additional:  "Additional numbers",
		CopyButton:  "Copy matrix",
		Copied:      "Copied!",
		MatrixTitle: "Matrix",
		Help:        "tab: next field  enter: calculate  esc: quit",
		HelpResult:  "tab: next field  enter: calculate  ctrl+y/c: copy  ↑/↓: scroll  esc: quit",
		Hints:       [3]string{"DD", "MM", "YYYY"},
	},
}

// MessagesFor returns the strings for lang, defaulting to Russian.
func MessagesFor(lang string) Messages {
	if m, ok := messages[strings.ToLower(lang)]; ok {
		return m
	}
	return messages[matrix.LangRU]
}
