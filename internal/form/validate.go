// Package form validates and sanitizes date input fields.
package form

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/matrica/internal/matrix"
	"github.com/verte-zerg/matrica/internal/model"
)

// Accepted ranges.
const (
	MinDay   = 1
	MaxDay   = 31
	MinMonth = 1
	MaxMonth = 12
	MinYear  = 1900
	MaxYear  = 2100
)

// FieldLimits holds the expected digit count per field.
var FieldLimits = [3]int{2, 2, 4}

// ValidationError describes a rejected submission.
type ValidationError struct {
	Fields  []model.Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Has reports whether the error marks field f.
func (e *ValidationError) Has(f model.Field) bool {
	for _, field := range e.Fields {
		if field == f {
			return true
		}
	}
	return false
}

// Validator checks submissions with messages in one language.
type Validator struct {
	msgs Messages
}

// NewValidator returns a validator for lang.
func NewValidator(lang string) *Validator {
	return &Validator{msgs: MessagesFor(lang)}
}

// Validate checks the raw field values. Only the first failing rule is reported.
func (v *Validator) Validate(day, month, year string) (model.DateInput, error) {
	raw := [3]string{strings.TrimSpace(day), strings.TrimSpace(month), strings.TrimSpace(year)}

	var missing []model.Field
	for i, value := range raw {
		if value == "" {
			missing = append(missing, model.Field(i))
		}
	}
	if len(missing) > 0 {
		return model.DateInput{}, &ValidationError{Fields: missing, Message: v.msgs.FillAll}
	}

	dayNum, ok := parseInRange(raw[0], MinDay, MaxDay)
	if !ok {
		return model.DateInput{}, &ValidationError{Fields: []model.Field{model.FieldDay}, Message: v.msgs.BadDay}
	}
	monthNum, ok := parseInRange(raw[1], MinMonth, MaxMonth)
	if !ok {
		return model.DateInput{}, &ValidationError{Fields: []model.Field{model.FieldMonth}, Message: v.msgs.BadMonth}
	}
	yearNum, ok := parseInRange(raw[2], MinYear, MaxYear)
	if !ok {
		return model.DateInput{}, &ValidationError{Fields: []model.Field{model.FieldYear}, Message: v.msgs.BadYear}
	}
	return model.DateInput{Day: dayNum, Month: monthNum, Year: yearNum}, nil
}

// Validate checks the raw field values with Russian messages.
func Validate(day, month, year string) (model.DateInput, error) {
	return NewValidator(matrix.LangRU).Validate(day, month, year)
}

func parseInRange(value string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	if n < lo || n > hi {
		return 0, false
	}
	return n, true
}

// SanitizeDigits strips every non-digit character.
func SanitizeDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FieldComplete reports whether the field holds its expected digit count,
// which triggers focus advance.
func FieldComplete(f model.Field, value string) bool {
	if f < model.FieldDay || f > model.FieldYear {
		return false
	}
	return len(value) == FieldLimits[f]
}
