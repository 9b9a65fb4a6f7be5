// Package model defines shared data structures.
package model

import "time"

// Config defines resolved UI settings.
type Config struct {
	Lang         string
	Clipboard    string
	CopyFeedback time.Duration
}

// DateInput is a validated birth date.
type DateInput struct {
	Day   int
	Month int
	Year  int
}

// Field identifies one of the date input fields.
type Field int

const (
	FieldDay Field = iota
	FieldMonth
	FieldYear
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	default:
		return "unknown"
	}
}
