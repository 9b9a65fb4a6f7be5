// Package matrix computes the numerology matrix for a birth date.
package matrix

import (
	"strconv"
	"strings"
)

// Placeholder marks an attribute with no data.
const Placeholder = "—"

// Attribute names one of the matrix attributes.
type Attribute string

const (
	Temperament Attribute = "temperament"
	Character   Attribute = "character"
	Health      Attribute = "health"
	Luck        Attribute = "luck"
	Goal        Attribute = "goal"
	Energy      Attribute = "energy"
	Logic       Attribute = "logic"
	Duty        Attribute = "duty"
	Family      Attribute = "family"
	Interest    Attribute = "interest"
	Work        Attribute = "work"
	Memory      Attribute = "memory"
	Habits      Attribute = "habits"
	Life        Attribute = "life"
)

// Attributes lists every attribute in label dictionary order.
var Attributes = []Attribute{
	Temperament, Character, Health, Luck, Goal, Energy, Logic,
	Duty, Family, Interest, Work, Memory, Habits, Life,
}

// Result is the computed matrix. Values are never mutated after Calculate.
type Result struct {
	Additional [4]int
	Destiny    int
	// Counts holds digit occurrences; index 0 is unused.
	Counts [10]int

	Temperament string
	Character   string
	Health      string
	Luck        string
	Goal        string
	Energy      string
	Logic       string
	Duty        string
	Family      string
	Interest    string
	Work        string
	Memory      string
	Habits      string
	Life        string
}

// Calculate builds the matrix for a validated date.
func Calculate(day, month, year int) Result {
	dateStr := strconv.Itoa(day) + strconv.Itoa(month) + strconv.Itoa(year)

	first := sumDigitString(dateStr)
	second := Reduce(first)
	firstDigit := int(strconv.Itoa(day)[0] - '0')
	third := abs(first - 2*firstDigit)
	fourth := Reduce(third)

	allDigits := dateStr + strconv.Itoa(first) + strconv.Itoa(second) + strconv.Itoa(third) + strconv.Itoa(fourth)

	var c [10]int
	for d := 1; d <= 9; d++ {
		c[d] = strings.Count(allDigits, strconv.Itoa(d))
	}

	return Result{
		Additional: [4]int{first, second, third, fourth},
		Destiny:    ReduceMaster(first),
		Counts:     c,

		Character: repeatDigit(1, c[1]),
		Energy:    repeatDigit(2, c[2]),
		Interest:  repeatDigit(3, c[3]),
		Health:    repeatDigit(4, c[4]),
		Logic:     repeatDigit(5, c[5]),
		Work:      repeatDigit(6, c[6]),
		Luck:      repeatDigit(7, c[7]),
		Duty:      repeatDigit(8, c[8]),
		Memory:    repeatDigit(9, c[9]),

		Goal:        sumOrPlaceholder(c[1] + c[4] + c[7]),
		Temperament: sumOrPlaceholder(c[3] + c[5] + c[7]),
		Habits:      sumOrPlaceholder(c[3] + c[6] + c[9]),
		Life:        sumOrPlaceholder(c[4] + c[5] + c[6]),
		Family:      sumOrPlaceholder(c[2] + c[5] + c[8]),
	}
}

// Count returns the occurrence count of digit d (1-9).
func (r Result) Count(d int) int {
	if d < 1 || d > 9 {
		return 0
	}
	return r.Counts[d]
}

// Value returns the rendered value of an attribute.
func (r Result) Value(a Attribute) string {
	switch a {
	case Temperament:
		return r.Temperament
	case Character:
		return r.Character
	case Health:
		return r.Health
	case Luck:
		return r.Luck
	case Goal:
		return r.Goal
	case Energy:
		return r.Energy
	case Logic:
		return r.Logic
	case Duty:
		return r.Duty
	case Family:
		return r.Family
	case Interest:
		return r.Interest
	case Work:
		return r.Work
	case Memory:
		return r.Memory
	case Habits:
		return r.Habits
	case Life:
		return r.Life
	default:
		return Placeholder
	}
}

// SumDigits returns the sum of the decimal digits of n.
func SumDigits(n int) int {
	return sumDigitString(strconv.Itoa(abs(n)))
}

// Reduce sums digits until a single digit remains.
func Reduce(n int) int {
	return reduce(n, false)
}

// ReduceMaster is Reduce but stops early on 11, 22 or 33.
func ReduceMaster(n int) int {
	return reduce(n, true)
}

func reduce(n int, keepMaster bool) int {
	for n > 9 {
		if keepMaster && isMaster(n) {
			return n
		}
		n = SumDigits(n)
	}
	return n
}

func isMaster(n int) bool {
	return n == 11 || n == 22 || n == 33
}

func sumDigitString(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sum += int(s[i] - '0')
		}
	}
	return sum
}

func repeatDigit(digit, count int) string {
	if count <= 0 {
		return Placeholder
	}
	return strings.Repeat(strconv.Itoa(digit), count)
}

// sumOrPlaceholder keeps the source behavior of treating a zero sum as no data.
func sumOrPlaceholder(sum int) string {
	if sum == 0 {
		return Placeholder
	}
	return strconv.Itoa(sum)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
