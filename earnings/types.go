/*
Package earnings provides the earnings-normalization engine.

PURPOSE:
  Takes a single compensation figure entered against one time unit
  (hourly, daily, weekly, monthly, yearly) and expands it into a full
  breakdown across every unit. Everything here is pure arithmetic: no
  logging, no I/O, no shared state between calls.

KEY CONCEPTS IN THIS FILE (types.go):
  - Input: raw values as a presenter collects them (amount is text)
  - Schedule: work days per month and work hours per day (the divisors)
  - Breakdown: the five derived figures, rounded to 2 decimals
  - Field: a labelled breakdown value in display order

DESIGN PRINCIPLES:
  1. Totality: invalid input maps to Zero(), never to an error
  2. Precision: decimal.Decimal throughout, rounding only at the end
  3. Derivation: every figure comes from the unrounded monthly value

USAGE:
  b := earnings.Normalize(earnings.Input{
      Amount:           "26000",
      Unit:             earnings.Monthly,
      WorkDaysPerMonth: 26,
      WorkHoursPerDay:  8,
  })
  // b.Daily = 1000.00, b.Hourly = 125.00, b.Minute = 2.08

SEE ALSO:
  - unit.go: TimeUnit table and monthly conversion
  - normalize.go: The algorithm
  - parse.go: Amount parsing rules
*/
package earnings

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// DEFAULTS AND UI BOUNDS
// =============================================================================

const (
	DefaultWorkDaysPerMonth = 26
	DefaultWorkHoursPerDay  = 8

	// Precision is the number of fractional digits kept in a Breakdown.
	Precision int32 = 2
)

// Range is an inclusive bound offered to input widgets.
// The Normalizer never applies it.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

var (
	WorkDaysRange  = Range{Min: 1, Max: 31}
	WorkHoursRange = Range{Min: 1, Max: 24}
)

// =============================================================================
// SCHEDULE - The two divisors
// =============================================================================

type Schedule struct {
	WorkDaysPerMonth int
	WorkHoursPerDay  int
}

func DefaultSchedule() Schedule {
	return Schedule{
		WorkDaysPerMonth: DefaultWorkDaysPerMonth,
		WorkHoursPerDay:  DefaultWorkHoursPerDay,
	}
}

// Valid reports whether both divisors are positive.
// Values above WorkDaysRange/WorkHoursRange are still valid.
func (s Schedule) Valid() bool {
	return s.WorkDaysPerMonth > 0 && s.WorkHoursPerDay > 0
}

func (s Schedule) days() decimal.Decimal  { return decimal.NewFromInt(int64(s.WorkDaysPerMonth)) }
func (s Schedule) hours() decimal.Decimal { return decimal.NewFromInt(int64(s.WorkHoursPerDay)) }

// =============================================================================
// INPUT
// =============================================================================

// Input is constructed fresh for every computation.
type Input struct {
	Amount           string
	Unit             TimeUnit
	WorkDaysPerMonth int
	WorkHoursPerDay  int
}

func (in Input) Schedule() Schedule {
	return Schedule{WorkDaysPerMonth: in.WorkDaysPerMonth, WorkHoursPerDay: in.WorkHoursPerDay}
}

// =============================================================================
// BREAKDOWN - Immutable result
// =============================================================================

type Breakdown struct {
	Minute  decimal.Decimal
	Hourly  decimal.Decimal
	Daily   decimal.Decimal
	Monthly decimal.Decimal
	Yearly  decimal.Decimal
}

// Zero is the "no input yet" breakdown.
func Zero() Breakdown {
	return Breakdown{
		Minute:  decimal.Zero,
		Hourly:  decimal.Zero,
		Daily:   decimal.Zero,
		Monthly: decimal.Zero,
		Yearly:  decimal.Zero,
	}
}

func (b Breakdown) IsZero() bool {
	return b.Minute.IsZero() && b.Hourly.IsZero() && b.Daily.IsZero() &&
		b.Monthly.IsZero() && b.Yearly.IsZero()
}

func (b Breakdown) Equal(other Breakdown) bool {
	return b.Minute.Equal(other.Minute) &&
		b.Hourly.Equal(other.Hourly) &&
		b.Daily.Equal(other.Daily) &&
		b.Monthly.Equal(other.Monthly) &&
		b.Yearly.Equal(other.Yearly)
}

// Field is one labelled figure of a Breakdown.
type Field struct {
	Key   string
	Label string
	Value decimal.Decimal
}

// Fields returns the figures in result-card order:
// Monthly, Yearly, Daily, Hourly, Minute.
func (b Breakdown) Fields() []Field {
	return []Field{
		{Key: "monthly", Label: "Monthly", Value: b.Monthly},
		{Key: "yearly", Label: "Yearly", Value: b.Yearly},
		{Key: "daily", Label: "Daily", Value: b.Daily},
		{Key: "hourly", Label: "Hourly", Value: b.Hourly},
		{Key: "minute", Label: "Minute", Value: b.Minute},
	}
}
