/*
Package presenter keeps the state of an earnings form and recomputes the
breakdown whenever any field changes.

PURPOSE:
  The breakdown is never stored independently of its inputs. Every accepted
  change to amount, unit, work days or work hours re-runs
  earnings.Normalize synchronously and overwrites the current View, then
  notifies subscribers. Changing the currency only reformats.

FIELD RULES:
  amount:    only "" or digits with at most one point are accepted; other
             text is ignored and the previous value is kept
  days/hours: parsed as integers; anything non-numeric becomes 0, which
             yields the zero breakdown until corrected
  currency:  must be registered in the currency package

CONCURRENCY:
  A Session is owned by one caller. It is not safe for concurrent use.

SEE ALSO:
  - earnings/normalize.go: The computation being driven
  - currency/currency.go: Formatting strategies
  - api/handlers.go: Stateless HTTP rendition of the same flow
*/
package presenter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/warp/earnings-engine/currency"
	"github.com/warp/earnings-engine/earnings"
)

// View is what a presenter displays after each recomputation.
type View struct {
	Input     earnings.Input
	Currency  string
	Breakdown earnings.Breakdown
	Rows      []currency.FormattedField
}

// Observer receives the new View after every change.
type Observer func(View)

// Session holds raw form state.
type Session struct {
	input     earnings.Input
	formatter currency.Formatter
	view      View
	observers []Observer
}

// Options seed a Session. Empty fields fall back to the form defaults.
type Options struct {
	Unit     earnings.TimeUnit
	Schedule *earnings.Schedule
	Currency string
}

// NewSession returns a session with an empty amount and the given defaults.
func NewSession(opts Options) (*Session, error) {
	if opts.Unit == "" {
		opts.Unit = earnings.Monthly
	}
	schedule := earnings.DefaultSchedule()
	if opts.Schedule != nil {
		schedule = *opts.Schedule
	}
	if opts.Currency == "" {
		opts.Currency = currency.DefaultCode
	}

	f, err := currency.Lookup(opts.Currency)
	if err != nil {
		return nil, err
	}

	s := &Session{
		input: earnings.Input{
			Unit:             opts.Unit,
			WorkDaysPerMonth: schedule.WorkDaysPerMonth,
			WorkHoursPerDay:  schedule.WorkHoursPerDay,
		},
		formatter: f,
	}
	s.recompute()
	return s, nil
}

// Subscribe registers o. It is not called for the current view.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Session) View() View { return s.view }

// =============================================================================
// SETTERS
// =============================================================================

// SetAmount reports whether raw passed the input filter.
func (s *Session) SetAmount(raw string) bool {
	if !earnings.AcceptsAmountText(raw) {
		return false
	}
	s.input.Amount = raw
	s.recompute()
	return true
}

func (s *Session) SetUnit(u earnings.TimeUnit) {
	s.input.Unit = u
	s.recompute()
}

func (s *Session) SetWorkDays(raw string) {
	s.input.WorkDaysPerMonth = parseIntOrZero(raw)
	s.recompute()
}

func (s *Session) SetWorkHours(raw string) {
	s.input.WorkHoursPerDay = parseIntOrZero(raw)
	s.recompute()
}

// SetCurrency switches formatting only. The breakdown is reused as is.
func (s *Session) SetCurrency(code string) error {
	f, err := currency.Lookup(code)
	if err != nil {
		return err
	}
	s.formatter = f
	s.render(s.view.Breakdown)
	return nil
}

// =============================================================================
// RECOMPUTATION
// =============================================================================

func (s *Session) recompute() {
	s.render(earnings.Normalize(s.input))
}

func (s *Session) render(b earnings.Breakdown) {
	s.view = View{
		Input:     s.input,
		Currency:  s.formatter.Code(),
		Breakdown: b,
		Rows:      currency.FormatBreakdown(s.formatter, b),
	}
	for _, o := range s.observers {
		o(s.view)
	}
}

// parseIntOrZero reads a leading integer like a number input does:
// "26" -> 26, "12abc" -> 12, "abc" -> 0. Digits past the int range
// saturate at math.MaxInt or math.MinInt instead of falling back to 0.
func parseIntOrZero(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}
