package earnings

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TIME UNIT - Which period the entered amount is paid against
// =============================================================================

type TimeUnit string

const (
	Hourly  TimeUnit = "hourly"
	Daily   TimeUnit = "daily"
	Weekly  TimeUnit = "weekly"
	Monthly TimeUnit = "monthly"
	Yearly  TimeUnit = "yearly"
)

var (
	monthsPerYear  = decimal.NewFromInt(12)
	weeksPerMonth  = decimal.NewFromInt(4) // flat 4-week month, not calendar weeks
	minutesPerHour = decimal.NewFromInt(60)
)

// TimeUnitInfo describes one selectable unit.
type TimeUnitInfo struct {
	Unit  TimeUnit `json:"value"`
	Label string   `json:"label"`
}

// Order matches the select box: monthly first since it is the default.
var timeUnits = []TimeUnitInfo{
	{Unit: Monthly, Label: "Monthly"},
	{Unit: Yearly, Label: "Yearly"},
	{Unit: Weekly, Label: "Weekly"},
	{Unit: Daily, Label: "Daily"},
	{Unit: Hourly, Label: "Hourly"},
}

// TimeUnits returns the selectable units in display order.
func TimeUnits() []TimeUnitInfo {
	out := make([]TimeUnitInfo, len(timeUnits))
	copy(out, timeUnits)
	return out
}

// ParseTimeUnit looks up a unit by name, ignoring case and surrounding space.
func ParseTimeUnit(s string) (TimeUnit, bool) {
	u := TimeUnit(strings.ToLower(strings.TrimSpace(s)))
	if u.Known() {
		return u, true
	}
	return "", false
}

func (u TimeUnit) Known() bool {
	switch u {
	case Hourly, Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

func (u TimeUnit) String() string { return string(u) }

// ToMonthly converts amount into its monthly equivalent.
// Unrecognized units are treated as monthly.
func (u TimeUnit) ToMonthly(amount decimal.Decimal, s Schedule) decimal.Decimal {
	switch u {
	case Yearly:
		return amount.Div(monthsPerYear)
	case Weekly:
		return amount.Mul(weeksPerMonth)
	case Daily:
		return amount.Mul(s.days())
	case Hourly:
		return amount.Mul(s.hours()).Mul(s.days())
	default:
		return amount
	}
}
