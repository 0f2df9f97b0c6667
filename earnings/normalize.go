/*
normalize.go - The earnings-normalization algorithm

ALGORITHM:
  1. Convert amount to a monthly equivalent (TimeUnit.ToMonthly)
  2. daily   = monthly / workDaysPerMonth
  3. hourly  = daily / workHoursPerDay
  4. minute  = hourly / 60
  5. yearly  = monthly * 12
  6. Round all five to 2 decimals, half away from zero

  Rounding happens once, after every figure has been derived from the
  unrounded monthly value. Rounding monthly first and deriving from it
  would compound the error into daily/hourly/minute.

ZERO BREAKDOWN:
  Returned for an empty, unparsable or non-positive amount, and for a
  schedule with a zero or negative divisor. This is the defined
  "not configured yet" state, not a failure.

EXAMPLE:
  26000 monthly, 26 days, 8 hours:
    monthly 26000.00, daily 1000.00, hourly 125.00,
    minute 2.08, yearly 312000.00
*/
package earnings

import (
	"github.com/shopspring/decimal"
)

// Normalize computes the breakdown for raw input. It never fails.
func Normalize(in Input) Breakdown {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return Zero()
	}
	return NormalizeAmount(amount, in.Unit, in.Schedule())
}

// NormalizeAmount is Normalize for callers that already hold a decimal.
func NormalizeAmount(amount decimal.Decimal, unit TimeUnit, s Schedule) Breakdown {
	if !amount.IsPositive() || !s.Valid() {
		return Zero()
	}

	monthly := unit.ToMonthly(amount, s)
	daily := monthly.Div(s.days())
	hourly := daily.Div(s.hours())
	minute := hourly.Div(minutesPerHour)
	yearly := monthly.Mul(monthsPerYear)

	return Breakdown{
		Minute:  minute.Round(Precision),
		Hourly:  hourly.Round(Precision),
		Daily:   daily.Round(Precision),
		Monthly: monthly.Round(Precision),
		Yearly:  yearly.Round(Precision),
	}
}
