/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Amounts are sent as
  strings with exactly 2 fractional digits so no client float parsing can
  reintroduce precision loss.

TYPES:
  Breakdown:
    BreakdownRequest, BreakdownResponse, BreakdownFieldDTO

  Options:
    TimeUnitDTO, CurrencyDTO, OptionsResponse

  Errors:
    ErrorResponse

VALIDATION:
  Validation is done in handlers, not in DTOs. An invalid amount is not a
  validation error: it produces the zero breakdown.

SEE ALSO:
  - handlers.go: Uses these types
  - earnings/types.go: Domain types behind these DTOs
*/
package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/earnings-engine/earnings"
)

// =============================================================================
// BREAKDOWN
// =============================================================================

// AmountField accepts a JSON string ("26000") or number (26000, 2.6e4).
// Strings are kept as typed; numbers are rewritten in plain decimal
// notation. null or absent decodes to "".
type AmountField string

func (a *AmountField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = AmountField(d.String())
	return nil
}

// BreakdownRequest is the compute request. Nil schedule fields take the
// server defaults; explicit zeros are passed through and yield zeros.
type BreakdownRequest struct {
	Amount           AmountField `json:"amount"`
	TimeUnit         string      `json:"time_unit"`
	WorkDaysPerMonth *int        `json:"work_days_per_month,omitempty"`
	WorkHoursPerDay  *int        `json:"work_hours_per_day,omitempty"`
	Currency         string      `json:"currency,omitempty"`
}

// BreakdownFieldDTO is one result card.
type BreakdownFieldDTO struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

// BreakdownResponse echoes the effective input alongside the result.
type BreakdownResponse struct {
	Amount           string              `json:"amount"`
	TimeUnit         string              `json:"time_unit"`
	WorkDaysPerMonth int                 `json:"work_days_per_month"`
	WorkHoursPerDay  int                 `json:"work_hours_per_day"`
	Currency         string              `json:"currency"`
	Minute           string              `json:"minute"`
	Hourly           string              `json:"hourly"`
	Daily            string              `json:"daily"`
	Monthly          string              `json:"monthly"`
	Yearly           string              `json:"yearly"`
	Fields           []BreakdownFieldDTO `json:"fields"`
}

// =============================================================================
// OPTIONS
// =============================================================================

type TimeUnitDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CurrencyDTO struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Locale string `json:"locale"`
}

// OptionsResponse is everything a form needs to render its controls.
type OptionsResponse struct {
	TimeUnits        []TimeUnitDTO  `json:"time_units"`
	Currencies       []CurrencyDTO  `json:"currencies"`
	DefaultTimeUnit  string         `json:"default_time_unit"`
	DefaultCurrency  string         `json:"default_currency"`
	WorkDaysPerMonth int            `json:"work_days_per_month"`
	WorkHoursPerDay  int            `json:"work_hours_per_day"`
	WorkDaysRange    earnings.Range `json:"work_days_range"`
	WorkHoursRange   earnings.Range `json:"work_hours_range"`
}

// =============================================================================
// ERRORS
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
