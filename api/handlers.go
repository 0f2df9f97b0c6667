/*
handlers.go - HTTP API handlers for the earnings breakdown engine

PURPOSE:
  Exposes earnings.Normalize and the currency formatters over HTTP so a
  browser form can recompute on every keystroke. Handlers are stateless:
  each request carries the full input and gets a full breakdown back.

ENDPOINTS:
  Breakdown:
    POST   /api/breakdown      Compute from a JSON body
    GET    /api/breakdown      Compute from query parameters

  Options:
    GET    /api/options        Time units, currencies, defaults, ranges
    GET    /api/time-units     Time unit options
    GET    /api/currencies     Registered currencies

  Scenarios:
    GET    /api/scenarios      List worked examples
    GET    /api/scenarios/{id} Breakdown for one example

  Health:
    GET    /api/health         Liveness

ERROR HANDLING:
  An unparsable or non-positive amount is NOT an error: the response is the
  zero breakdown with 200. Errors are reserved for requests that cannot be
  understood:
  - 400: Malformed JSON, non-integer days/hours, unknown currency
  - 404: Unknown scenario

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/warp/earnings-engine/currency"
	"github.com/warp/earnings-engine/earnings"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds defaults applied to requests that omit them.
type Handler struct {
	Schedule        earnings.Schedule
	DefaultCurrency string
	Logger          *zap.Logger
}

// NewHandler creates a handler. A nil logger uses zap.L().
func NewHandler(schedule earnings.Schedule, defaultCurrency string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.L()
	}
	if defaultCurrency == "" {
		defaultCurrency = currency.DefaultCode
	}
	return &Handler{
		Schedule:        schedule,
		DefaultCurrency: defaultCurrency,
		Logger:          logger,
	}
}

// =============================================================================
// BREAKDOWN ENDPOINTS
// =============================================================================

// ComputeBreakdown handles POST /api/breakdown.
func (h *Handler) ComputeBreakdown(w http.ResponseWriter, r *http.Request) {
	var req BreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}
	h.respondBreakdown(w, req)
}

// GetBreakdown handles GET /api/breakdown?amount=&time_unit=&days=&hours=&currency=.
func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := BreakdownRequest{
		Amount:   AmountField(q.Get("amount")),
		TimeUnit: q.Get("time_unit"),
		Currency: q.Get("currency"),
	}

	var err error
	if req.WorkDaysPerMonth, err = optionalInt(q.Get("days")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid days", err)
		return
	}
	if req.WorkHoursPerDay, err = optionalInt(q.Get("hours")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid hours", err)
		return
	}
	h.respondBreakdown(w, req)
}

func (h *Handler) respondBreakdown(w http.ResponseWriter, req BreakdownRequest) {
	code := req.Currency
	if code == "" {
		code = h.DefaultCurrency
	}
	f, err := currency.Lookup(code)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown currency", err)
		return
	}

	in := h.toInput(req)
	b := earnings.Normalize(in)

	h.Logger.Debug("breakdown computed",
		zap.String("unit", string(in.Unit)),
		zap.Int("days", in.WorkDaysPerMonth),
		zap.Int("hours", in.WorkHoursPerDay),
		zap.Bool("zero", b.IsZero()),
	)

	writeJSON(w, http.StatusOK, toBreakdownResponse(in, f, b))
}

// toInput fills omitted fields from the handler defaults. An unknown unit
// is passed through unchanged; the normalizer treats it as monthly.
func (h *Handler) toInput(req BreakdownRequest) earnings.Input {
	unit := earnings.Monthly
	if req.TimeUnit != "" {
		if u, ok := earnings.ParseTimeUnit(req.TimeUnit); ok {
			unit = u
		} else {
			unit = earnings.TimeUnit(req.TimeUnit)
		}
	}

	in := earnings.Input{
		Amount:           string(req.Amount),
		Unit:             unit,
		WorkDaysPerMonth: h.Schedule.WorkDaysPerMonth,
		WorkHoursPerDay:  h.Schedule.WorkHoursPerDay,
	}
	if req.WorkDaysPerMonth != nil {
		in.WorkDaysPerMonth = *req.WorkDaysPerMonth
	}
	if req.WorkHoursPerDay != nil {
		in.WorkHoursPerDay = *req.WorkHoursPerDay
	}
	return in
}

func toBreakdownResponse(in earnings.Input, f currency.Formatter, b earnings.Breakdown) BreakdownResponse {
	rows := currency.FormatBreakdown(f, b)
	fields := make([]BreakdownFieldDTO, 0, len(rows))
	for _, row := range rows {
		fields = append(fields, BreakdownFieldDTO{
			Key:       row.Key,
			Label:     row.Label,
			Value:     row.Value.StringFixed(earnings.Precision),
			Formatted: row.Formatted,
		})
	}

	return BreakdownResponse{
		Amount:           in.Amount,
		TimeUnit:         string(in.Unit),
		WorkDaysPerMonth: in.WorkDaysPerMonth,
		WorkHoursPerDay:  in.WorkHoursPerDay,
		Currency:         f.Code(),
		Minute:           b.Minute.StringFixed(earnings.Precision),
		Hourly:           b.Hourly.StringFixed(earnings.Precision),
		Daily:            b.Daily.StringFixed(earnings.Precision),
		Monthly:          b.Monthly.StringFixed(earnings.Precision),
		Yearly:           b.Yearly.StringFixed(earnings.Precision),
		Fields:           fields,
	}
}

// =============================================================================
// OPTION ENDPOINTS
// =============================================================================

// GetOptions handles GET /api/options.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		TimeUnits:        timeUnitDTOs(),
		Currencies:       currencyDTOs(),
		DefaultTimeUnit:  string(earnings.Monthly),
		DefaultCurrency:  h.DefaultCurrency,
		WorkDaysPerMonth: h.Schedule.WorkDaysPerMonth,
		WorkHoursPerDay:  h.Schedule.WorkHoursPerDay,
		WorkDaysRange:    earnings.WorkDaysRange,
		WorkHoursRange:   earnings.WorkHoursRange,
	})
}

// ListTimeUnits handles GET /api/time-units.
func (h *Handler) ListTimeUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, timeUnitDTOs())
}

// ListCurrencies handles GET /api/currencies.
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currencyDTOs())
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func timeUnitDTOs() []TimeUnitDTO {
	units := earnings.TimeUnits()
	out := make([]TimeUnitDTO, 0, len(units))
	for _, u := range units {
		out = append(out, TimeUnitDTO{Value: string(u.Unit), Label: u.Label})
	}
	return out
}

func currencyDTOs() []CurrencyDTO {
	formatters := currency.List()
	out := make([]CurrencyDTO, 0, len(formatters))
	for _, f := range formatters {
		out = append(out, CurrencyDTO{Code: f.Code(), Symbol: f.Symbol(), Locale: f.Locale().String()})
	}
	return out
}

// =============================================================================
// HELPERS
// =============================================================================

var errNotInteger = errors.New("not an integer")

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errNotInteger, raw)
	}
	return &n, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
