/*
scenarios.go - Worked example inputs for demos and form prefill

PURPOSE:
  Provides named example inputs a browser form can load with one click.
  Each scenario is a complete BreakdownRequest; loading one returns the
  same response POST /api/breakdown would.

AVAILABLE SCENARIOS:
  standard-monthly:  26000 monthly, 26 days x 8 hours
  yearly-salary:     312000 yearly, same schedule (same breakdown)
  weekly-short-week: 1000 weekly, 25 days x 10 hours
  hourly-contractor: 125 hourly, 26 days x 8 hours
  empty-form:        No amount entered yet (zero breakdown)

USAGE VIA API:
  GET /api/scenarios
  GET /api/scenarios/weekly-short-week

ADDING NEW SCENARIOS:
  Append to the 'scenarios' slice with an ID, name, description and request.

SEE ALSO:
  - handlers.go: respondBreakdown renders the result
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ScenarioDTO describes one example input.
type ScenarioDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Request     BreakdownRequest `json:"request"`
}

func intPtr(n int) *int { return &n }

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "standard-monthly",
		Name:        "Standard Monthly Salary",
		Description: "26000 per month over a 26-day, 8-hour schedule",
		Request: BreakdownRequest{
			Amount: "26000", TimeUnit: "monthly",
			WorkDaysPerMonth: intPtr(26), WorkHoursPerDay: intPtr(8),
		},
	},
	{
		ID:          "yearly-salary",
		Name:        "Yearly Salary",
		Description: "312000 per year, which is the standard monthly salary times twelve",
		Request: BreakdownRequest{
			Amount: "312000", TimeUnit: "yearly",
			WorkDaysPerMonth: intPtr(26), WorkHoursPerDay: intPtr(8),
		},
	},
	{
		ID:          "weekly-short-week",
		Name:        "Weekly Pay, Long Days",
		Description: "1000 per week with a flat 4-week month, 25 days x 10 hours",
		Request: BreakdownRequest{
			Amount: "1000", TimeUnit: "weekly",
			WorkDaysPerMonth: intPtr(25), WorkHoursPerDay: intPtr(10),
			Currency: "USD",
		},
	},
	{
		ID:          "hourly-contractor",
		Name:        "Hourly Contractor",
		Description: "125 per hour, 8 hours a day, 26 days a month",
		Request: BreakdownRequest{
			Amount: "125", TimeUnit: "hourly",
			WorkDaysPerMonth: intPtr(26), WorkHoursPerDay: intPtr(8),
		},
	},
	{
		ID:          "empty-form",
		Name:        "Empty Form",
		Description: "Nothing entered yet: every figure is zero",
		Request:     BreakdownRequest{TimeUnit: "monthly"},
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario computes the breakdown for one scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, s := range scenarios {
		if s.ID == id {
			h.respondBreakdown(w, s.Request)
			return
		}
	}
	writeError(w, http.StatusNotFound, "scenario not found", nil)
}
