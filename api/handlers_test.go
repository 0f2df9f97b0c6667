/*
handlers_test.go - Tests for the HTTP surface

Tests for:
- POST and GET breakdown computation
- Zero breakdown for invalid amounts (200, not an error)
- Defaults and explicit zero schedules
- Option listings and error responses
*/
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/warp/earnings-engine/earnings"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(earnings.DefaultSchedule(), "PKR", zap.NewNop())
	srv := httptest.NewServer(NewRouter(h, []string{"http://localhost:5173"}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// =============================================================================
// BREAKDOWN
// =============================================================================

func TestComputeBreakdown_Monthly(t *testing.T) {
	// GIVEN: 26000 monthly with the default 26/8 schedule
	// WHEN: POSTing without schedule fields
	// THEN: Defaults apply and every figure is a fixed 2-decimal string

	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/breakdown", `{"amount":"26000","time_unit":"monthly"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[BreakdownResponse](t, resp)
	assert.Equal(t, "26000.00", body.Monthly)
	assert.Equal(t, "1000.00", body.Daily)
	assert.Equal(t, "125.00", body.Hourly)
	assert.Equal(t, "2.08", body.Minute)
	assert.Equal(t, "312000.00", body.Yearly)
	assert.Equal(t, 26, body.WorkDaysPerMonth)
	assert.Equal(t, 8, body.WorkHoursPerDay)
	assert.Equal(t, "PKR", body.Currency)

	require.Len(t, body.Fields, 5)
	assert.Equal(t, "monthly", body.Fields[0].Key)
	assert.Equal(t, "Rs 26,000.00", body.Fields[0].Formatted)
}

func TestComputeBreakdown_NumericAmountAndUSD(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/breakdown",
		`{"amount":1000,"time_unit":"weekly","work_days_per_month":25,"work_hours_per_day":10,"currency":"usd"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[BreakdownResponse](t, resp)
	assert.Equal(t, "4000.00", body.Monthly)
	assert.Equal(t, "160.00", body.Daily)
	assert.Equal(t, "16.00", body.Hourly)
	assert.Equal(t, "0.27", body.Minute)
	assert.Equal(t, "48000.00", body.Yearly)
	assert.Equal(t, "USD", body.Currency)
	assert.Equal(t, "$4,000.00", body.Fields[0].Formatted)
}

func TestComputeBreakdown_ExponentNumberAmount(t *testing.T) {
	// GIVEN: Finite non-negative JSON numbers written with an exponent
	// WHEN: Posting them as the amount
	// THEN: They are computed, not treated as unparsable text

	srv := newTestServer(t)

	for body, want := range map[string]string{
		`{"amount":1e5,"time_unit":"monthly"}`:    "100000.00",
		`{"amount":2.6E4,"time_unit":"monthly"}`:  "26000.00",
		`{"amount":3.12e+5,"time_unit":"yearly"}`: "26000.00",
	} {
		resp := postJSON(t, srv, "/api/breakdown", body)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)

		got := decode[BreakdownResponse](t, resp)
		assert.Equal(t, want, got.Monthly, body)
	}
}

func TestComputeBreakdown_InvalidAmountIsZeroNotError(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"amount":"","time_unit":"monthly"}`,
		`{"amount":-5,"time_unit":"monthly"}`,
		`{"amount":"-5","time_unit":"yearly"}`,
		`{"amount":"abc"}`,
		`{}`,
	} {
		resp := postJSON(t, srv, "/api/breakdown", body)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)

		got := decode[BreakdownResponse](t, resp)
		for _, v := range []string{got.Minute, got.Hourly, got.Daily, got.Monthly, got.Yearly} {
			assert.Equal(t, "0.00", v, body)
		}
	}
}

func TestComputeBreakdown_ExplicitZeroDaysYieldsZero(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/breakdown", `{"amount":"26000","work_days_per_month":0}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[BreakdownResponse](t, resp)
	assert.Equal(t, 0, body.WorkDaysPerMonth)
	assert.Equal(t, "0.00", body.Monthly)
}

func TestComputeBreakdown_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"amount":`},
		{"amount object", `{"amount":{}}`},
		{"unknown currency", `{"amount":"1","currency":"EUR"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/api/breakdown", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			errResp := decode[ErrorResponse](t, resp)
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestGetBreakdown_Query(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/breakdown?amount=312000&time_unit=Yearly&days=26&hours=8&currency=USD")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[BreakdownResponse](t, resp)
	assert.Equal(t, "yearly", body.TimeUnit)
	assert.Equal(t, "26000.00", body.Monthly)
	assert.Equal(t, "$312,000.00", body.Fields[1].Formatted)
}

func TestGetBreakdown_UnknownUnitPassesThrough(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/breakdown?amount=26000&time_unit=fortnightly")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[BreakdownResponse](t, resp)
	assert.Equal(t, "fortnightly", body.TimeUnit)
	assert.Equal(t, "26000.00", body.Monthly)
}

func TestGetBreakdown_BadHours(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/breakdown?amount=1&hours=eight")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// OPTIONS
// =============================================================================

func TestGetOptions(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/options")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[OptionsResponse](t, resp)
	require.Len(t, body.TimeUnits, 5)
	assert.Equal(t, "monthly", body.TimeUnits[0].Value)
	assert.Equal(t, "monthly", body.DefaultTimeUnit)
	assert.Equal(t, "PKR", body.DefaultCurrency)
	assert.Equal(t, 26, body.WorkDaysPerMonth)
	assert.Equal(t, earnings.Range{Min: 1, Max: 31}, body.WorkDaysRange)
	assert.Equal(t, earnings.Range{Min: 1, Max: 24}, body.WorkHoursRange)
}

func TestListCurrencies(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/currencies")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[[]CurrencyDTO](t, resp)
	codes := map[string]CurrencyDTO{}
	for _, c := range body {
		codes[c.Code] = c
	}
	require.Contains(t, codes, "PKR")
	require.Contains(t, codes, "USD")
	assert.Equal(t, "$", codes["USD"].Symbol)
	assert.Equal(t, "en-US", codes["USD"].Locale)
}

func TestListTimeUnitsAndHealth(t *testing.T) {
	srv := newTestServer(t)

	units := decode[[]TimeUnitDTO](t, get(t, srv, "/api/time-units"))
	assert.Len(t, units, 5)

	health := decode[map[string]string](t, get(t, srv, "/api/health"))
	assert.Equal(t, "ok", health["status"])
}

func TestAmountField_Unmarshal(t *testing.T) {
	tests := map[string]string{
		`"26000"`: "26000",
		`26000`:   "26000",
		`12.5`:    "12.5",
		`26000.0`: "26000",
		`1e5`:     "100000",
		`2.6E4`:   "26000",
		`-5`:      "-5",
		`null`:    "",
		`" 7 "`:   " 7 ",
	}
	for in, want := range tests {
		var a AmountField
		require.NoError(t, json.Unmarshal([]byte(in), &a), in)
		assert.Equal(t, want, string(a), in)
	}

	var a AmountField
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
}
