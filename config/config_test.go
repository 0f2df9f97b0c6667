package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetEnv(t *testing.T) {
	for _, k := range []string{
		"RUN_ADDRESS", "LOG_LVL", "DEFAULT_CURRENCY",
		"WORK_DAYS_PER_MONTH", "WORK_HOURS_PER_DAY", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestNew_Defaults(t *testing.T) {
	resetEnv(t)

	cfg, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "info", cfg.LogLvl)
	assert.Equal(t, "PKR", cfg.DefaultCurrency)
	assert.Equal(t, 26, cfg.WorkDays)
	assert.Equal(t, 8, cfg.WorkHours)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.AllowedOrigins)
}

func TestNew_EnvThenFlags(t *testing.T) {
	resetEnv(t)
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("WORK_DAYS_PER_MONTH", "22")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := New([]string{"-a", "localhost:8081", "-c", "USD", "-hours", "7"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLvl)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.Equal(t, 22, cfg.WorkDays)
	assert.Equal(t, 7, cfg.WorkHours)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)

	s := cfg.Schedule()
	assert.Equal(t, 22, s.WorkDaysPerMonth)
	assert.Equal(t, 7, s.WorkHoursPerDay)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "log level", env: map[string]string{"LOG_LVL": "verbose"}},
		{name: "days out of range", args: []string{"-days", "40"}},
		{name: "zero hours", args: []string{"-hours", "0"}},
		{name: "currency length", args: []string{"-c", "RUPEE"}},
		{name: "non-numeric env", env: map[string]string{"WORK_DAYS_PER_MONTH": "many"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := New(tt.args)
			assert.Error(t, err)
		})
	}
}
