package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"

	"github.com/warp/earnings-engine/earnings"
)

type Config struct {
	Address         string   `env:"RUN_ADDRESS"          envDefault:"localhost:8080" validate:"required"`
	LogLvl          string   `env:"LOG_LVL"              envDefault:"info"           validate:"oneof=debug info error"`
	DefaultCurrency string   `env:"DEFAULT_CURRENCY"     envDefault:"PKR"            validate:"required,len=3"`
	WorkDays        int      `env:"WORK_DAYS_PER_MONTH"  envDefault:"26"             validate:"min=1,max=31"`
	WorkHours       int      `env:"WORK_HOURS_PER_DAY"   envDefault:"8"              validate:"min=1,max=24"`
	AllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:8080" envSeparator:","`
}

// New reads the environment, then lets args override it.
func New(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("earnings", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	fs.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	fs.StringVar(&cfg.DefaultCurrency, "c", cfg.DefaultCurrency, "default currency code")
	fs.IntVar(&cfg.WorkDays, "days", cfg.WorkDays, "default work days per month")
	fs.IntVar(&cfg.WorkHours, "hours", cfg.WorkHours, "default work hours per day")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Schedule is the default schedule applied when a request omits one.
func (c *Config) Schedule() earnings.Schedule {
	return earnings.Schedule{WorkDaysPerMonth: c.WorkDays, WorkHoursPerDay: c.WorkHours}
}
