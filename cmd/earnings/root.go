package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warp/earnings-engine/currency"
	"github.com/warp/earnings-engine/earnings"
	"github.com/warp/earnings-engine/presenter"
)

type flags struct {
	unit     string
	days     int
	hours    int
	currency string
}

func rootCmd(out io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "earnings AMOUNT",
		Short: "Break a salary down into monthly, yearly, daily, hourly and per-minute figures",
		Example: "  earnings 26000\n" +
			"  earnings 312000 --unit yearly --currency USD\n" +
			"  earnings 1000 --unit weekly --days 25 --hours 10",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.session()
			if err != nil {
				return err
			}
			if !s.SetAmount(strings.TrimSpace(args[0])) {
				return fmt.Errorf("amount %q: digits with an optional decimal point expected", args[0])
			}
			printView(out, s.View())
			return nil
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&f.unit, "unit", "u", string(earnings.Monthly), "time unit of the amount: hourly, daily, weekly, monthly, yearly")
	pf.IntVarP(&f.days, "days", "d", earnings.DefaultWorkDaysPerMonth, "work days per month")
	pf.IntVarP(&f.hours, "hours", "H", earnings.DefaultWorkHoursPerDay, "work hours per day")
	pf.StringVarP(&f.currency, "currency", "c", currency.DefaultCode, "display currency")

	root.AddCommand(interactiveCmd(f, out))

	return root
}

// interactiveCmd reads "field value" lines and reprints the breakdown after
// every change, like a form recomputing on each keystroke.
func interactiveCmd(f *flags, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Read field changes from stdin and print the breakdown after each one",
		Long: "Each line is a field name and a value:\n" +
			"  amount 26000\n  unit yearly\n  days 22\n  hours 7\n  currency USD",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.session()
			if err != nil {
				return err
			}
			s.Subscribe(func(v presenter.View) { printView(out, v) })
			return runInteractive(cmd.InOrStdin(), out, s)
		},
	}
}

func runInteractive(in io.Reader, out io.Writer, s *presenter.Session) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		field, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		switch strings.ToLower(field) {
		case "amount":
			if !s.SetAmount(value) {
				fmt.Fprintf(out, "ignored amount %q\n", value)
			}
		case "unit":
			u, ok := earnings.ParseTimeUnit(value)
			if !ok {
				u = earnings.TimeUnit(value)
			}
			s.SetUnit(u)
		case "days":
			s.SetWorkDays(value)
		case "hours":
			s.SetWorkHours(value)
		case "currency":
			if err := s.SetCurrency(value); err != nil {
				fmt.Fprintln(out, err)
			}
		default:
			fmt.Fprintf(out, "unknown field %q\n", field)
		}
	}
	return scanner.Err()
}

func (f *flags) session() (*presenter.Session, error) {
	unit, ok := earnings.ParseTimeUnit(f.unit)
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", f.unit)
	}
	return presenter.NewSession(presenter.Options{
		Unit:     unit,
		Schedule: &earnings.Schedule{WorkDaysPerMonth: f.days, WorkHoursPerDay: f.hours},
		Currency: f.currency,
	})
}

func printView(out io.Writer, v presenter.View) {
	fmt.Fprintf(out, "Earnings Breakdown (%s, %s, %d days x %d hours)\n",
		v.Currency, v.Input.Unit, v.Input.WorkDaysPerMonth, v.Input.WorkHoursPerDay)
	for _, row := range v.Rows {
		fmt.Fprintf(out, "  %-8s %s\n", row.Label, row.Formatted)
	}
}
