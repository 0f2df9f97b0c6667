/*
Package currency formats breakdown figures as localized currency strings.

PURPOSE:
  Currency only changes how a figure is displayed, never its value. Each
  currency is a Formatter strategy registered under its ISO code; callers
  look one up by code and hand it already-rounded decimals.

HOW IT WORKS:
  1. Presets (PKR, USD) register themselves on init()
  2. Presenters call Lookup(code) with the selected currency
  3. Format renders exactly 2 fractional digits with locale grouping

ADDING A CURRENCY:
  currency.Register(currency.NewLocaleFormatter("EUR", "€", language.German, true))

  No change to the earnings package is needed.

SEE ALSO:
  - presets.go: Built-in PKR and USD strategies
  - earnings/types.go: Breakdown values being formatted
*/
package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/warp/earnings-engine/earnings"
)

// ErrUnknownCurrency is returned when no Formatter is registered for a code.
var ErrUnknownCurrency = errors.New("unknown currency")

// Formatter renders a figure in one currency.
type Formatter interface {
	// Code returns the upper-case ISO 4217 code, e.g. "USD".
	Code() string

	// Symbol returns the display symbol, e.g. "$".
	Symbol() string

	// Locale returns the tag whose grouping conventions are used.
	Locale() language.Tag

	// Format renders v with exactly 2 fractional digits.
	Format(v decimal.Decimal) string
}

// =============================================================================
// REGISTRY
// =============================================================================

var (
	registry   = make(map[string]Formatter)
	registryMu sync.RWMutex
)

// Register adds or replaces the formatter for f.Code().
func Register(f Formatter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeCode(f.Code())] = f
}

// Lookup finds a formatter by code, ignoring case.
func Lookup(code string) (Formatter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[normalizeCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return f, nil
}

// MustLookup is Lookup that panics. Use for the built-in presets only.
func MustLookup(code string) Formatter {
	f, err := Lookup(code)
	if err != nil {
		panic(err)
	}
	return f
}

// List returns all registered formatters sorted by code.
func List() []Formatter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Formatter, 0, len(registry))
	for _, f := range registry {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// =============================================================================
// LOCALE FORMATTER
// =============================================================================

// LocaleFormatter groups digits per its locale and prefixes the symbol.
type LocaleFormatter struct {
	code        string
	symbol      string
	tag         language.Tag
	symbolSpace bool
	pattern     numberPattern
}

var _ Formatter = (*LocaleFormatter)(nil)

// NewLocaleFormatter builds a formatter. symbolSpace puts a space between
// the symbol and the number ("Rs 1,000.00" vs "$1,000.00").
func NewLocaleFormatter(code, symbol string, tag language.Tag, symbolSpace bool) *LocaleFormatter {
	return &LocaleFormatter{
		code:        normalizeCode(code),
		symbol:      symbol,
		tag:         tag,
		symbolSpace: symbolSpace,
		pattern:     newNumberPattern(message.NewPrinter(tag)),
	}
}

func (f *LocaleFormatter) Code() string         { return f.code }
func (f *LocaleFormatter) Symbol() string       { return f.symbol }
func (f *LocaleFormatter) Locale() language.Tag { return f.tag }

func (f *LocaleFormatter) Format(v decimal.Decimal) string {
	v = v.Round(earnings.Precision)
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}
	digits := f.pattern.format(v.StringFixed(earnings.Precision))
	if f.symbolSpace {
		return sign + f.symbol + " " + digits
	}
	return sign + f.symbol + digits
}

// numberPattern holds the separators and group sizes of a locale, read off
// the printer's rendering of a fixed sample. Digits are grouped from the
// exact decimal text, so no value ever passes through a float64.
type numberPattern struct {
	decimal   string
	group     string
	primary   int
	secondary int
}

// patternSample has three integer groups and renders exactly at scale 2.
const patternSample = 1234567.89

var defaultPattern = numberPattern{decimal: ".", group: ",", primary: 3, secondary: 3}

func newNumberPattern(p *message.Printer) numberPattern {
	sample := p.Sprint(number.Decimal(patternSample, number.Scale(2)))

	var runs, seps []string
	var cur, sep strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if sep.Len() > 0 {
				seps = append(seps, sep.String())
				sep.Reset()
			}
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			runs = append(runs, cur.String())
			cur.Reset()
		}
		sep.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}

	// "1,234,567.89" -> runs [1 234 567 89], seps [, , .]
	if len(runs) < 3 || len(seps) != len(runs)-1 {
		return defaultPattern
	}
	ints := runs[:len(runs)-1]
	pat := numberPattern{
		decimal: seps[len(seps)-1],
		group:   seps[0],
		primary: len([]rune(ints[len(ints)-1])),
	}
	pat.secondary = pat.primary
	if len(ints) > 2 {
		pat.secondary = len([]rune(ints[len(ints)-2]))
	}
	if pat.primary == 0 || pat.secondary == 0 {
		return defaultPattern
	}
	return pat
}

// format groups a non-negative fixed-point string such as "1234567.89".
func (p numberPattern) format(fixed string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")

	var groups []string
	n, size := len(intPart), p.primary
	for n > size {
		groups = append(groups, intPart[n-size:n])
		n -= size
		size = p.secondary
	}
	groups = append(groups, intPart[:n])

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(p.group)
		}
	}
	if hasFrac {
		b.WriteString(p.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// =============================================================================
// BREAKDOWN FORMATTING
// =============================================================================

// FormattedField is one result card: label, raw value and display text.
type FormattedField struct {
	Key       string          `json:"key"`
	Label     string          `json:"label"`
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
}

// FormatBreakdown renders every figure of b in display order.
func FormatBreakdown(f Formatter, b earnings.Breakdown) []FormattedField {
	fields := b.Fields()
	out := make([]FormattedField, 0, len(fields))
	for _, field := range fields {
		out = append(out, FormattedField{
			Key:       field.Key,
			Label:     field.Label,
			Value:     field.Value,
			Formatted: f.Format(field.Value),
		})
	}
	return out
}
