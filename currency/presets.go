package currency

import (
	"golang.org/x/text/language"
)

const (
	CodePKR = "PKR"
	CodeUSD = "USD"

	// DefaultCode is preselected in the form.
	DefaultCode = CodePKR
)

var (
	localePK = language.MustParse("en-PK")
	localeUS = language.AmericanEnglish
)

func init() {
	Register(NewLocaleFormatter(CodePKR, "Rs", localePK, true))
	Register(NewLocaleFormatter(CodeUSD, "$", localeUS, false))
}
