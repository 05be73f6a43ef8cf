package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) , +
	titleRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),+#-]+$`)

	// Uppercase ISO 4217 style code, e.g. USD, EUR
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// RegisterValidators registers custom validators on the shared instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("job_title", JobTitle)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("currency_code", CurrencyCode)
}

// JobTitle accepts titles like "Staff Engineer, Platform" or "C++ Developer"
// while rejecting markup and control characters. Empty is fine; the field is
// optional.
func JobTitle(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return titleRegex.MatchString(val)
}

// NoEmoji rejects emoji and modifier symbols. Free-text profile fields feed
// generated documents downstream, so keep them plain.
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// CurrencyCode validates a three-letter uppercase currency code
func CurrencyCode(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return currencyRegex.MatchString(val)
}
