package validation_test

import (
	"testing"

	"go-jobseeker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title    string `validate:"omitempty,job_title"`
	Summary  string `validate:"omitempty,no_emoji"`
	Currency string `validate:"omitempty,currency_code"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestJobTitle(t *testing.T) {
	v := newValidate()

	valid := []string{"", "Software Engineer", "C++ Developer", "Staff Engineer, Platform", "R&D Lead (EMEA)"}
	for _, title := range valid {
		assert.NoError(t, v.Struct(sample{Title: title}), title)
	}

	invalid := []string{"<script>alert(1)</script>", "Dev\x00eloper", "Engineer 🚀"}
	for _, title := range invalid {
		assert.Error(t, v.Struct(sample{Title: title}), title)
	}
}

func TestNoEmoji(t *testing.T) {
	v := newValidate()

	assert.NoError(t, v.Struct(sample{Summary: "Pragmatic backend engineer with 8 years in fintech."}))
	assert.Error(t, v.Struct(sample{Summary: "Best engineer ever 🎉"}))
}

func TestCurrencyCode(t *testing.T) {
	v := newValidate()

	assert.NoError(t, v.Struct(sample{Currency: "USD"}))
	assert.NoError(t, v.Struct(sample{Currency: ""}))
	assert.Error(t, v.Struct(sample{Currency: "usd"}))
	assert.Error(t, v.Struct(sample{Currency: "DOLLARS"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidate()

	err := v.Struct(sample{Currency: "usd"})
	assert.Error(t, err)

	msgs := validation.FormatValidationErrors(err)
	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "three-letter currency code")
}
