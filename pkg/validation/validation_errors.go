package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels the frontend shows
var FieldLabels = map[string]string{
	"PrimaryJobTitle": "Primary job title",
	"SeniorityLevel":  "Seniority level",
	"WorkPreference":  "Work preference",
	"TechnicalSkills": "Technical skills",
	"SoftSkills":      "Soft skills",
	"Experience":      "Experience",
	"WritingTone":     "Writing tone",
	"BrandingSummary": "Branding summary",
	"EmailLength":     "Email length",
	"Name":            "Skill name",
	"Years":           "Years of experience",
	"Confidence":      "Confidence",
	"Role":            "Role",
	"Company":         "Company",
	"Duration":        "Duration",
	"Achievements":    "Achievements",
	"Metrics":         "Metrics",
	"FreshnessDays":   "Posting freshness (days)",
	"SpeedQuality":    "AI speed/quality",
	"Min":             "Minimum salary",
	"Max":             "Maximum salary",
	"Currency":        "Currency",
	"Country":         "Country",
	"City":            "City",
	"Timezone":        "Timezone",
	"Language":        "Language",
	"Email":           "Email",
	"Password":        "Password",
}

// FormatValidationErrors converts validator.ValidationErrors into messages
// the frontend can show next to form fields
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)
	case "job_title":
		return fmt.Sprintf("%s may only contain letters, numbers, and common punctuation", label)
	case "no_emoji":
		return fmt.Sprintf("%s may not contain emoji or special symbols", label)
	case "currency_code":
		return fmt.Sprintf("%s must be a three-letter currency code like USD", label)
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
