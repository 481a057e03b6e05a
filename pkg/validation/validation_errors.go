package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"job-portal-backend/pkg/apperror"
)

// FieldLabels maps wire field names to user-friendly labels.
var FieldLabels = map[string]string{
	// Auth fields
	"user_name":        "Name",
	"phone_number":     "Phone number",
	"email":            "Email",
	"password":         "Password",
	"current_password": "Current password",
	"new_password":     "New password",
	"role":             "Role",

	// Candidate profile fields
	"about":            "About section",
	"bio":              "Bio section",
	"key_skills":       "Key skills",
	"profile_image":    "Profile image",
	"curriculum_vitae": "Curriculum vitae",
	"date_of_birth":    "Date of birth",
	"gender":           "Gender",
	"current_location": "Current location",
	"house_no":         "House no",
	"street":           "Street",
	"city":             "City",
	"state":            "State",
	"country":          "Country",
	"pin_code":         "Pin code",

	// Work experience fields
	"designation":     "Designation",
	"company_name":    "Company name",
	"current_status":  "Current status",
	"start_date":      "Start date",
	"end_date":        "End date",
	"notice_period":   "Notice period",
	"annual_salary":   "Annual salary",
	"job_description": "Job description",
	"location":        "Location",

	// Education fields
	"qualification":  "Qualification",
	"specialization": "Specialization",
	"institute":      "Institute",
	"pass_year":      "Pass year",

	// Certification fields
	"certification_name": "Certification name",
	"issued_by":          "Issued by",
	"issued_year":        "Issued year",

	// Skill test fields
	"test_name":       "Test name",
	"instructions":    "Instructions",
	"total_questions": "Total questions",
	"questions":       "Questions",
	"question":        "Question",
	"options":         "Options",
	"answer":          "Answer",
}

// Translate converts a validator error into the aggregated per-field failure
// list sent back to the client. Every failing rule is reported, not just the
// first one.
func Translate(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, apperror.FieldError{
			Field:   fieldName(e),
			Message: message(e),
		})
	}
	return out
}

// fieldName strips the struct prefix and any slice indexes so nested failures
// report the leaf wire name, e.g. "questions[1].answer" -> "answer".
func fieldName(e validator.FieldError) string {
	name := e.Field()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func message(e validator.FieldError) string {
	label := fieldLabel(fieldName(e))

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s is not valid", label)
	case "valid_phone":
		return fmt.Sprintf("%s is not valid", label)
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or special symbols", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters long", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s items", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(e.Param(), " "), ", "))
	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)
	case "datetime":
		return fmt.Sprintf("%s has an invalid date format", label)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", label)
	case "dive":
		return fmt.Sprintf("%s contains invalid items", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func fieldLabel(name string) string {
	if label, ok := FieldLabels[name]; ok {
		return label
	}
	// snake_case -> spaced words as a fallback
	words := strings.Split(name, "_")
	for i, w := range words {
		if i == 0 && w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
