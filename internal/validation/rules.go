package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kdfca/academy/internal/model"
)

const (
	minPasswordLength = 8
	specialChars      = "@$!%*?&"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z\s]{2,}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Custom tags registered on the underlying validator
const (
	tagNotBlank      = "notblank"
	tagPersonName    = "personname"
	tagEmail         = "academy_email"
	tagComposition   = "pwcomposition"
	tagPositiveInt   = "posint"
	tagNonNegInt     = "nonnegint"
	tagEnum          = "enum"
	tagBuiltinMin    = "min"
	tagBuiltinEq     = "eqfield"
	tagBuiltinRequir = "required"
)

var rules = map[string]validator.Func{
	tagNotBlank: func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	},
	tagPersonName: func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	},
	tagEmail: func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	},
	tagComposition: func(fl validator.FieldLevel) bool {
		c := classify(fl.Field().String())
		return c.lower && c.upper && c.digit && c.special
	},
	tagPositiveInt: func(fl validator.FieldLevel) bool {
		n, err := parseInt(fl.Field().String())
		return err == nil && n > 0
	},
	tagNonNegInt: func(fl validator.FieldLevel) bool {
		n, err := parseInt(fl.Field().String())
		return err == nil && n >= 0
	},
	tagEnum: func(fl validator.FieldLevel) bool {
		v := strings.TrimSpace(fl.Field().String())
		switch fl.Param() {
		case "position":
			return model.Position(v).Valid()
		case "specialization":
			return model.Specialization(v).Valid()
		case "certification":
			return model.Certification(v).Valid()
		}
		return false
	},
}

// kindForTag maps the failing validator tag to the rejection kind it represents
func kindForTag(tag string) Kind {
	switch tag {
	case tagNotBlank, tagBuiltinRequir:
		return KindRequired
	case tagBuiltinMin:
		return KindTooShort
	case tagComposition:
		return KindWeakComposition
	case tagBuiltinEq:
		return KindMismatch
	default:
		return KindInvalidFormat
	}
}

func isSpecial(r rune) bool {
	return strings.ContainsRune(specialChars, r)
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

var fieldLabels = map[string]string{
	"name":            "Full name",
	"firstname":       "First name",
	"middlename":      "Middle name",
	"lastname":        "Last name",
	"email":           "Email",
	"phone":           "Phone number",
	"age":             "Age",
	"experience":      "Years of experience",
	"position":        "Position",
	"specialization":  "Specialization",
	"certifications":  "Certification",
	"password":        "Password",
	"confirmPassword": "Password confirmation",
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func messageFor(field string, kind Kind) string {
	switch kind {
	case KindRequired:
		return label(field) + " is required"
	case KindTooShort:
		return "Password must be at least 8 characters long"
	case KindWeakComposition:
		return "Password must contain uppercase, lowercase, number and special character (" + specialChars + ")"
	case KindMismatch:
		return "Passwords do not match"
	case KindOutOfRange:
		return label(field) + " is out of range"
	case KindInvalidFormat:
		switch field {
		case "name", "firstname", "middlename", "lastname":
			return label(field) + " must contain only letters and spaces (minimum 2 characters)"
		case "email":
			return "Please enter a valid email address"
		case "age":
			return "Age must be a positive whole number"
		case "experience":
			return "Years of experience must be a whole number, zero or more"
		case "position", "specialization", "certifications":
			return "Please select a valid " + strings.ToLower(label(field))
		}
		return label(field) + " is invalid"
	}
	return label(field) + " is invalid"
}
