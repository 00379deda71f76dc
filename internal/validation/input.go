package validation

import (
	"encoding/json"
	"fmt"
)

// RawValue is an untyped form value. It decodes from either a JSON string or a
// JSON number so numeric form fields can arrive the way a browser form sends them.
type RawValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *RawValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("form value must be a string or number: %w", err)
	}
	*v = RawValue(n.String())
	return nil
}

// PlayerInput is the raw content of the player registration form
type PlayerInput struct {
	Name       string   `json:"name" validate:"notblank,personname"`
	Age        RawValue `json:"age" validate:"notblank,posint"`
	Position   string   `json:"position" validate:"notblank,enum=position"`
	Experience RawValue `json:"experience" validate:"notblank,nonnegint"`
	Phone      string   `json:"phone" validate:"notblank"`
	Email      string   `json:"email" validate:"notblank,academy_email"`
}

// CoachInput is the raw content of the coach application form
type CoachInput struct {
	Name           string   `json:"name" validate:"notblank,personname"`
	Specialization string   `json:"specialization" validate:"notblank,enum=specialization"`
	Experience     RawValue `json:"experience" validate:"notblank,nonnegint"`
	Certifications string   `json:"certifications" validate:"notblank,enum=certification"`
	Phone          string   `json:"phone" validate:"notblank"`
	Email          string   `json:"email" validate:"notblank,academy_email"`
	Qualifications string   `json:"qualifications"`
}

// UserInput is the raw content of the sign-up form
type UserInput struct {
	Firstname       string `json:"firstname" validate:"notblank,personname"`
	Middlename      string `json:"middlename" validate:"omitempty,personname"`
	Lastname        string `json:"lastname" validate:"notblank,personname"`
	Email           string `json:"email" validate:"notblank,academy_email"`
	Password        string `json:"password" validate:"required,min=8,pwcomposition"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
