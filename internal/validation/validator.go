// Package validation checks raw form input against the academy's field rules
// and turns accepted input into typed records.
//
// Validation never has side effects. A rejected input yields a non-empty
// Errors mapping; an accepted input yields a typed record and a nil mapping.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kdfca/academy/internal/model"
)

// Policy holds the configurable parts of the rule set
type Policy struct {
	// MinPasswordStrength is the score SubmitEnabled requires. 0 disables the gate.
	MinPasswordStrength int
	// MinAge and MaxAge bound a player's age when non-zero
	MinAge int
	MaxAge int
}

// DefaultPolicy returns the policy with no strength gate and no age bounds
func DefaultPolicy() Policy {
	return Policy{}
}

// Validator checks form input. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	policy   Policy
}

// New creates a Validator with the given policy
func New(policy Policy) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form/json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}

	return &Validator{validate: v, policy: policy}
}

// Policy returns the validator's policy
func (v *Validator) Policy() Policy {
	return v.policy
}

// ValidatePlayer checks a player registration form.
// On success the returned record has status pending and a zero ID; the caller assigns the ID.
func (v *Validator) ValidatePlayer(in PlayerInput) (model.PlayerRegistration, Errors) {
	errs := v.check(in)
	v.checkAgeBounds(in.Age, errs)
	if len(errs) > 0 {
		return model.PlayerRegistration{}, errs
	}

	age, _ := parseInt(string(in.Age))
	experience, _ := parseInt(string(in.Experience))

	return model.PlayerRegistration{
		Name:       strings.TrimSpace(in.Name),
		Age:        age,
		Position:   model.Position(strings.TrimSpace(in.Position)),
		Experience: experience,
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.TrimSpace(in.Email),
		Status:     model.StatusPending,
	}, nil
}

// ValidateCoach checks a coach application form.
// On success the returned record has status pending and a zero ID.
func (v *Validator) ValidateCoach(in CoachInput) (model.CoachApplication, Errors) {
	errs := v.check(in)
	if len(errs) > 0 {
		return model.CoachApplication{}, errs
	}

	experience, _ := parseInt(string(in.Experience))

	return model.CoachApplication{
		Name:           strings.TrimSpace(in.Name),
		Specialization: model.Specialization(strings.TrimSpace(in.Specialization)),
		Experience:     experience,
		Certifications: model.Certification(strings.TrimSpace(in.Certifications)),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		Qualifications: strings.TrimSpace(in.Qualifications),
		Status:         model.StatusPending,
	}, nil
}

// ValidateUser checks a sign-up form. The returned account carries the
// password's strength score but never the password itself.
func (v *Validator) ValidateUser(in UserInput) (model.UserAccount, Errors) {
	errs := v.check(in)
	if len(errs) > 0 {
		return model.UserAccount{}, errs
	}

	return model.UserAccount{
		Firstname:        strings.TrimSpace(in.Firstname),
		Middlename:       strings.TrimSpace(in.Middlename),
		Lastname:         strings.TrimSpace(in.Lastname),
		Email:            strings.TrimSpace(in.Email),
		PasswordStrength: PasswordStrength(in.Password),
	}, nil
}

// SubmitEnabled reports whether password meets the policy's minimum strength.
// It drives the submit button only; ValidateUser applies the composition rules.
func (v *Validator) SubmitEnabled(password string) bool {
	return PasswordStrength(password) >= v.policy.MinPasswordStrength
}

func (v *Validator) check(input any) Errors {
	errs := Errors{}
	err := v.validate.Struct(input)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable when input is not a struct
		panic(fmt.Sprintf("validation: %v", err))
	}

	for _, fe := range fieldErrs {
		kind := kindForTag(fe.Tag())
		errs.Add(fe.Field(), kind, messageFor(fe.Field(), kind))
	}
	return errs
}

func (v *Validator) checkAgeBounds(raw RawValue, errs Errors) {
	if errs.Has("age") || (v.policy.MinAge == 0 && v.policy.MaxAge == 0) {
		return
	}
	age, err := parseInt(string(raw))
	if err != nil {
		return
	}
	switch {
	case v.policy.MinAge > 0 && age < v.policy.MinAge,
		v.policy.MaxAge > 0 && age > v.policy.MaxAge:
		errs.Add("age", KindOutOfRange, ageRangeMessage(v.policy.MinAge, v.policy.MaxAge))
	}
}

func ageRangeMessage(lo, hi int) string {
	switch {
	case lo > 0 && hi > 0:
		return fmt.Sprintf("Age must be between %d and %d", lo, hi)
	case lo > 0:
		return fmt.Sprintf("Age must be at least %d", lo)
	default:
		return fmt.Sprintf("Age must be at most %d", hi)
	}
}
