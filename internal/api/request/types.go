package request

import "github.com/kdfca/academy/internal/validation"

// RegisterPlayerRequest is the request body for submitting the player registration form
type RegisterPlayerRequest = validation.PlayerInput

// ApplyCoachRequest is the request body for submitting the coach application form
type ApplyCoachRequest = validation.CoachInput

// SignUpRequest is the request body for submitting the sign-up form
type SignUpRequest = validation.UserInput

// SetStatusRequest is the request body for reviewing a registration or application
type SetStatusRequest struct {
	Status string `json:"status"`
}

// AddTodoRequest is the request body for adding a todo
type AddTodoRequest struct {
	Text string `json:"text"`
}

// PasswordStrengthRequest is the request body for scoring a candidate password
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}
