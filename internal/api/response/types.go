package response

import (
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/services/registration"
)

// Collection is a collection's items plus its status bookkeeping
type Collection[T any] struct {
	Items  []T    `json:"items"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CollectionFromModel converts a model collection, mapping each item with conv
func CollectionFromModel[M, T any](c model.Collection[M], conv func(M) T) Collection[T] {
	items := make([]T, len(c.Items))
	for i, item := range c.Items {
		items[i] = conv(item)
	}
	return Collection[T]{
		Items:  items,
		Status: string(c.Status),
		Error:  c.Error,
	}
}

// Player represents a player registration in API responses
type Player struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Position   string `json:"position"`
	Experience int    `json:"experience"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

// PlayerFromModel converts a model.PlayerRegistration
func PlayerFromModel(p model.PlayerRegistration) Player {
	return Player{
		ID:         int64(p.ID),
		Name:       p.Name,
		Age:        p.Age,
		Position:   string(p.Position),
		Experience: p.Experience,
		Phone:      p.Phone,
		Email:      p.Email,
		Status:     string(p.Status),
	}
}

// Coach represents a coach application in API responses
type Coach struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience"`
	Certifications string `json:"certifications"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Qualifications string `json:"qualifications,omitempty"`
	Status         string `json:"status"`
}

// CoachFromModel converts a model.CoachApplication
func CoachFromModel(c model.CoachApplication) Coach {
	return Coach{
		ID:             int64(c.ID),
		Name:           c.Name,
		Specialization: string(c.Specialization),
		Experience:     c.Experience,
		Certifications: string(c.Certifications),
		Phone:          c.Phone,
		Email:          c.Email,
		Qualifications: c.Qualifications,
		Status:         string(c.Status),
	}
}

// User represents a user account in API responses. The password digest is never exposed.
type User struct {
	ID               int64  `json:"id"`
	Firstname        string `json:"firstname"`
	Middlename       string `json:"middlename,omitempty"`
	Lastname         string `json:"lastname"`
	Email            string `json:"email"`
	PasswordStrength int    `json:"password_strength"`
}

// UserFromModel converts a model.UserAccount
func UserFromModel(u model.UserAccount) User {
	return User{
		ID:               int64(u.ID),
		Firstname:        u.Firstname,
		Middlename:       u.Middlename,
		Lastname:         u.Lastname,
		Email:            u.Email,
		PasswordStrength: u.PasswordStrength,
	}
}

// Todo represents a todo item in API responses
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TodoFromModel converts a model.TodoItem
func TodoFromModel(t model.TodoItem) Todo {
	return Todo{
		ID:        int64(t.ID),
		Text:      t.Text,
		Completed: t.Completed,
	}
}

// Members is the combined roster of players and coaches
type Members struct {
	Players []Player `json:"players"`
	Coaches []Coach  `json:"coaches"`
}

// MembersFromService converts a registration.Members roster
func MembersFromService(m registration.Members) Members {
	players := make([]Player, len(m.Players))
	for i, p := range m.Players {
		players[i] = PlayerFromModel(p)
	}
	coaches := make([]Coach, len(m.Coaches))
	for i, c := range m.Coaches {
		coaches[i] = CoachFromModel(c)
	}
	return Members{Players: players, Coaches: coaches}
}

// Counter is the counter value
type Counter struct {
	Value int `json:"value"`
}

// PasswordStrength is the score of a candidate password
type PasswordStrength struct {
	Score         int  `json:"score"`
	Max           int  `json:"max"`
	SubmitEnabled bool `json:"submit_enabled"`
}

// Health is the liveness response
type Health struct {
	Status string `json:"status"`
}
