package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kdfca/academy/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case response.Collection[response.Player]:
		o.printPlayers(v)
	case response.Coach:
		o.printCoach(v)
	case response.Collection[response.Coach]:
		o.printCoaches(v)
	case response.User:
		o.printUser(v)
	case response.Collection[response.User]:
		o.printUsers(v)
	case response.Members:
		o.printMembers(v)
	case response.Todo:
		o.printTodo(v)
	case response.Collection[response.Todo]:
		o.printTodos(v)
	case response.Counter:
		fmt.Fprintf(o.w, "Counter: %d\n", v.Value)
	case response.PasswordStrength:
		o.printPasswordStrength(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p response.Player) {
	fmt.Fprintf(o.w, "Player: %s (%d)\n", p.Name, p.ID)
	fmt.Fprintf(o.w, "Position: %s\n", p.Position)
	fmt.Fprintf(o.w, "Age: %d\n", p.Age)
	fmt.Fprintf(o.w, "Experience: %s\n", years(p.Experience))
	fmt.Fprintf(o.w, "Phone: %s\n", p.Phone)
	fmt.Fprintf(o.w, "Email: %s\n", p.Email)
	fmt.Fprintf(o.w, "Status: %s\n", p.Status)
}

func (o *Output) printPlayers(c response.Collection[response.Player]) {
	o.printHeader("Players", len(c.Items), c.Status, c.Error)
	for _, p := range c.Items {
		o.printPlayerLine(p)
	}
}

func (o *Output) printPlayerLine(p response.Player) {
	fmt.Fprintf(o.w, "  - %d %s, %s, age %d, %s - %s\n", p.ID, p.Name, p.Position, p.Age, years(p.Experience), p.Status)
}

func (o *Output) printCoach(c response.Coach) {
	fmt.Fprintf(o.w, "Coach: %s (%d)\n", c.Name, c.ID)
	fmt.Fprintf(o.w, "Specialization: %s\n", c.Specialization)
	fmt.Fprintf(o.w, "Certification: %s\n", c.Certifications)
	fmt.Fprintf(o.w, "Experience: %s\n", years(c.Experience))
	fmt.Fprintf(o.w, "Phone: %s\n", c.Phone)
	fmt.Fprintf(o.w, "Email: %s\n", c.Email)
	if c.Qualifications != "" {
		fmt.Fprintf(o.w, "Qualifications: %s\n", c.Qualifications)
	}
	fmt.Fprintf(o.w, "Status: %s\n", c.Status)
}

func (o *Output) printCoaches(c response.Collection[response.Coach]) {
	o.printHeader("Coaches", len(c.Items), c.Status, c.Error)
	for _, coach := range c.Items {
		o.printCoachLine(coach)
	}
}

func (o *Output) printCoachLine(c response.Coach) {
	fmt.Fprintf(o.w, "  - %d %s, %s, %s - %s\n", c.ID, c.Name, c.Specialization, c.Certifications, c.Status)
}

func (o *Output) printUser(u response.User) {
	fmt.Fprintf(o.w, "User: %s (%d)\n", fullName(u), u.ID)
	fmt.Fprintf(o.w, "Email: %s\n", u.Email)
	fmt.Fprintf(o.w, "Password strength: %d/5\n", u.PasswordStrength)
}

func (o *Output) printUsers(c response.Collection[response.User]) {
	o.printHeader("Users", len(c.Items), c.Status, c.Error)
	for _, u := range c.Items {
		fmt.Fprintf(o.w, "  - %d %s <%s>\n", u.ID, fullName(u), u.Email)
	}
}

func (o *Output) printMembers(m response.Members) {
	fmt.Fprintf(o.w, "Players (%d):\n", len(m.Players))
	for _, p := range m.Players {
		o.printPlayerLine(p)
	}
	fmt.Fprintf(o.w, "Coaches (%d):\n", len(m.Coaches))
	for _, c := range m.Coaches {
		o.printCoachLine(c)
	}
}

func (o *Output) printTodo(t response.Todo) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Fprintf(o.w, "[%s] %d %s\n", mark, t.ID, t.Text)
}

func (o *Output) printTodos(c response.Collection[response.Todo]) {
	o.printHeader("Todos", len(c.Items), c.Status, c.Error)
	for _, t := range c.Items {
		fmt.Fprint(o.w, "  ")
		o.printTodo(t)
	}
}

func (o *Output) printPasswordStrength(p response.PasswordStrength) {
	fmt.Fprintf(o.w, "Strength: %d/%d %s\n", p.Score, p.Max, strings.Repeat("#", p.Score)+strings.Repeat(".", p.Max-p.Score))
	fmt.Fprintf(o.w, "Submit enabled: %s\n", yesNo(p.SubmitEnabled))
}

// printHeader prints "<Title> (<n>):" and, when the collection is not idle, its status and error
func (o *Output) printHeader(title string, n int, status, errMsg string) {
	fmt.Fprintf(o.w, "%s (%d):\n", title, n)
	if status != "" && status != "idle" {
		fmt.Fprintf(o.w, "Status: %s\n", status)
	}
	if errMsg != "" {
		fmt.Fprintf(o.w, "Error: %s\n", errMsg)
	}
}

func fullName(u response.User) string {
	parts := []string{u.Firstname}
	if u.Middlename != "" {
		parts = append(parts, u.Middlename)
	}
	return strings.Join(append(parts, u.Lastname), " ")
}

func years(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
