package model

// RecordID identifies a record within its collection.
// IDs are time-derived integers handed out by the store's allocator.
type RecordID int64

// CollectionKind names one of the store's collections
type CollectionKind string

const (
	KindRegistrations CollectionKind = "registrations"
	KindCoaches       CollectionKind = "coaches"
	KindAuth          CollectionKind = "auth"
	KindTodo          CollectionKind = "todo"
	KindCounter       CollectionKind = "counter"
)

// CollectionKinds lists every collection, in the order they are rehydrated
var CollectionKinds = []CollectionKind{KindRegistrations, KindCoaches, KindAuth, KindTodo, KindCounter}

// Valid reports whether k names a known collection
func (k CollectionKind) Valid() bool {
	switch k {
	case KindRegistrations, KindCoaches, KindAuth, KindTodo, KindCounter:
		return true
	}
	return false
}

// PlayerRegistration is a submitted player application
type PlayerRegistration struct {
	ID         RecordID     `json:"id"`
	Name       string       `json:"name"`
	Age        int          `json:"age"`
	Position   Position     `json:"position"`
	Experience int          `json:"experience"` // years
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	Status     RecordStatus `json:"status"`
}

// CoachApplication is a submitted coaching application
type CoachApplication struct {
	ID             RecordID       `json:"id"`
	Name           string         `json:"name"`
	Specialization Specialization `json:"specialization"`
	Experience     int            `json:"experience"`
	Certifications Certification  `json:"certifications"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Qualifications string         `json:"qualifications,omitempty"`
	Status         RecordStatus   `json:"status"`
}

// UserAccount is a signed-up user.
// The raw password never reaches this record; only its strength score and a bcrypt digest do.
type UserAccount struct {
	ID               RecordID `json:"id"`
	Firstname        string   `json:"firstname"`
	Middlename       string   `json:"middlename,omitempty"`
	Lastname         string   `json:"lastname"`
	Email            string   `json:"email"`
	PasswordStrength int      `json:"password_strength"`
	PasswordHash     string   `json:"password_hash,omitempty"`
}

// TodoItem is an entry of the demo todo list
type TodoItem struct {
	ID        RecordID `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
}

// Collection is an append-ordered sequence of records plus status bookkeeping
type Collection[T any] struct {
	Items  []T              `json:"items"`
	Status CollectionStatus `json:"status"`
	Error  string           `json:"error,omitempty"` // empty when no error is set
}

// NewCollection returns an empty idle collection
func NewCollection[T any]() Collection[T] {
	return Collection[T]{Items: []T{}, Status: CollectionIdle}
}

// Clone returns a copy whose item slice does not alias c's
func (c Collection[T]) Clone() Collection[T] {
	items := make([]T, len(c.Items))
	copy(items, c.Items)
	return Collection[T]{Items: items, Status: c.Status, Error: c.Error}
}
