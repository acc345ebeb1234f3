package todosrepo

import (
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
)

// Todo is a titled item with an optional time estimate in minutes.
type Todo struct {
	ID           int        `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	TimeEstimate *int       `json:"time_estimate" db:"time_estimate"`
	Completed    bool       `json:"completed" db:"completed"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTodo contains fields for creating a new todo. ID is optional and,
// when set, must be unused.
type CreateTodo struct {
	ID           *int
	Title        string
	TimeEstimate *int
	Completed    bool
}

// UpdateTodo contains fields for updating an existing todo.
// All fields are optional (pointers) to support partial updates.
type UpdateTodo struct {
	Title        *string
	TimeEstimate *int
	Completed    *bool
}

// New builds the record a create payload describes.
func (c CreateTodo) New(id int, now time.Time) Todo {
	return Todo{
		ID:           id,
		Title:        c.Title,
		TimeEstimate: c.TimeEstimate,
		Completed:    c.Completed,
		CreatedAt:    now,
	}
}

// Apply patches t with the non-nil fields of u. updated_at moves only when a
// value actually changes.
func (u UpdateTodo) Apply(t Todo, now time.Time) (Todo, bool) {
	changed := repositories.SetIfChanged(&t.Title, u.Title)
	changed = repositories.SetPtrIfChanged(&t.TimeEstimate, u.TimeEstimate) || changed
	changed = repositories.SetIfChanged(&t.Completed, u.Completed) || changed

	if changed {
		t.UpdatedAt = &now
	}
	return t, changed
}
