package tasksrepo

import (
	"time"

	"github.com/jrazmi/crudkit/core/repositories"
)

// Task is a titled unit of work with an optional description.
type Task struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Completed   bool       `json:"completed" db:"completed"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	Title       string
	Description *string
	Completed   bool
}

// UpdateTask contains fields for updating an existing task.
// All fields are optional (pointers) to support partial updates.
type UpdateTask struct {
	Title       *string
	Description *string
	Completed   *bool
}

func (c CreateTask) New(id int, now time.Time) Task {
	return Task{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
		CreatedAt:   now,
	}
}

// Apply patches t with the non-nil fields of u and reports whether anything
// changed.
func (u UpdateTask) Apply(t Task, now time.Time) (Task, bool) {
	changed := repositories.SetIfChanged(&t.Title, u.Title)
	changed = repositories.SetPtrIfChanged(&t.Description, u.Description) || changed
	changed = repositories.SetIfChanged(&t.Completed, u.Completed) || changed

	if changed {
		t.UpdatedAt = &now
	}
	return t, changed
}
