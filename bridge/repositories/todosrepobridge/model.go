package todosrepobridge

import (
	"encoding/json"

	"github.com/jrazmi/crudkit/core/repositories/todosrepo"
	"github.com/jrazmi/crudkit/sdk/validation"
)

// CreateTodoInput is the create payload. "task" is accepted as an alias of
// "title"; title wins when both are sent.
type CreateTodoInput struct {
	ID           *int    `json:"id"`
	Title        *string `json:"title" validate:"required"`
	TimeEstimate *int    `json:"time_estimate" validate:"omitempty,gte=0"`
	Completed    *bool   `json:"completed"`
}

func (c *CreateTodoInput) Decode(data []byte) error {
	var raw struct {
		CreateTodoInput
		Task *string `json:"task"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = raw.CreateTodoInput
	if c.Title == nil {
		c.Title = raw.Task
	}
	return nil
}

func (c CreateTodoInput) Validate() error {
	return validation.Check(c)
}

func (c CreateTodoInput) toRepository() todosrepo.CreateTodo {
	return todosrepo.CreateTodo{
		ID:           c.ID,
		Title:        validation.GetStringOrEmpty(c.Title),
		TimeEstimate: c.TimeEstimate,
		Completed:    validation.GetBoolOrFalse(c.Completed),
	}
}

// UpdateTodoInput is a partial update. Absent and null fields are left alone.
type UpdateTodoInput struct {
	Title        *string `json:"title"`
	TimeEstimate *int    `json:"time_estimate" validate:"omitempty,gte=0"`
	Completed    *bool   `json:"completed"`
}

func (u UpdateTodoInput) Validate() error {
	return validation.Check(u)
}

func (u UpdateTodoInput) toRepository() todosrepo.UpdateTodo {
	return todosrepo.UpdateTodo{
		Title:        u.Title,
		TimeEstimate: u.TimeEstimate,
		Completed:    u.Completed,
	}
}
