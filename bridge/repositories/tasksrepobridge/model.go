package tasksrepobridge

import (
	"github.com/jrazmi/crudkit/core/repositories/tasksrepo"
	"github.com/jrazmi/crudkit/sdk/validation"
)

type CreateTaskInput struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (c CreateTaskInput) Validate() error {
	return validation.Check(c)
}

func (c CreateTaskInput) toRepository() tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:       validation.GetStringOrEmpty(c.Title),
		Description: c.Description,
		Completed:   validation.GetBoolOrFalse(c.Completed),
	}
}

// UpdateTaskInput is a partial update. Absent and null fields are left alone.
type UpdateTaskInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (u UpdateTaskInput) Validate() error {
	return validation.Check(u)
}

func (u UpdateTaskInput) toRepository() tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Title:       u.Title,
		Description: u.Description,
		Completed:   u.Completed,
	}
}
