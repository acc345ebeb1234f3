package validation_test

import (
	"errors"
	"testing"

	"github.com/jrazmi/crudkit/sdk/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title    *string `json:"title" validate:"required,min=1"`
	Servings *int    `json:"servings" validate:"omitempty,gte=1"`
}

func TestCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validation.Check(payload{Title: validation.Ptr("Soup")}))
	})

	t.Run("reports json names", func(t *testing.T) {
		err := validation.Check(payload{Servings: validation.Ptr(0)})
		require.Error(t, err)

		var fe validation.FieldErrors
		require.True(t, errors.As(err, &fe))
		require.Len(t, fe, 2)
		assert.Equal(t, "title", fe[0].Field)
		assert.Equal(t, "required", fe[0].Tag)
		assert.Equal(t, "servings", fe[1].Field)
		assert.Equal(t, "validation failed on title (required), servings (gte=1)", err.Error())
	})
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, 3, validation.ValueOr(validation.Ptr(3), 9))
	assert.Equal(t, 9, validation.ValueOr[int](nil, 9))
	assert.Equal(t, "", validation.GetStringOrEmpty(nil))
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"My API":        "my-api",
		"crème_app":     "creme-app",
		"  --hello--  ": "hello",
		"todo list v2!": "todo-list-v2",
	}
	for in, want := range tests {
		assert.Equal(t, want, validation.Slugify(in), in)
	}
}
