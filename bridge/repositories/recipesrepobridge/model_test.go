package recipesrepobridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipeInput(t *testing.T) {
	var in CreateRecipeInput
	body := `{"name":"Shakshuka","servings":2,"rating":4.25,"vegetarian":true,"last_cooked_at":"2026-04-20T18:30:00+02:00"}`
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	require.NoError(t, in.Validate())

	c := in.toRepository()
	assert.Equal(t, "Shakshuka", c.Name)
	assert.Equal(t, 2, *c.Servings)
	assert.Equal(t, 4.25, *c.Rating)
	assert.True(t, c.Vegetarian)
	assert.Equal(t, 16, c.LastCookedAt.UTC().Hour())
}

func TestRecipeInputValidation(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"servings":2}`, "validation failed on name (required)"},
		{`{"name":"Soup","servings":0}`, "validation failed on servings (gte=1)"},
		{`{"name":"Soup","rating":5.5}`, "validation failed on rating (lte=5)"},
		{`{"name":"Soup","prep_time_minutes":-1}`, "validation failed on prep_time_minutes (gte=0)"},
	}

	for _, tt := range tests {
		var in CreateRecipeInput
		require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
		assert.EqualError(t, in.Validate(), tt.want, tt.body)
	}

	var up UpdateRecipeInput
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &up))
	assert.EqualError(t, up.Validate(), "validation failed on name (min=1)")
}
