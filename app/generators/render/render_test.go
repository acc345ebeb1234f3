package render_test

import (
	"testing"

	"github.com/jrazmi/crudkit/app/generators/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructTag(t *testing.T) {
	assert.Equal(t, "`json:\"name\"`", render.StructTag("json", "name"))
	assert.Equal(t, "`json:\"id\" db:\"id\"`", render.StructTag("json", "id", "db", "id"))
	assert.Equal(t, "``", render.StructTag())
}

func TestGo(t *testing.T) {
	src, err := render.Go("package {{.}}\n\nvar   x   =  {{quote \"a\"}}\n", "demo")
	require.NoError(t, err)
	assert.Equal(t, "package demo\n\nvar x = \"a\"\n", string(src))

	src, err = render.Go("package demo\n\ntype T struct {\n\tA int {{tag \"json\" \"a\"}}\n}\n", nil)
	require.NoError(t, err)
	assert.Contains(t, string(src), "\tA int `json:\"a\"`\n")

	_, err = render.Go("package {{.}}\nfunc {", "demo")
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	out, err := render.Text("const q = {{bt}}SELECT 1{{bt}}", nil)
	require.NoError(t, err)
	assert.Equal(t, "const q = `SELECT 1`", string(out))

	_, err = render.Text("{{.Missing}}", map[string]string{})
	assert.Error(t, err)
}
