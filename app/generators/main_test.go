package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI in dir and returns stdout and the log output.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)

	var out, logs bytes.Buffer
	cmd := newRootCmd(logger.NewDefault(logger.WithOutput(&logs), logger.WithFormat("text")))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), logs.String(), err
}

func goProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/shop\n\ngo 1.25\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "app"), 0o755))
	return dir
}

func TestGenerateCrudCommand(t *testing.T) {
	dir := goProject(t)

	out, logs, err := execute(t, dir, "generate-crud", "Product", "--fields", "name:str", "price:float", "stock:int", "size:huge")
	require.NoError(t, err)

	assert.Contains(t, out, "Generating CRUD for resource: product\n")
	assert.Contains(t, out, "  Created "+filepath.Join("app", "models", "product.go")+"\n")
	assert.Contains(t, out, "routers.RegisterProductRoutes(mux, db)")
	assert.Contains(t, logs, "unknown type 'huge' for field 'size', using str")

	router, err := os.ReadFile(filepath.Join(dir, "app", "routers", "product.go"))
	require.NoError(t, err)
	assert.Contains(t, string(router), `"example.com/shop/app/models"`)
	assert.Contains(t, string(router), "in.Size")
}

func TestGenerateCrudDefaultsAndAlias(t *testing.T) {
	dir := goProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffold.yaml"), []byte("module: github.com/acme/shop\n"), 0o644))

	_, _, err := execute(t, dir, "generate_crud", "widget")
	require.NoError(t, err)

	schema, err := os.ReadFile(filepath.Join(dir, "app", "schemas", "widget.go"))
	require.NoError(t, err)
	assert.Contains(t, string(schema), "Description *string")

	router, err := os.ReadFile(filepath.Join(dir, "app", "routers", "widget.go"))
	require.NoError(t, err)
	assert.Contains(t, string(router), `"github.com/acme/shop/app/database"`)
}

func TestGenerateCrudFromManifest(t *testing.T) {
	dir := goProject(t)
	manifest := "resource: article\nfields:\n  - name: title\n    type: str\n  - name: published\n    type: bool\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "article.yaml"), []byte(manifest), 0o644))

	_, _, err := execute(t, dir, "generate-crud", "--from", "article.yaml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "app", "models", "article.go"))

	_, _, err = execute(t, dir, "generate-crud", "post", "--from", "article.yaml")
	require.Error(t, err)
	assert.Equal(t, errs.InvalidArgument, errs.GetError(err).Code)
}

func TestGenerateCrudWithoutAppDir(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, "generate-crud", "product")
	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, errs.GetError(err).Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCrudRequiresResource(t *testing.T) {
	_, _, err := execute(t, goProject(t), "generate-crud")
	require.Error(t, err)
}

func TestCreateProjectCommand(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, dir, "create-project", "my-api")
	require.NoError(t, err)
	assert.Contains(t, out, "Project 'my-api' created")
	assert.Contains(t, out, "cd my-api")
	assert.FileExists(t, filepath.Join(dir, "my-api", "app", "app.go"))

	_, _, err = execute(t, dir, "create_project", "my-api")
	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, errs.GetError(err).Code)
}

func TestCreateProjectThenGenerateCrud(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, "create-project", "shop", "--module", "example.com/shop")
	require.NoError(t, err)

	_, _, err = execute(t, filepath.Join(dir, "shop"), "generate-crud", "product", "--fields", "name:str,price:float")
	require.NoError(t, err)

	model, err := parser.ParseFile(token.NewFileSet(), filepath.Join(dir, "shop", "app", "models", "product.go"), nil, 0)
	require.NoError(t, err)

	fields := map[string]string{}
	ast.Inspect(model, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok || ts.Name.Name != "Product" {
			return true
		}
		for _, f := range ts.Type.(*ast.StructType).Fields.List {
			for _, id := range f.Names {
				fields[id.Name] = types.ExprString(f.Type)
			}
		}
		return false
	})
	assert.Equal(t, "float64", fields["Price"])
	assert.Equal(t, "string", fields["Name"])
}

func TestTypesCommand(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "types")
	require.NoError(t, err)

	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "float64")
	assert.Contains(t, out, "*time.Time")
	assert.Contains(t, out, "BOOLEAN DEFAULT FALSE")
	assert.Contains(t, out, "boolean")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "--config", "missing.yaml", "types")
	assert.NoError(t, err)

	_, _, err = execute(t, goProject(t), "--config", "missing.yaml", "generate-crud", "product")
	assert.Error(t, err)
}
