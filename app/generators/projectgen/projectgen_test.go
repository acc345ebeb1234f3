package projectgen_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrazmi/crudkit/app/generators/projectgen"
	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestCreate(t *testing.T) {
	parent := t.TempDir()

	res, err := projectgen.Create("my-api", projectgen.Config{Dir: parent})
	require.NoError(t, err)

	root := filepath.Join(parent, "my-api")
	assert.Equal(t, root, res.Root)
	require.Len(t, res.Files, len(projectgen.Files)+1)

	for _, f := range projectgen.Files {
		path := filepath.Join(root, filepath.FromSlash(f.Path))
		require.FileExists(t, path)
		if strings.HasSuffix(path, ".go") {
			_, err := parser.ParseFile(token.NewFileSet(), path, nil, 0)
			require.NoError(t, err, f.Path)
		}
	}

	assert.True(t, strings.HasPrefix(read(t, filepath.Join(root, "go.mod")), "module my-api\n\ngo 1.25\n"))
	assert.Contains(t, read(t, filepath.Join(root, "main.go")), `"my-api/app/database"`)
	assert.Contains(t, read(t, filepath.Join(root, "app", "config", "config.go")), `env("APP_NAME", "my-api")`)
	assert.Contains(t, read(t, filepath.Join(root, "app", "models", "task.go")), "owner_id INTEGER NOT NULL REFERENCES users(id),")
	assert.Contains(t, read(t, filepath.Join(root, "app", "routers", "auth.go")), "Login endpoint - implement authentication")
	assert.Contains(t, read(t, filepath.Join(root, ".env.example")), "APP_NAME=my-api\n")
	assert.True(t, strings.HasPrefix(read(t, filepath.Join(root, "README.md")), "# my-api\n"))

	var compose struct {
		Services map[string]struct {
			Build       string   `yaml:"build"`
			Ports       []string `yaml:"ports"`
			Environment []string `yaml:"environment"`
		} `yaml:"services"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(read(t, filepath.Join(root, "docker-compose.yml"))), &compose))
	api, ok := compose.Services["api"]
	require.True(t, ok)
	assert.Equal(t, ".", api.Build)
	assert.Equal(t, []string{"8000:8000"}, api.Ports)
	assert.Contains(t, api.Environment, "APP_NAME=my-api")

	assert.Equal(t, "Next steps:\n  cd my-api\n  go mod tidy\n  cp .env.example .env\n  go run .\n", res.NextSteps)
}

func TestCreateModuleOverride(t *testing.T) {
	parent := t.TempDir()

	_, err := projectgen.Create("shop", projectgen.Config{Dir: parent, Module: "github.com/acme/shop"})
	require.NoError(t, err)

	assert.Contains(t, read(t, filepath.Join(parent, "shop", "go.mod")), "module github.com/acme/shop\n")
	assert.Contains(t, read(t, filepath.Join(parent, "shop", "app", "app.go")), `"github.com/acme/shop/app/routers"`)
}

func TestCreateRefusesExisting(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "my-api")
	require.NoError(t, os.Mkdir(root, 0o755))

	_, err := projectgen.Create("my-api", projectgen.Config{Dir: parent})
	require.Error(t, err)
	assert.Equal(t, errs.FailedPrecondition, errs.GetError(err).Code)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateRejectsNames(t *testing.T) {
	for _, name := range []string{"", "..", "a/b", "!!!"} {
		_, err := projectgen.Create(name, projectgen.Config{Dir: t.TempDir()})
		require.Error(t, err, name)
		assert.Equal(t, errs.InvalidArgument, errs.GetError(err).Code, name)
	}
}

func TestCreateIsDeterministic(t *testing.T) {
	a, err := projectgen.Create("svc", projectgen.Config{Dir: t.TempDir()})
	require.NoError(t, err)
	b, err := projectgen.Create("svc", projectgen.Config{Dir: t.TempDir()})
	require.NoError(t, err)

	require.Len(t, b.Files, len(a.Files))
	for i := range a.Files {
		assert.Equal(t, read(t, a.Files[i]), read(t, b.Files[i]), a.Files[i])
	}
}
