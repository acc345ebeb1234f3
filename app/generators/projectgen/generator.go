// Package projectgen writes a new Go HTTP service project.
package projectgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrazmi/crudkit/app/generators/render"
	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/jrazmi/crudkit/sdk/validation"
	"github.com/lithammer/dedent"
)

// GoVersion is written to the generated go.mod and Dockerfile.
const GoVersion = "1.25"

// Config holds configuration for project creation
type Config struct {
	Dir    string // parent directory, "." when empty
	Module string // module path, the slugified name when empty
}

// FileTemplate is one file of the generated tree. Go sources are gofmt'd.
type FileTemplate struct {
	Path     string
	Template string
}

// Files is the fixed project layout, in write order.
var Files = []FileTemplate{
	{"go.mod", goModTemplate},
	{"main.go", mainTemplate},
	{"app/app.go", appTemplate},
	{"app/app_test.go", appTestTemplate},
	{"app/config/config.go", configTemplate},
	{"app/database/database.go", databaseTemplate},
	{"app/models/user.go", userModelTemplate},
	{"app/models/task.go", taskModelTemplate},
	{"app/schemas/user.go", userSchemaTemplate},
	{"app/schemas/task.go", taskSchemaTemplate},
	{"app/routers/routers.go", routersTemplate},
	{"app/routers/auth.go", authRouterTemplate},
	{"app/routers/tasks.go", tasksRouterTemplate},
	{"Dockerfile", dockerfileTemplate},
	{".env.example", envExampleTemplate},
	{"README.md", readmeTemplate},
	{".gitignore", gitignoreTemplate},
}

const composePath = "docker-compose.yml"

type templateData struct {
	Name      string
	Module    string
	GoVersion string
}

// CreateResult lists what Create wrote.
type CreateResult struct {
	Root      string
	Files     []string
	NextSteps string
}

// Create writes a new project named name. It refuses to touch an existing
// path. A failure part way through leaves the files written so far.
func Create(name string, cfg Config) (*CreateResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, errs.Newf(errs.InvalidArgument, "invalid project name %q", name)
	}

	data := templateData{
		Name:      name,
		Module:    cfg.Module,
		GoVersion: GoVersion,
	}
	if data.Module == "" {
		data.Module = validation.Slugify(name)
	}
	if data.Module == "" {
		return nil, errs.Newf(errs.InvalidArgument, "cannot derive a module path from %q", name)
	}

	parent := cfg.Dir
	if parent == "" {
		parent = "."
	}
	root := filepath.Join(parent, name)

	if _, err := os.Stat(root); err == nil {
		return nil, errs.Newf(errs.FailedPrecondition, "directory '%s' already exists", root)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	outputs, err := renderAll(data)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, errs.Newf(errs.FailedPrecondition, "directory '%s' already exists", root)
		}
		return nil, fmt.Errorf("create directory: %w", err)
	}

	result := &CreateResult{Root: root}
	for _, o := range outputs {
		path := filepath.Join(root, filepath.FromSlash(o.path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return result, fmt.Errorf("create directory: %w", err)
		}
		if err := os.WriteFile(path, o.content, 0o644); err != nil {
			return result, fmt.Errorf("write %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
	}

	result.NextSteps = nextSteps(name)
	return result, nil
}

type output struct {
	path    string
	content []byte
}

func renderAll(data templateData) ([]output, error) {
	outputs := make([]output, 0, len(Files)+1)
	for _, f := range Files {
		var (
			content []byte
			err     error
		)
		if strings.HasSuffix(f.Path, ".go") {
			content, err = render.Go(f.Template, data)
		} else {
			content, err = render.Text(f.Template, data)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.Path, err)
		}
		outputs = append(outputs, output{path: f.Path, content: content})
	}

	compose, err := renderCompose(data)
	if err != nil {
		return nil, err
	}
	return append(outputs, output{path: composePath, content: compose}), nil
}

func nextSteps(name string) string {
	return strings.TrimLeft(dedent.Dedent(fmt.Sprintf(`
		Next steps:
		  cd %s
		  go mod tidy
		  cp .env.example .env
		  go run .
	`, name)), "\n")
}
