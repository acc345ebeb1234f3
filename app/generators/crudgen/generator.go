// Package crudgen renders the model, schema, and router files for one
// resource of a scaffolded project.
package crudgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrazmi/crudkit/app/generators/fieldspec"
	"github.com/jrazmi/crudkit/app/generators/render"
	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/lithammer/dedent"
)

// Generate writes app/models, app/schemas, and app/routers files for def.
// Existing files are overwritten. Nothing is written unless the app
// directory exists and every file renders.
func Generate(def fieldspec.Definition, cfg Config) (*GenerateResult, error) {
	appDir := cfg.AppDir
	if appDir == "" {
		appDir = "app"
	}
	if info, err := os.Stat(appDir); err != nil || !info.IsDir() {
		return nil, errs.Newf(errs.FailedPrecondition, "'%s' directory not found, run this from your project root", appDir)
	}
	if cfg.ModulePath == "" {
		return nil, errs.Newf(errs.FailedPrecondition, "module path unknown: set module in scaffold.yaml or SCAFFOLD_MODULE, or run inside a Go module")
	}

	data := prepareTemplateData(def, cfg.ModulePath)
	fileName := def.Naming.FileName

	result := &GenerateResult{
		ModelFile:  filepath.Join(appDir, "models", fileName),
		SchemaFile: filepath.Join(appDir, "schemas", fileName),
		RouterFile: filepath.Join(appDir, "routers", fileName),
	}

	outputs := []struct {
		path string
		tmpl string
	}{
		{result.ModelFile, ModelTemplate},
		{result.SchemaFile, SchemaTemplate},
		{result.RouterFile, RouterTemplate},
	}

	rendered := make([][]byte, len(outputs))
	for i, o := range outputs {
		src, err := render.Go(o.tmpl, data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", o.path, err)
		}
		rendered[i] = src
	}

	for i, o := range outputs {
		if err := os.MkdirAll(filepath.Dir(o.path), 0o755); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
		if err := os.WriteFile(o.path, rendered[i], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", o.path, err)
		}
	}

	result.NextSteps = nextSteps(def.Naming)
	return result, nil
}

// prepareTemplateData converts a definition to template data
func prepareTemplateData(def fieldspec.Definition, modulePath string) *TemplateData {
	table := fieldspec.QuoteIdent(def.Naming.TableName)

	names := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		names = append(names, f.QuotedName())
	}
	columns := strings.Join(append(append([]string{"id"}, names...), "created_at", "updated_at"), ", ")

	insert := fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", table, columns)
	if len(names) > 0 {
		insert = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			table, strings.Join(names, ", "), placeholders(len(names)), columns)
	}

	sets := make([]string, 0, len(names)+1)
	for _, n := range names {
		sets = append(sets, n+" = ?")
	}
	sets = append(sets, "updated_at = ?")

	return &TemplateData{
		ModulePath:  modulePath,
		Naming:      def.Naming,
		Fields:      def.Fields,
		QuotedTable: table,
		Columns:     columns,
		SelectSQL:   fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", columns, table),
		ListSQL:     fmt.Sprintf("SELECT %s FROM %s ORDER BY id LIMIT ? OFFSET ?", columns, table),
		InsertSQL:   insert,
		UpdateSQL:   fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING %s", table, strings.Join(sets, ", "), columns),
		DeleteSQL:   fmt.Sprintf("DELETE FROM %s WHERE id = ?", table),
	}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func nextSteps(n fieldspec.Naming) string {
	return strings.TrimLeft(dedent.Dedent(fmt.Sprintf(`
		Next steps:
		1. Register the routes in app/app.go:
		   routers.Register%[1]sRoutes(mux, db)

		2. Add the table to the Schema list in app/app.go:
		   models.%[1]sSchema,

		3. Start the service and try the endpoints:
		   go run .
		   curl http://localhost:8000%[2]s
	`, n.EntityName, n.HTTPBasePath)), "\n")
}
