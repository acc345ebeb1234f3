package crudgen

import "github.com/jrazmi/crudkit/app/generators/fieldspec"

// Config holds configuration for CRUD generation
type Config struct {
	AppDir     string // project app directory, "app" when empty
	ModulePath string // module path of the target project
}

// TemplateData holds all data needed for template rendering
type TemplateData struct {
	ModulePath string
	Naming     fieldspec.Naming
	Fields     []fieldspec.Field

	QuotedTable string
	Columns     string // scan order column list
	SelectSQL   string
	ListSQL     string
	InsertSQL   string
	UpdateSQL   string
	DeleteSQL   string
}

// GenerateResult holds the results of CRUD generation
type GenerateResult struct {
	ModelFile  string
	SchemaFile string
	RouterFile string
	NextSteps  string
}

// Files returns the written paths in generation order.
func (r *GenerateResult) Files() []string {
	return []string{r.ModelFile, r.SchemaFile, r.RouterFile}
}
