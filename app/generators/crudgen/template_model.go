package crudgen

// ModelTemplate renders app/models/<resource>.go
const ModelTemplate = `// Code generated by scaffold generate-crud. DO NOT EDIT.

package models

import "time"

// {{.Naming.EntityName}}Table is the table backing {{.Naming.EntityName}}.
const {{.Naming.EntityName}}Table = {{quote .Naming.TableName}}

// {{.Naming.EntityName}}Schema creates the {{.Naming.TableName}} table.
const {{.Naming.EntityName}}Schema = {{bt}}CREATE TABLE IF NOT EXISTS {{.QuotedTable}} (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
{{- range .Fields}}
	{{.Column}},
{{- end}}
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP
){{bt}}

// {{.Naming.EntityName}} is one row of the {{.Naming.TableName}} table.
type {{.Naming.EntityName}} struct {
	ID int64 {{tag "db" "id"}}
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{tag "db" .Name}}
{{- end}}
	CreatedAt time.Time {{tag "db" "created_at"}}
	UpdatedAt *time.Time {{tag "db" "updated_at"}}
}
`
