package crudgen

// SchemaTemplate renders app/schemas/<resource>.go
const SchemaTemplate = `// Code generated by scaffold generate-crud. DO NOT EDIT.

package schemas

import "time"

// {{.Naming.EntityName}}Base holds the fields shared by create payloads and responses.
type {{.Naming.EntityName}}Base struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{tag "json" .Name}}
{{- end}}
}

// {{.Naming.EntityName}}Create is the body of POST {{.Naming.HTTPBasePath}}.
type {{.Naming.EntityName}}Create struct {
	{{.Naming.EntityName}}Base
}

// {{.Naming.EntityName}}Update is the body of PUT {{.Naming.HTTPBasePath}}/{id}.
// Omitted fields keep their stored value.
type {{.Naming.EntityName}}Update struct {
{{- range .Fields}}
	{{.GoName}} {{.UpdateGoType}} {{tag "json" (printf "%s,omitempty" .Name)}}
{{- end}}
}

// {{.Naming.EntityName}} is a stored {{.Naming.Resource}}.
type {{.Naming.EntityName}} struct {
	ID int64 {{tag "json" "id"}}
	{{.Naming.EntityName}}Base
	CreatedAt time.Time  {{tag "json" "created_at"}}
	UpdatedAt *time.Time {{tag "json" "updated_at"}}
}
`
