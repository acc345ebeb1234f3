// Package fieldspec turns resource field declarations into the typed
// definitions the scaffolding generators render from.
package fieldspec

import "strings"

// Kind is the declared type of a field.
type Kind string

const (
	KindString   Kind = "str"
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindBool     Kind = "bool"
	KindDatetime Kind = "datetime"
)

// TypeMapping describes how a Kind is stored and exposed.
type TypeMapping struct {
	GoType    string // non pointer Go type
	SQLType   string
	Default   string // SQL column default, empty for none
	Nullable  bool   // always nullable regardless of declaration
	NeedsTime bool
}

// Field is one declared column of a generated resource.
type Field struct {
	Name     string // snake_case, also the column and JSON name
	Kind     Kind
	GoName   string // PascalCase
	Nullable bool
	Mapping  TypeMapping
}

// GoType is the type of the field on entity and base schema structs.
func (f Field) GoType() string {
	if f.Nullable {
		return "*" + f.Mapping.GoType
	}
	return f.Mapping.GoType
}

// UpdateGoType is the type of the field on partial update payloads.
func (f Field) UpdateGoType() string {
	return "*" + f.Mapping.GoType
}

// QuotedName is the column name as an SQL identifier. Names are checked
// against identRE, so they never contain a double quote.
func (f Field) QuotedName() string {
	return QuoteIdent(f.Name)
}

// QuoteIdent double quotes an identifier for SQLite and Postgres alike.
func QuoteIdent(name string) string {
	return `"` + name + `"`
}

// Column renders the column definition used in CREATE TABLE.
func (f Field) Column() string {
	var b strings.Builder
	b.WriteString(f.QuotedName())
	b.WriteString(" ")
	b.WriteString(f.Mapping.SQLType)
	if !f.Nullable {
		b.WriteString(" NOT NULL")
	}
	if f.Mapping.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(f.Mapping.Default)
	}
	return b.String()
}

// Naming holds every name derived from the resource.
type Naming struct {
	Resource     string // "product"
	EntityName   string // "Product"
	EntityPlural string // "Products"
	TableName    string // "products"
	HTTPBasePath string // "/products"
	FileName     string // "product.go"
}

// Definition is a validated resource ready for rendering.
type Definition struct {
	Naming Naming
	Fields []Field
}

// NeedsTime reports whether any declared field is a timestamp.
func (d Definition) NeedsTime() bool {
	for _, f := range d.Fields {
		if f.Mapping.NeedsTime {
			return true
		}
	}
	return false
}
