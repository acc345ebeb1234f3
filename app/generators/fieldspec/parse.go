package fieldspec

import (
	"fmt"
	"go/token"
	"regexp"
	"strings"

	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
)

var identRE = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// reserved columns are always generated.
var reserved = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"ID":         true,
	"CreatedAt":  true,
	"UpdatedAt":  true,
}

// DefaultFields is used when a resource is generated without declarations.
func DefaultFields() []string {
	return []string{"name:str", "description:str?"}
}

// Parse reads "name:type" declarations. A trailing "?" on the type marks the
// field nullable. Malformed entries and unknown types are reported as
// warnings; invalid or duplicate names are errors.
func Parse(args []string) ([]Field, []string, error) {
	var (
		fields   []Field
		warnings []string
	)
	for _, arg := range args {
		name, typ, ok := strings.Cut(arg, ":")
		if !ok {
			warnings = append(warnings, fmt.Sprintf("skipping invalid field format: %s", arg))
			continue
		}

		nullable := strings.HasSuffix(typ, "?")
		typ = strings.TrimSuffix(typ, "?")

		f, warn, err := newField(name, typ, nullable)
		if err != nil {
			return nil, warnings, err
		}
		if warn != "" {
			warnings = append(warnings, warn)
		}
		fields = append(fields, f)
	}

	if err := checkDuplicates(fields); err != nil {
		return nil, warnings, err
	}
	return fields, warnings, nil
}

func newField(name, typ string, nullable bool) (Field, string, error) {
	name = strings.TrimSpace(name)
	if err := checkIdent("field", name); err != nil {
		return Field{}, "", err
	}
	if reserved[name] || reserved[ToPascalCase(name)] {
		return Field{}, "", errs.Newf(errs.InvalidArgument, "field %q is generated automatically", name)
	}

	var warn string
	kind, ok := LookupKind(typ)
	if !ok {
		warn = fmt.Sprintf("unknown type '%s' for field '%s', using str", strings.ToLower(typ), name)
		kind = KindString
	}

	m := MapKind(kind)
	return Field{
		Name:     name,
		Kind:     kind,
		GoName:   ToPascalCase(name),
		Nullable: nullable || m.Nullable,
		Mapping:  m,
	}, warn, nil
}

func checkIdent(what, name string) error {
	if !identRE.MatchString(name) || strings.HasSuffix(name, "_") || strings.Contains(name, "__") {
		return errs.Newf(errs.InvalidArgument, "invalid %s name %q: use lower_snake_case starting with a letter", what, name)
	}
	if token.IsKeyword(name) {
		return errs.Newf(errs.InvalidArgument, "invalid %s name %q: Go keyword", what, name)
	}
	return nil
}

func checkDuplicates(fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.GoName] {
			return errs.Newf(errs.InvalidArgument, "duplicate field %q", f.Name)
		}
		seen[f.GoName] = true
	}
	return nil
}

// NewDefinition validates the resource name and binds it to fields.
func NewDefinition(resource string, fields []Field) (Definition, error) {
	resource = strings.ToLower(strings.TrimSpace(resource))
	if err := checkIdent("resource", resource); err != nil {
		return Definition{}, err
	}
	if err := checkDuplicates(fields); err != nil {
		return Definition{}, err
	}
	return Definition{
		Naming: deriveNaming(resource),
		Fields: fields,
	}, nil
}
