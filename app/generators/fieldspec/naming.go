package fieldspec

import (
	"strings"
	"unicode"
)

// deriveNaming generates the naming conventions for a lower case resource name.
func deriveNaming(resource string) Naming {
	plural := resource + "s"
	return Naming{
		Resource:     resource,
		EntityName:   ToPascalCase(resource),
		EntityPlural: ToPascalCase(plural),
		TableName:    plural,
		HTTPBasePath: "/" + plural,
		FileName:     resource + ".go",
	}
}

// ToPascalCase converts snake_case to PascalCase. A trailing "id" segment
// becomes "ID" so author_id renders as AuthorID.
func ToPascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if part == "id" {
			parts[i] = "ID"
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, "")
}

// ToCamelCase converts snake_case to camelCase.
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "ID") {
		return "id" + p[2:]
	}
	r := []rune(p)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
