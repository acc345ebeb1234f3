// Package render executes the scaffolding templates.
package render

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

// Funcs are the helpers available to every scaffolding template.
var Funcs = template.FuncMap{
	"bt":    func() string { return "`" },
	"quote": strconv.Quote,
	"tag":   StructTag,
}

// StructTag renders key/value pairs as a struct tag literal.
func StructTag(pairs ...string) string {
	var b strings.Builder
	b.WriteByte('`')
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(pairs[i])
		b.WriteByte(':')
		b.WriteString(strconv.Quote(pairs[i+1]))
	}
	b.WriteByte('`')
	return b.String()
}

// Text executes tmplStr against data.
func Text(tmplStr string, data any) ([]byte, error) {
	tmpl, err := template.New("gen").Funcs(Funcs).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// Go executes a Go source template and gofmts the result. Output that does
// not parse is an error.
func Go(tmplStr string, data any) ([]byte, error) {
	src, err := Text(tmplStr, data)
	if err != nil {
		return nil, err
	}

	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return out, nil
}
