package fieldspec_test

import (
	"strings"
	"testing"

	"github.com/jrazmi/crudkit/app/generators/fieldspec"
	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fields, warnings, err := fieldspec.Parse([]string{"name:str", "price:float", "stock:int", "published:Boolean", "released_at:datetime"})
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, fields, 5)

	assert.Equal(t, "Name", fields[0].GoName)
	assert.Equal(t, "string", fields[0].GoType())
	assert.Equal(t, `"name" TEXT NOT NULL`, fields[0].Column())

	assert.Equal(t, "float64", fields[1].GoType())
	assert.Equal(t, `"price" REAL NOT NULL`, fields[1].Column())

	assert.Equal(t, "int64", fields[2].GoType())
	assert.Equal(t, "*int64", fields[2].UpdateGoType())

	assert.Equal(t, fieldspec.KindBool, fields[3].Kind)
	assert.Equal(t, `"published" BOOLEAN NOT NULL DEFAULT FALSE`, fields[3].Column())

	assert.Equal(t, "ReleasedAt", fields[4].GoName)
	assert.True(t, fields[4].Nullable)
	assert.Equal(t, "*time.Time", fields[4].GoType())
	assert.Equal(t, `"released_at" TIMESTAMP`, fields[4].Column())
}

func TestParseWarnings(t *testing.T) {
	fields, warnings, err := fieldspec.Parse([]string{"name", "size:huge", "notes:str?"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"skipping invalid field format: name",
		"unknown type 'huge' for field 'size', using str",
	}, warnings)

	require.Len(t, fields, 2)
	assert.Equal(t, fieldspec.KindString, fields[0].Kind)
	assert.True(t, fields[1].Nullable)
	assert.Equal(t, "*string", fields[1].GoType())
}

func TestParseRejects(t *testing.T) {
	tests := map[string][]string{
		"uppercase":  {"Name:str"},
		"keyword":    {"type:str"},
		"reserved":   {"created_at:datetime"},
		"shadows id": {"i_d:int"},
		"id":         {"id:int"},
		"digit":      {"1st:str"},
		"duplicate":  {"title:str", "title:int"},
		"trailing":   {"title_:str"},
		"whitespace": {"my field:str"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := fieldspec.Parse(args)
			require.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.GetError(err).Code)
		})
	}
}

func TestDefaultFields(t *testing.T) {
	fields, warnings, err := fieldspec.Parse(fieldspec.DefaultFields())
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, fields, 2)
	assert.False(t, fields[0].Nullable)
	assert.True(t, fields[1].Nullable)
}

func TestNewDefinition(t *testing.T) {
	def, err := fieldspec.NewDefinition(" Product ", nil)
	require.NoError(t, err)

	assert.Equal(t, fieldspec.Naming{
		Resource:     "product",
		EntityName:   "Product",
		EntityPlural: "Products",
		TableName:    "products",
		HTTPBasePath: "/products",
		FileName:     "product.go",
	}, def.Naming)

	def, err = fieldspec.NewDefinition("order_item", nil)
	require.NoError(t, err)
	assert.Equal(t, "OrderItem", def.Naming.EntityName)
	assert.Equal(t, "/order_items", def.Naming.HTTPBasePath)

	_, err = fieldspec.NewDefinition("func", nil)
	require.Error(t, err)

	_, err = fieldspec.NewDefinition("my-thing", nil)
	require.Error(t, err)
}

func TestManifest(t *testing.T) {
	m, err := fieldspec.DecodeManifest(strings.NewReader(`
resource: article
fields:
  - name: title
    type: string
  - name: author_id
    type: integer
  - name: summary
    type: str
    nullable: true
  - name: rank
    type: fancy
`))
	require.NoError(t, err)
	assert.Equal(t, "article", m.Resource)

	fields, warnings, err := m.Build()
	require.NoError(t, err)
	require.Len(t, fields, 4)
	assert.Equal(t, "AuthorID", fields[1].GoName)
	assert.True(t, fields[2].Nullable)
	assert.Equal(t, []string{"unknown type 'fancy' for field 'rank', using str"}, warnings)

	_, err = fieldspec.DecodeManifest(strings.NewReader("resource: x\ncolumns: []\n"))
	require.Error(t, err)

	_, err = fieldspec.DecodeManifest(strings.NewReader(""))
	require.Error(t, err)
}

func TestSynonyms(t *testing.T) {
	assert.Equal(t, []string{"datetime", "time", "timestamp"}, fieldspec.Synonyms(fieldspec.KindDatetime))
	k, ok := fieldspec.LookupKind("FLOAT64")
	require.True(t, ok)
	assert.Equal(t, fieldspec.KindFloat, k)
}

func TestLongTypeNames(t *testing.T) {
	tests := map[string]fieldspec.Kind{
		"text":      fieldspec.KindString,
		"integer":   fieldspec.KindInt,
		"decimal":   fieldspec.KindFloat,
		"boolean":   fieldspec.KindBool,
		"timestamp": fieldspec.KindDatetime,
	}
	for name, want := range tests {
		k, ok := fieldspec.LookupKind(name)
		require.True(t, ok, name)
		assert.Equal(t, want, k, name)
	}

	fields, warnings, err := fieldspec.Parse([]string{"price:Decimal"})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "float64", fields[0].GoType())
	assert.Equal(t, `"price" REAL NOT NULL`, fields[0].Column())
}

func TestCaseHelpers(t *testing.T) {
	assert.Equal(t, "AuthorID", fieldspec.ToPascalCase("author_id"))
	assert.Equal(t, "authorID", fieldspec.ToCamelCase("author_id"))
	assert.Equal(t, "idempotencyKey", fieldspec.ToCamelCase("idempotency_key"))
	assert.Equal(t, "id", fieldspec.ToCamelCase("id"))
}
