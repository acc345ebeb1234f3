package fieldspec

import (
	"slices"
	"strings"
)

var typeMap = map[Kind]TypeMapping{
	KindString: {
		GoType:  "string",
		SQLType: "TEXT",
	},
	KindInt: {
		GoType:  "int64",
		SQLType: "INTEGER",
	},
	KindFloat: {
		GoType:  "float64",
		SQLType: "REAL",
	},
	KindBool: {
		GoType:  "bool",
		SQLType: "BOOLEAN",
		Default: "FALSE",
	},
	KindDatetime: {
		GoType:    "time.Time",
		SQLType:   "TIMESTAMP",
		Nullable:  true,
		NeedsTime: true,
	},
}

// synonyms maps the long spellings users reach for onto a Kind.
var synonyms = map[string]Kind{
	"str":       KindString,
	"string":    KindString,
	"text":      KindString,
	"int":       KindInt,
	"integer":   KindInt,
	"int64":     KindInt,
	"float":     KindFloat,
	"float64":   KindFloat,
	"real":      KindFloat,
	"decimal":   KindFloat,
	"double":    KindFloat,
	"bool":      KindBool,
	"boolean":   KindBool,
	"datetime":  KindDatetime,
	"timestamp": KindDatetime,
	"time":      KindDatetime,
}

// LookupKind resolves a declared type name, case insensitively.
func LookupKind(name string) (Kind, bool) {
	k, ok := synonyms[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// MapKind returns the storage mapping for k.
func MapKind(k Kind) TypeMapping {
	return typeMap[k]
}

// Kinds lists the canonical kinds in display order.
func Kinds() []Kind {
	return []Kind{KindString, KindInt, KindFloat, KindBool, KindDatetime}
}

// Synonyms returns the accepted spellings for k, canonical name first.
func Synonyms(k Kind) []string {
	out := []string{string(k)}
	for _, name := range sortedSynonyms() {
		if synonyms[name] == k && name != string(k) {
			out = append(out, name)
		}
	}
	return out
}

func sortedSynonyms() []string {
	names := make([]string, 0, len(synonyms))
	for name := range synonyms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
