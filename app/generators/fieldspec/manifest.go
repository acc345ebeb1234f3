package fieldspec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a resource declaration:
//
//	resource: product
//	fields:
//	  - name: price
//	    type: float
//	  - name: notes
//	    type: str
//	    nullable: true
type Manifest struct {
	Resource string          `yaml:"resource"`
	Fields   []ManifestField `yaml:"fields"`
}

type ManifestField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

// LoadManifest reads a manifest file. Unknown keys are rejected.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return DecodeManifest(f)
}

// DecodeManifest decodes a manifest from r.
func DecodeManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, errs.Newf(errs.InvalidArgument, "manifest is empty")
		}
		return Manifest{}, errs.Newf(errs.InvalidArgument, "decode manifest: %s", err)
	}
	return m, nil
}

// Build converts the manifest fields, with the same warnings as Parse.
func (m Manifest) Build() ([]Field, []string, error) {
	var (
		fields   []Field
		warnings []string
	)
	for _, mf := range m.Fields {
		f, warn, err := newField(mf.Name, mf.Type, mf.Nullable)
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
