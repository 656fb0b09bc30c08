package yaml

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaGenerator reflects a configuration type into a JSON schema, pulling
// field descriptions from Go doc comments.
type SchemaGenerator struct {
	obj  any
	base string
	dir  string
}

// NewSchemaGenerator creates a generator for obj. base is the module import
// path and dir the filesystem path to the module root, used to resolve doc
// comments.
func NewSchemaGenerator(obj any, base, dir string) *SchemaGenerator {
	return &SchemaGenerator{
		obj:  obj,
		base: base,
		dir:  dir,
	}
}

// Generate returns the indented JSON schema document.
func (g *SchemaGenerator) Generate() ([]byte, error) {
	r := &jsonschema.Reflector{}

	err := r.AddGoComments(g.base, g.dir)
	if err != nil {
		return nil, fmt.Errorf("add go comments: %w", err)
	}

	jss := r.Reflect(g.obj)

	jsData, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return jsData, nil
}
