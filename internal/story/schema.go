package story

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns a JSON Schema for the story file so editors can validate
// story.yaml.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true, DoNotReference: true}
	sch := r.Reflect(&Story{})
	sch.Title = "dossier story"
	sch.Description = "Title screen, intro lines, dossier sections and terminal vocabulary. Glitch formats take a single %s and need %% for a literal percent."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
