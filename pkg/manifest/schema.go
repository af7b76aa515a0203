package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"sigs.k8s.io/yaml"
)

// Schema returns the JSON schema of [Manifest].
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	js := r.Reflect(&Manifest{})
	js.Title = "bookredirect manifest"

	if v, ok := js.Properties.Get("baseURL"); ok {
		v.Default = DefaultBaseURL
	}

	if v, ok := js.Properties.Get("output"); ok {
		v.Default = DefaultOutput
	}

	return js
}

func SchemaJSON() ([]byte, error) {
	b, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json schema: %w", err)
	}

	return b, nil
}

func SchemaYAML() ([]byte, error) {
	b, err := SchemaJSON()
	if err != nil {
		return nil, err
	}

	y, err := yaml.JSONToYAML(b)
	if err != nil {
		return nil, fmt.Errorf("convert json schema to yaml: %w", err)
	}

	return y, nil
}
