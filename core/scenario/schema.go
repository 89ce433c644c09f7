package scenario

import "github.com/invopop/jsonschema"

// Schema reflects the scenario file format as a JSON schema, for editor
// tooling and external validation of scenario files.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Scenario{})
}
