package rules

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed embedded/rules.schema.json
var ruleSchemaJSON []byte

const ruleSchemaID = "inmemory://rules.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func ruleSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		if err := compiler.AddResource(ruleSchemaID, bytes.NewReader(ruleSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(ruleSchemaID)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded rule document (plain JSON values)
// against the embedded schema
func validateDocument(doc interface{}) error {
	schema, err := ruleSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// SchemaJSON returns the JSON schema rule files are checked against
func SchemaJSON() []byte {
	return append([]byte(nil), ruleSchemaJSON...)
}
