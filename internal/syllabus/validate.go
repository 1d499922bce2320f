package syllabus

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// syllabusSchema is the JSON schema every subject file must satisfy
// before structural checks run. Kept intentionally shallow: referential
// rules (section IDs, sequence gaps) are easier to report precisely in
// Go than in schema keywords.
const syllabusSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["subject_id", "name", "sections", "topics"],
	"properties": {
		"subject_id": {"type": "string", "minLength": 1},
		"name": {"type": "string", "minLength": 1},
		"daily_budget_mins": {"type": "integer", "minimum": 1},
		"quality_bands": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["min_pct", "quality"],
				"properties": {
					"min_pct": {"type": "integer", "minimum": 0, "maximum": 100},
					"quality": {"type": "integer", "minimum": 0, "maximum": 5}
				}
			}
		},
		"sections": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "name"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1}
				}
			}
		},
		"topics": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "section_id", "sequence_index", "name", "estimated_mins"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"section_id": {"type": "string", "minLength": 1},
					"sequence_index": {"type": "integer", "minimum": 0},
					"name": {"type": "string", "minLength": 1},
					"estimated_mins": {"type": "integer", "minimum": 1}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(syllabusSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse syllabus schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://syllabus.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// validateSchema checks raw syllabus bytes against the embedded schema.
func validateSchema(data []byte) error {
	schema, err := compiled()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("syllabus schema validation failed: %w", err)
	}
	return nil
}
