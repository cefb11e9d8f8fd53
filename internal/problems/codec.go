package problems

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// collectionSchema describes the persisted problem collection.
const collectionSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id":           {"type": "integer"},
      "name":         {"type": "string", "minLength": 1},
      "firstAttempt": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
      "revisions": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}
      },
      "solution":     {"type": "string"}
    },
    "required": ["id", "name", "firstAttempt", "revisions"]
  }
}`

const collectionSchemaURL = "schema://problems.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(strings.NewReader(collectionSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(collectionSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(collectionSchemaURL)
	})
	return compiled, compileErr
}

// decodeCollection validates raw against the collection schema and decodes
// it. Any failure is returned as *errMalformed.
func decodeCollection(raw []byte) ([]Problem, error) {
	sch, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile collection schema: %w", err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &errMalformed{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, &errMalformed{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var list []Problem
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, &errMalformed{Err: err}
	}

	seen := make(map[int64]struct{}, len(list))
	for _, p := range list {
		if _, dup := seen[p.ID]; dup {
			return nil, &errMalformed{Err: fmt.Errorf("duplicate id %d", p.ID)}
		}
		seen[p.ID] = struct{}{}
		if !p.FirstAttempt.IsValid() {
			return nil, &errMalformed{Err: fmt.Errorf("problem %d: invalid firstAttempt %s", p.ID, p.FirstAttempt)}
		}
		for _, r := range p.Revisions {
			if !r.IsValid() {
				return nil, &errMalformed{Err: fmt.Errorf("problem %d: invalid revision %s", p.ID, r)}
			}
		}
	}
	return list, nil
}

func encodeCollection(list []Problem) ([]byte, error) {
	if list == nil {
		list = []Problem{}
	}
	return json.Marshal(list)
}
