package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// challengeSchema constrains challenge payloads: 2-4 options and all fields
// the interaction view depends on. The correct index range is checked
// separately because it depends on the options length.
var challengeSchema = map[string]any{
	"type":     "object",
	"required": []any{"title", "question", "options", "correct_answer_id", "explanation"},
	"properties": map[string]any{
		"id":                map[string]any{"type": "integer"},
		"title":             map[string]any{"type": "string", "minLength": 1},
		"question":          map[string]any{"type": "string", "minLength": 1},
		"options":           map[string]any{"type": "array", "minItems": 2, "maxItems": 4, "items": map[string]any{"type": "string"}},
		"correct_answer_id": map[string]any{"type": "integer", "minimum": 0},
		"explanation":       map[string]any{"type": "string"},
		"difficulty":        map[string]any{"type": "string"},
		"topic":             map[string]any{"type": "string"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateChallenge validates a raw challenge payload against the schema and
// the index invariant. Returns *ErrInvalidPayload on failure.
func validateChallenge(raw json.RawMessage) error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://challenge.json", challengeSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://challenge.json")
	})
	if compileErr != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("compile challenge schema: %w", compileErr)}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var ch Challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: err}
	}
	if ch.CorrectAnswerID < 0 || ch.CorrectAnswerID >= len(ch.Options) {
		return &ErrInvalidPayload{
			Content: raw,
			Err:     fmt.Errorf("correct_answer_id %d out of range for %d options", ch.CorrectAnswerID, len(ch.Options)),
		}
	}
	return nil
}
