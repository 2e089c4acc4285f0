// Package schema checks rendered command JSON against the shape of the
// registration API's request body.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed command.schema.json
var commandSchema string

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func commandValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = jsonschema.CompileString("command.schema.json", commandSchema)
	})
	return compiled, compileErr
}

// Source returns the embedded JSON Schema document.
func Source() string { return commandSchema }

// Validate checks a single rendered command.
func Validate(doc []byte) error {
	s, err := commandValidator()
	if err != nil {
		return fmt.Errorf("compile command schema: %w", err)
	}
	v, err := decode(doc)
	if err != nil {
		return err
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("command does not match schema: %w", err)
	}
	return nil
}

// ValidateList checks a rendered bulk overwrite body, a JSON array of commands.
func ValidateList(doc []byte) error {
	s, err := commandValidator()
	if err != nil {
		return fmt.Errorf("compile command schema: %w", err)
	}
	v, err := decode(doc)
	if err != nil {
		return err
	}
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("command list: expected a JSON array, got %T", v)
	}
	for i, item := range items {
		if err := s.Validate(item); err != nil {
			return fmt.Errorf("command %d does not match schema: %w", i, err)
		}
	}
	return nil
}

func decode(doc []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode command json: %w", err)
	}
	return v, nil
}
