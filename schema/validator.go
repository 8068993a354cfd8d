// Package schema validates response envelope bodies against JSON Schema
// documents.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wesleyorama2/courier/http"
)

// ValidationErrors aggregates the individual failures found during one
// validation pass.
type ValidationErrors []error

// Error implements the error interface for ValidationErrors.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, err := range ve {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks a JSON document against a JSON Schema. It returns true
// when the document conforms, false when it does not, and an error when the
// schema or document cannot be parsed at all.
func Validate(jsonStr, schemaStr string) (bool, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return false, fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return false, fmt.Errorf("invalid schema: %w", err)
	}

	var jsonData interface{}
	if err := json.Unmarshal([]byte(jsonStr), &jsonData); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(jsonData); err != nil {
		return false, nil
	}
	return true, nil
}

// ValidateResponse checks an envelope's body against a JSON Schema and
// returns the detailed failures, or nil when the body conforms.
func ValidateResponse(resp *http.Response, schemaStr string) error {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var jsonData interface{}
	if err := json.Unmarshal(resp.Body(), &jsonData); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := compiled.Validate(jsonData); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return flatten(ve)
		}
		return err
	}
	return nil
}

// flatten collects the leaf causes of a validation failure into a
// ValidationErrors value.
func flatten(ve *jsonschema.ValidationError) ValidationErrors {
	if len(ve.Causes) == 0 {
		return ValidationErrors{fmt.Errorf("%s: %s", ve.InstanceLocation, ve.Message)}
	}
	var out ValidationErrors
	for _, cause := range ve.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
