// Package schemas provides JSON Schema validation for FitForge's data assets and results.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	assets "github.com/Aanishnithin07/FitForge/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Load returns the raw content of an embedded schema by file name
// (for example "skills.schema.json").
func Load(schemaName string) ([]byte, error) {
	data, err := assets.Files.ReadFile(schemaName)
	if err != nil {
		return nil, &SchemaLoadError{Path: schemaName, Message: "schema not embedded", Cause: err}
	}
	return data, nil
}

// ValidateBytes validates a JSON document against an embedded schema
func ValidateBytes(schemaName string, document []byte) error {
	schema, err := Load(schemaName)
	if err != nil {
		return err
	}
	return validate(schemaName, gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(document))
}

// ValidateFile validates a JSON file on disk against an embedded schema
func ValidateFile(schemaName, jsonPath string) error {
	document, err := os.ReadFile(jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", jsonPath)
		}
		return fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}
	return ValidateBytes(schemaName, document)
}

// ValidateValue marshals v to JSON and validates it against an embedded schema
func ValidateValue(schemaName string, v interface{}) error {
	document, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", schemaName, err)
	}
	return ValidateBytes(schemaName, document)
}

func validate(schemaPath string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
