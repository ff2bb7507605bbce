// Package schemas provides JSON Schema validation for payloads accepted by the KYP analysis tool.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/kyp-analysis/schemas"
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

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// DocumentError represents a payload that is not well-formed JSON
type DocumentError struct {
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid JSON document: %v", e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

var (
	formStateOnce   sync.Once
	formStateSchema *gojsonschema.Schema
	formStateErr    error
)

func loadFormStateSchema() (*gojsonschema.Schema, error) {
	formStateOnce.Do(func() {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemafiles.FormState))
		if err != nil {
			formStateErr = &SchemaLoadError{Name: "form_state.schema.json", Message: "failed to compile schema", Cause: err}
			return
		}
		formStateSchema = schema
	})
	return formStateSchema, formStateErr
}

// ValidateFormState validates a JSON FormState payload against form_state.schema.json.
func ValidateFormState(document []byte) error {
	schema, err := loadFormStateSchema()
	if err != nil {
		return err
	}
	return validateDocument(schema, document)
}

// ValidateBytes validates JSON content against JSON Schema content.
func ValidateBytes(schemaContent, document []byte) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Name: "(inline schema)", Message: "failed to compile schema", Cause: err}
	}
	return validateDocument(schema, document)
}

func validateDocument(schema *gojsonschema.Schema, document []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &DocumentError{Cause: err}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
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
