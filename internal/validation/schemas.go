package validation

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Request-body schemas for the two write operations. Inline so the binary
// carries its own contracts.
const preferenceUpdateSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"preferred_categories": {
			"type": "array",
			"items": {"type": "string", "minLength": 1},
			"minItems": 1
		}
	},
	"required": ["preferred_categories"],
	"additionalProperties": false
}`

const feedbackSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"type": {"type": "string", "enum": ["like", "dislike"]}
	},
	"required": ["type"],
	"additionalProperties": false
}`

// SchemaValidator handles JSON schema validation for API request bodies.
type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	sources := map[string]string{
		"preference-update": preferenceUpdateSchema,
		"feedback":          feedbackSchema,
	}

	sv := &SchemaValidator{schemas: make(map[string]*gojsonschema.Schema, len(sources))}
	for name, source := range sources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		sv.schemas[name] = schema
	}

	return sv, nil
}

// ValidatePreferenceUpdate checks an UpdatePreferences request body.
func (sv *SchemaValidator) ValidatePreferenceUpdate(body []byte) *ValidationResult {
	return sv.validate("preference-update", body)
}

// ValidateFeedback checks a RecordFeedback request body.
func (sv *SchemaValidator) ValidateFeedback(body []byte) *ValidationResult {
	return sv.validate("feedback", body)
}

func (sv *SchemaValidator) validate(schemaName string, body []byte) *ValidationResult {
	schema, exists := sv.schemas[schemaName]
	if !exists {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "schema",
				Message: fmt.Sprintf("Schema '%s' not found", schemaName),
				Code:    "SCHEMA_NOT_FOUND",
			}},
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Field:   "body",
				Message: fmt.Sprintf("Validation error: %v", err),
				Code:    "VALIDATION_ERROR",
			}},
		}
	}

	vr := &ValidationResult{Valid: result.Valid()}
	for _, resultError := range result.Errors() {
		vr.Errors = append(vr.Errors, ValidationError{
			Field:   resultError.Field(),
			Message: resultError.Description(),
			Code:    "SCHEMA_VIOLATION",
		})
	}
	return vr
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ToAPIError converts validation errors into the API error envelope.
func (vr *ValidationResult) ToAPIError() map[string]interface{} {
	details := make([]map[string]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		details = append(details, map[string]string{
			"field":   e.Field,
			"message": e.Message,
			"code":    e.Code,
		})
	}

	return map[string]interface{}{
		"error": map[string]interface{}{
			"code":    "VALIDATION_FAILED",
			"message": "Request body failed validation",
			"details": details,
		},
	}
}

// MarshalDetails is a helper for logging validation failures compactly.
func (vr *ValidationResult) MarshalDetails() string {
	data, err := json.Marshal(vr.Errors)
	if err != nil {
		return ""
	}
	return string(data)
}
