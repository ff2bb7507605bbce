package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormState_Valid(t *testing.T) {
	docs := []string{
		`{}`,
		`{"funds": {"primary_equities": ["DFA Global Equity Portfolio F (DFA607)"], "comparison_fixed_income": []}}`,
		`{"risk": {"need": "High", "ability": "Moderate", "willingness": "Low", "final_profile": "Ultra-Conservative", "final_notes": ""}}`,
		`{"recommendation": {"client_name": "Xavier", "account_type": "RESP"}}`,
	}

	for _, doc := range docs {
		assert.NoError(t, ValidateFormState([]byte(doc)), doc)
	}
}

func TestValidateFormState_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{name: "unknown rating", doc: `{"risk": {"need": "Extreme"}}`, field: "risk.need"},
		{name: "unknown profile", doc: `{"risk": {"final_profile": "YOLO"}}`, field: "risk.final_profile"},
		{name: "fund list type", doc: `{"funds": {"primary_equities": "DFA"}}`, field: "funds.primary_equities"},
		{name: "fund name type", doc: `{"funds": {"primary_equities": [1]}}`, field: "funds.primary_equities.0"},
		{name: "unknown top-level field", doc: `{"client": "Xavier"}`, field: "(root)"},
		{name: "notes type", doc: `{"recommendation": {"client_name": 42}}`, field: "recommendation.client_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormState([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateFormState_MalformedJSON(t *testing.T) {
	err := ValidateFormState([]byte(`{"risk": `))
	require.Error(t, err)
	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
}

func TestValidateBytes_InvalidSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{"type": 12}`), []byte(`{}`))
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateBytes_RequiredField(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateBytes([]byte(schema), []byte(`{"name": "ok"}`)))

	err := ValidateBytes([]byte(schema), []byte(`{}`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 1)
}
