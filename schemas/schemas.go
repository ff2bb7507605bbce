// Package schemas holds the JSON Schema documents for payloads accepted by the
// KYP analysis tool.
package schemas

import _ "embed"

// FormState is the JSON Schema for a FormState payload.
//
//go:embed form_state.schema.json
var FormState []byte
