package schemas

import (
	"encoding/json"

	"github.com/jonathan/kyp-analysis/internal/types"
)

// DecodeFormState schema-checks a JSON FormState payload and decodes it over
// types.DefaultFormState, so omitted fields keep their default values.
// The decoded state's enumerations are validated before it is returned.
func DecodeFormState(document []byte) (types.FormState, error) {
	if err := ValidateFormState(document); err != nil {
		return types.FormState{}, err
	}

	state := types.DefaultFormState()
	if err := json.Unmarshal(document, &state); err != nil {
		return types.FormState{}, &DocumentError{Cause: err}
	}
	if err := state.Validate(); err != nil {
		return types.FormState{}, err
	}
	return state, nil
}
