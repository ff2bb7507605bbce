package server

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/kyp-analysis/internal/types"
)

// Form field names shared by the HTML form and the form decoder.
const (
	fieldPrimaryEquities       = "primary_equities"
	fieldPrimaryFixedIncome    = "primary_fixed_income"
	fieldComparisonEquities    = "comparison_equities"
	fieldComparisonFixedIncome = "comparison_fixed_income"

	fieldNeed             = "need"
	fieldNeedNotes        = "need_notes"
	fieldAbility          = "ability"
	fieldAbilityNotes     = "ability_notes"
	fieldWillingness      = "willingness"
	fieldWillingnessNotes = "willingness_notes"
	fieldFinalProfile     = "final_profile"
	fieldFinalNotes       = "final_notes"

	fieldClientName          = "client_name"
	fieldInvestmentGoals     = "investment_goals"
	fieldRiskTolerance       = "risk_tolerance"
	fieldAccountType         = "account_type"
	fieldPrimaryFund         = "primary_fund"
	fieldRecommendationNotes = "recommendation_notes"
)

// structFields maps FormState field names reported by the validator to form field names.
var structFields = map[string]string{
	"Need":         fieldNeed,
	"Ability":      fieldAbility,
	"Willingness":  fieldWillingness,
	"FinalProfile": fieldFinalProfile,
}

// formStateFromValues builds a FormState from submitted form values.
// Fields absent from the submission keep their default values; a field that
// is present but empty is taken as an explicit empty answer.
func formStateFromValues(values url.Values) (types.FormState, error) {
	state := types.DefaultFormState()

	multi := func(key string, dst *[]string) {
		for _, v := range values[key] {
			if v = strings.TrimSpace(v); v != "" {
				*dst = append(*dst, v)
			}
		}
	}
	text := func(key string, dst *string) {
		if vs, ok := values[key]; ok && len(vs) > 0 {
			*dst = vs[0]
		}
	}
	rating := func(key string, dst *types.RiskRating) {
		if vs, ok := values[key]; ok && len(vs) > 0 {
			*dst = types.RiskRating(vs[0])
		}
	}

	multi(fieldPrimaryEquities, &state.Funds.PrimaryEquities)
	multi(fieldPrimaryFixedIncome, &state.Funds.PrimaryFixedIncome)
	multi(fieldComparisonEquities, &state.Funds.ComparisonEquities)
	multi(fieldComparisonFixedIncome, &state.Funds.ComparisonFixedIncome)

	rating(fieldNeed, &state.Risk.Need)
	text(fieldNeedNotes, &state.Risk.NeedNotes)
	rating(fieldAbility, &state.Risk.Ability)
	text(fieldAbilityNotes, &state.Risk.AbilityNotes)
	rating(fieldWillingness, &state.Risk.Willingness)
	text(fieldWillingnessNotes, &state.Risk.WillingnessNotes)
	if vs, ok := values[fieldFinalProfile]; ok && len(vs) > 0 {
		state.Risk.FinalProfile = types.RiskProfile(vs[0])
	}
	text(fieldFinalNotes, &state.Risk.FinalNotes)

	text(fieldClientName, &state.Recommendation.ClientName)
	text(fieldInvestmentGoals, &state.Recommendation.InvestmentGoals)
	text(fieldRiskTolerance, &state.Recommendation.RiskTolerance)
	text(fieldAccountType, &state.Recommendation.AccountType)
	text(fieldPrimaryFund, &state.Recommendation.PrimaryFund)
	text(fieldRecommendationNotes, &state.Recommendation.RecommendationNotes)

	if err := validateState(&state); err != nil {
		return types.FormState{}, err
	}
	return state, nil
}

// validateState checks the closed enumerations of state.
func validateState(state *types.FormState) error {
	if err := state.Validate(); err != nil {
		return asValidationError(err)
	}
	return nil
}

// asValidationError converts enumeration failures reported by the validator
// into an *ErrValidation naming the first offending form field. Other errors
// are returned unchanged.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field, ok := structFields[fe.Field()]
	if !ok {
		field = fe.Field()
	}
	return &ErrValidation{
		Field:   field,
		Message: fmt.Sprintf("%q is not one of %s", fmt.Sprint(fe.Value()), fe.Param()),
	}
}
