package server

import (
	"net/url"
	"testing"

	"github.com/jonathan/kyp-analysis/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormStateFromValues_Empty(t *testing.T) {
	state, err := formStateFromValues(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, types.DefaultFormState(), state)
}

func TestFormStateFromValues_AllFields(t *testing.T) {
	values := url.Values{
		fieldPrimaryEquities:       {"B", "A", " ", ""},
		fieldPrimaryFixedIncome:    {"C"},
		fieldComparisonEquities:    {"D", "E"},
		fieldComparisonFixedIncome: {"F"},
		fieldNeed:                  {"Low"},
		fieldNeedNotes:             {"need notes"},
		fieldAbility:               {"Moderate"},
		fieldAbilityNotes:          {"ability\r\nnotes"},
		fieldWillingness:           {"Low"},
		fieldWillingnessNotes:      {"willingness notes"},
		fieldFinalProfile:          {"Ultra-Conservative"},
		fieldFinalNotes:            {"final"},
		fieldClientName:            {"Zoe"},
		fieldInvestmentGoals:       {"Income"},
		fieldRiskTolerance:         {"Low"},
		fieldAccountType:           {"RRSP"},
		fieldPrimaryFund:           {"C"},
		fieldRecommendationNotes:   {"notes"},
	}

	state, err := formStateFromValues(values)
	require.NoError(t, err)

	assert.Equal(t, types.FormState{
		Funds: types.FundSelection{
			PrimaryEquities:       []string{"B", "A"},
			PrimaryFixedIncome:    []string{"C"},
			ComparisonEquities:    []string{"D", "E"},
			ComparisonFixedIncome: []string{"F"},
		},
		Risk: types.RiskAssessment{
			Need:             types.RatingLow,
			NeedNotes:        "need notes",
			Ability:          types.RatingModerate,
			AbilityNotes:     "ability\r\nnotes",
			Willingness:      types.RatingLow,
			WillingnessNotes: "willingness notes",
			FinalProfile:     types.ProfileUltraConservative,
			FinalNotes:       "final",
		},
		Recommendation: types.ClientRecommendation{
			ClientName:          "Zoe",
			InvestmentGoals:     "Income",
			RiskTolerance:       "Low",
			AccountType:         "RRSP",
			PrimaryFund:         "C",
			RecommendationNotes: "notes",
		},
	}, state)
}

func TestFormStateFromValues_ExplicitEmptyText(t *testing.T) {
	state, err := formStateFromValues(url.Values{
		fieldClientName:          {""},
		fieldRecommendationNotes: {""},
	})
	require.NoError(t, err)

	assert.Empty(t, state.Recommendation.ClientName)
	assert.Empty(t, state.Recommendation.RecommendationNotes)
	assert.Equal(t, types.DefaultAccountType, state.Recommendation.AccountType)
}

func TestFormStateFromValues_InvalidEnums(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "need", key: fieldNeed, value: "Extreme"},
		{name: "ability", key: fieldAbility, value: "high"},
		{name: "willingness", key: fieldWillingness, value: ""},
		{name: "final profile", key: fieldFinalProfile, value: "Reckless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := formStateFromValues(url.Values{tt.key: {tt.value}})
			require.Error(t, err)

			var verr *ErrValidation
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.key, verr.Field)
			assert.Contains(t, verr.Message, tt.value)
		})
	}
}

func TestAsValidationError(t *testing.T) {
	state := types.DefaultFormState()
	state.Risk.FinalProfile = "Reckless"

	err := asValidationError(state.Validate())
	var verr *ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, fieldFinalProfile, verr.Field)
	assert.Equal(t, `"Reckless" is not one of Aggressive Balanced Conservative Ultra-Conservative`, verr.Message)

	assert.Same(t, assert.AnError, asValidationError(assert.AnError))
}
