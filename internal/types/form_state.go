// Package types provides type definitions for the structured data exchanged by the KYP analysis tool.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// RiskRating is the advisor's assessment of a single risk dimension.
type RiskRating string

const (
	RatingHigh     RiskRating = "High"
	RatingModerate RiskRating = "Moderate"
	RatingLow      RiskRating = "Low"
)

// RiskRatings lists the ratings in the order they are offered.
var RiskRatings = []RiskRating{RatingHigh, RatingModerate, RatingLow}

// RiskProfile is the final risk profile recommendation.
type RiskProfile string

const (
	ProfileAggressive        RiskProfile = "Aggressive"
	ProfileBalanced          RiskProfile = "Balanced"
	ProfileConservative      RiskProfile = "Conservative"
	ProfileUltraConservative RiskProfile = "Ultra-Conservative"
)

// RiskProfiles lists the profiles in the order they are offered.
var RiskProfiles = []RiskProfile{
	ProfileAggressive,
	ProfileBalanced,
	ProfileConservative,
	ProfileUltraConservative,
}

// Default client field values pre-filled in a new analysis.
const (
	DefaultClientName          = "Xavier"
	DefaultInvestmentGoals     = "Long-term growth, able to stomach market fluctuations."
	DefaultRiskTolerance       = "High"
	DefaultAccountType         = "TFSA"
	DefaultPrimaryFund         = "DFA Global Equity Portfolio F (DFA607)"
	DefaultRecommendationNotes = "The primary recommendation is based on the client's preference for evidence-based, low-cost solutions."
)

// FundSelection holds the fund names picked in each of the four selection groups.
// Names are kept in the order the advisor selected them.
type FundSelection struct {
	PrimaryEquities       []string `json:"primary_equities"`
	PrimaryFixedIncome    []string `json:"primary_fixed_income"`
	ComparisonEquities    []string `json:"comparison_equities"`
	ComparisonFixedIncome []string `json:"comparison_fixed_income"`
}

// RiskAssessment holds the three risk dimension ratings, the final profile
// and the advisor's notes for each.
type RiskAssessment struct {
	Need             RiskRating  `json:"need" validate:"oneof=High Moderate Low"`
	NeedNotes        string      `json:"need_notes"`
	Ability          RiskRating  `json:"ability" validate:"oneof=High Moderate Low"`
	AbilityNotes     string      `json:"ability_notes"`
	Willingness      RiskRating  `json:"willingness" validate:"oneof=High Moderate Low"`
	WillingnessNotes string      `json:"willingness_notes"`
	FinalProfile     RiskProfile `json:"final_profile" validate:"oneof=Aggressive Balanced Conservative Ultra-Conservative"`
	FinalNotes       string      `json:"final_notes"`
}

// ClientRecommendation holds the client-specific recommendation fields.
type ClientRecommendation struct {
	ClientName          string `json:"client_name"`
	InvestmentGoals     string `json:"investment_goals"`
	RiskTolerance       string `json:"risk_tolerance"`
	AccountType         string `json:"account_type"`
	PrimaryFund         string `json:"primary_fund"`
	RecommendationNotes string `json:"recommendation_notes"`
}

// FormState is everything an advisor entered for one KYP analysis.
// It is request scoped: built from a submitted form, handed to the
// assembler and dropped afterwards.
type FormState struct {
	Funds          FundSelection        `json:"funds"`
	Risk           RiskAssessment       `json:"risk"`
	Recommendation ClientRecommendation `json:"recommendation"`
}

// DefaultFormState returns the values a fresh form starts with.
func DefaultFormState() FormState {
	return FormState{
		Risk: RiskAssessment{
			Need:         RatingHigh,
			Ability:      RatingHigh,
			Willingness:  RatingHigh,
			FinalProfile: ProfileAggressive,
		},
		Recommendation: ClientRecommendation{
			ClientName:          DefaultClientName,
			InvestmentGoals:     DefaultInvestmentGoals,
			RiskTolerance:       DefaultRiskTolerance,
			AccountType:         DefaultAccountType,
			PrimaryFund:         DefaultPrimaryFund,
			RecommendationNotes: DefaultRecommendationNotes,
		},
	}
}

var validate = validator.New()

// Validate checks that the ratings and the final profile are drawn from their
// fixed enumerations. Free-text fields and fund selections are not checked.
func (s *FormState) Validate() error {
	return validate.Struct(s)
}
