package rendering

import "github.com/jonathan/kyp-analysis/internal/types"

// RiskDimension describes one of the three risk dimensions an advisor rates,
// together with the fixed questions that guide the assessment.
type RiskDimension struct {
	Key       string
	Title     string
	Questions []string
}

// RiskDimensions lists the dimensions in report order: need, ability, willingness.
var RiskDimensions = []RiskDimension{
	{
		Key:   "need",
		Title: "Need to Take Risk (Financial Need for Growth)",
		Questions: []string{
			"Does the client need higher returns to meet their financial goals?",
			"What is their required return to achieve financial goals (retirement, wealth accumulation)?",
			"Do they have guaranteed income (pension, CPP, OAS, annuities)?",
			"How flexible is their spending (can they reduce expenses if needed)?",
			"Do they prioritize wealth accumulation or capital preservation?",
		},
	},
	{
		Key:   "ability",
		Title: "Ability to Take Risk (Time Horizon & Financial Stability)",
		Questions: []string{
			"What is the client's investment time horizon?",
			"Will they rely on portfolio withdrawals soon?",
			"Do they have liquidity needs?",
			"How stable are other income sources?",
		},
	},
	{
		Key:   "willingness",
		Title: "Willingness to Take Risk (Behavioral & Emotional Tolerance)",
		Questions: []string{
			"How did the client react to past market downturns?",
			"What is their investment experience and knowledge level?",
			"How comfortable are they with volatility?",
			"What are their expectations regarding risk vs. return?",
			"Do they prioritize stability or maximizing returns?",
		},
	},
}

// ProfileGuide explains when a final risk profile applies.
type ProfileGuide struct {
	Profile     types.RiskProfile
	Tolerance   string
	Description string
}

// FinalProfileBasis is the rule advisors apply when choosing the final profile.
const FinalProfileBasis = "Based on the lowest score among Need, Ability, and Willingness."

// ProfileGuides lists the final profile options with their guidance text.
var ProfileGuides = []ProfileGuide{
	{Profile: types.ProfileAggressive, Tolerance: "High Risk Tolerance", Description: "High scores across all three categories."},
	{Profile: types.ProfileBalanced, Tolerance: "Moderate Risk Tolerance", Description: "Moderate ability or willingness but high need."},
	{Profile: types.ProfileConservative, Tolerance: "Low Risk Tolerance", Description: "Low willingness or ability, regardless of need."},
	{Profile: types.ProfileUltraConservative, Tolerance: "Minimal Risk", Description: "Low ability and low willingness, even if higher returns are needed."},
}
