package server

import (
	"bytes"
	"embed"
	"html/template"
	"slices"
	"strings"

	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/rendering"
	"github.com/jonathan/kyp-analysis/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var formTemplate = template.Must(template.New("form.html.tmpl").
	Funcs(template.FuncMap{
		"selected": func(list []string, name string) bool { return slices.Contains(list, name) },
	}).
	ParseFS(templateFS, "templates/form.html.tmpl"))

// formFieldNames exposes the form field names to the page template.
type formFieldNames struct {
	PrimaryEquities, PrimaryFixedIncome           string
	ComparisonEquities, ComparisonFixedIncome     string
	FinalProfile, FinalNotes                      string
	ClientName, InvestmentGoals, RiskTolerance    string
	AccountType, PrimaryFund, RecommendationNotes string
}

var pageFields = formFieldNames{
	PrimaryEquities:       fieldPrimaryEquities,
	PrimaryFixedIncome:    fieldPrimaryFixedIncome,
	ComparisonEquities:    fieldComparisonEquities,
	ComparisonFixedIncome: fieldComparisonFixedIncome,
	FinalProfile:          fieldFinalProfile,
	FinalNotes:            fieldFinalNotes,
	ClientName:            fieldClientName,
	InvestmentGoals:       fieldInvestmentGoals,
	RiskTolerance:         fieldRiskTolerance,
	AccountType:           fieldAccountType,
	PrimaryFund:           fieldPrimaryFund,
	RecommendationNotes:   fieldRecommendationNotes,
}

type dimensionView struct {
	Key        string
	Title      string
	Short      string
	Questions  []string
	Rating     types.RiskRating
	Notes      string
	NotesField string
}

type formPage struct {
	Fields        formFieldNames
	State         types.FormState
	Equities      []string
	FixedIncome   []string
	Dimensions    []dimensionView
	Ratings       []types.RiskRating
	Profiles      []types.RiskProfile
	ProfileGuides []rendering.ProfileGuide
	ProfileBasis  string
}

func newFormPage(catalog *funds.Catalog, state types.FormState) formPage {
	values := map[string]struct {
		rating types.RiskRating
		notes  string
		field  string
	}{
		fieldNeed:        {state.Risk.Need, state.Risk.NeedNotes, fieldNeedNotes},
		fieldAbility:     {state.Risk.Ability, state.Risk.AbilityNotes, fieldAbilityNotes},
		fieldWillingness: {state.Risk.Willingness, state.Risk.WillingnessNotes, fieldWillingnessNotes},
	}

	dims := make([]dimensionView, 0, len(rendering.RiskDimensions))
	for _, d := range rendering.RiskDimensions {
		short, _, _ := strings.Cut(d.Title, " (")
		v := values[d.Key]
		dims = append(dims, dimensionView{
			Key:        d.Key,
			Title:      d.Title,
			Short:      short,
			Questions:  d.Questions,
			Rating:     v.rating,
			Notes:      v.notes,
			NotesField: v.field,
		})
	}

	return formPage{
		Fields:        pageFields,
		State:         state,
		Equities:      catalog.Names(funds.Equities),
		FixedIncome:   catalog.Names(funds.FixedIncome),
		Dimensions:    dims,
		Ratings:       types.RiskRatings,
		Profiles:      types.RiskProfiles,
		ProfileGuides: rendering.ProfileGuides,
		ProfileBasis:  rendering.FinalProfileBasis,
	}
}

// renderFormPage executes the form template into memory so a template
// failure never leaves a half-written page on the wire.
func renderFormPage(page formPage) ([]byte, error) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
