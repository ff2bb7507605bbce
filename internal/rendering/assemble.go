// Package rendering assembles KYP analysis reports and serializes them as
// WordprocessingML (.docx) documents.
package rendering

import (
	"time"

	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/types"
)

const (
	// ReportTitle is the level 1 heading of every report.
	ReportTitle = "KYP Analysis Report"
	// DateLayout formats the report date stamp as YYYY-MM-DD.
	DateLayout = "2006-01-02"
	// MissingFundText replaces the description of a fund absent from the catalog.
	MissingFundText = "Fund description unavailable."
)

// MissingFund records a selected fund name that has no catalog entry.
type MissingFund struct {
	Group    string
	Category funds.Category
	Name     string
}

// fundGroup is one labeled selection group within a fund section
type fundGroup struct {
	label    string
	category funds.Category
	names    []string
}

// Assembler builds report documents from form state and the fund catalog.
type Assembler struct {
	catalog *funds.Catalog
	now     func() time.Time
}

// NewAssembler creates an Assembler. A nil now defaults to time.Now.
func NewAssembler(catalog *funds.Catalog, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{catalog: catalog, now: now}
}

// Assemble builds the report for state. Selected funds missing from the
// catalog do not fail the report: their label is kept, their description is
// replaced by MissingFundText and they are returned for the caller to report.
func (a *Assembler) Assemble(state *types.FormState) (*types.ReportDocument, []MissingFund) {
	doc := &types.ReportDocument{
		Title: ReportTitle,
		Date:  a.now().Format(DateLayout),
	}

	doc.Heading(1, ReportTitle)
	doc.Paragraph("Date: " + doc.Date)
	doc.Paragraph("")

	var missing []MissingFund

	doc.Heading(2, "1. Fund Selection")
	doc.Heading(3, "Primary Fund Selection")
	missing = a.addFundGroups(doc, missing, []fundGroup{
		{label: "Equities:", category: funds.Equities, names: state.Funds.PrimaryEquities},
		{label: "Fixed Income:", category: funds.FixedIncome, names: state.Funds.PrimaryFixedIncome},
	})
	doc.Heading(3, "Fund Comparison")
	missing = a.addFundGroups(doc, missing, []fundGroup{
		{label: "Equities Comparison:", category: funds.Equities, names: state.Funds.ComparisonEquities},
		{label: "Fixed Income Comparison:", category: funds.FixedIncome, names: state.Funds.ComparisonFixedIncome},
	})

	addRiskSection(doc, &state.Risk)
	addRecommendationSection(doc, &state.Recommendation)

	return doc, missing
}

func (a *Assembler) addFundGroups(doc *types.ReportDocument, missing []MissingFund, groups []fundGroup) []MissingFund {
	for _, g := range groups {
		if len(g.names) == 0 {
			continue
		}
		doc.Bullet(1, g.label)
		for _, name := range g.names {
			doc.Bullet(2, name+":")
			fund, ok := a.catalog.Lookup(g.category, name)
			if !ok {
				missing = append(missing, MissingFund{Group: g.label, Category: g.category, Name: name})
				doc.Paragraph(MissingFundText)
				continue
			}
			doc.Paragraph(fund.Text)
		}
	}
	return missing
}

func addRiskSection(doc *types.ReportDocument, risk *types.RiskAssessment) {
	doc.Heading(2, "2. Risk Evaluation Framework")

	ratings := map[string]struct {
		rating types.RiskRating
		notes  string
	}{
		"need":        {risk.Need, risk.NeedNotes},
		"ability":     {risk.Ability, risk.AbilityNotes},
		"willingness": {risk.Willingness, risk.WillingnessNotes},
	}

	for _, dim := range RiskDimensions {
		r := ratings[dim.Key]
		doc.Heading(3, dim.Title)
		doc.Paragraph("Assessment: " + string(r.rating))
		doc.Paragraph("Advisor Notes:")
		for _, q := range dim.Questions {
			doc.Bullet(1, q)
		}
		doc.Paragraph("Additional Notes: " + r.notes)
	}

	doc.Heading(3, "Final Risk Profile Recommendation")
	doc.Paragraph("Assessment: " + string(risk.FinalProfile))
	doc.Paragraph("Final Notes: " + risk.FinalNotes)
}

func addRecommendationSection(doc *types.ReportDocument, rec *types.ClientRecommendation) {
	doc.Heading(2, "3. Client-Specific Recommendation")
	doc.Paragraph("Client Name: " + rec.ClientName)
	doc.Paragraph("Investment Goals: " + rec.InvestmentGoals)
	doc.Paragraph("Risk Tolerance: " + rec.RiskTolerance)
	doc.Paragraph("Account Type: " + rec.AccountType)
	doc.Paragraph("Primary Fund Recommended: " + rec.PrimaryFund)
	doc.Paragraph("Recommendation Notes: " + rec.RecommendationNotes)
}
