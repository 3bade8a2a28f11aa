package entity

// CombinedProfile is a company joined with its dependent records.
// Funding and Scoring are nil when the company has no such row.
type CombinedProfile struct {
	Company   Company
	Funding   *FundingValuation
	Ownership []OwnershipStructure
	Scoring   *ParametricScoring
}
