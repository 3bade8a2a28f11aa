// Package entity defines the domain models for the profile feature.
package entity

// Company is the root record of an investment profile.
// FundingValuation, OwnershipStructure and ParametricScoring rows reference it by ID.
type Company struct {
	ID                  uint
	Name                string
	Description         string
	YearOfIncorporation int
	Country             string
	TotalFounders       int
	NoOfEmployees       int
	FounderNames        string
	IndustryType        string
	Geography           string
	IsActive            bool
}
