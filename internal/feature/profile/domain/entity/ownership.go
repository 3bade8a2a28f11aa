package entity

// OwnershipStructure is one line of a company's cap table.
type OwnershipStructure struct {
	ID                uint
	CompanyID         uint
	Type              string
	ShareholderName   string
	HoldingPercentage float64
	IsActive          bool
}
