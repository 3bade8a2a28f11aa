package entity

const (
	// DefaultCurrency はst_currency未指定時に使用する通貨コードです。
	DefaultCurrency = "USD"
	// DefaultAuditUserID はst_created_by / st_modified_by未指定時の値です。
	DefaultAuditUserID = 1
)

// FundingValuation holds a company's funding stage and valuation figures.
// Amounts are decimal-bearing strings so that no precision is lost between
// the client and the database.
type FundingValuation struct {
	ID                  uint
	CompanyID           uint
	Stage               *string
	RaisedToDate        *string
	LastValuation       *string
	CurrentValuation    *string
	CapitalRequirements *string
	Currency            string
	CreatedBy           int
	ModifiedBy          int
	IsActive            bool
}

// Amounts returns the decimal-bearing fields keyed by column name.
func (f FundingValuation) Amounts() map[string]*string {
	return map[string]*string{
		"st_raised_to_date":       f.RaisedToDate,
		"st_last_valuation":       f.LastValuation,
		"st_current_valuation":    f.CurrentValuation,
		"st_capital_requirements": f.CapitalRequirements,
	}
}
