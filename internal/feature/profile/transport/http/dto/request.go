// Package dto defines request and response bodies for the profile HTTP transport.
// Field names mirror the st_ column names of the underlying tables.
package dto

import (
	"github.com/samber/lo"

	"profile_backend/internal/feature/profile/domain/entity"
)

// CompanyRequest は POST /companies および combined の company_overview です。
// すべての項目が必須で、is_activeのみ省略時trueになります。
type CompanyRequest struct {
	Name                *string `json:"st_company_name" binding:"required"`
	Description         *string `json:"st_company_description" binding:"required"`
	YearOfIncorporation *int    `json:"st_year_of_incorporation" binding:"required,min=0"`
	Country             *string `json:"st_country" binding:"required"`
	TotalFounders       *int    `json:"st_total_founders" binding:"required,min=0"`
	NoOfEmployees       *int    `json:"st_no_of_employees" binding:"required,min=0"`
	FounderNames        *string `json:"st_founder_names" binding:"required"`
	IndustryType        *string `json:"st_industry_type" binding:"required"`
	Geography           *string `json:"st_geography" binding:"required"`
	IsActive            *bool   `json:"is_active"`
}

func (r CompanyRequest) ToEntity() entity.Company {
	return entity.Company{
		Name:                lo.FromPtr(r.Name),
		Description:         lo.FromPtr(r.Description),
		YearOfIncorporation: lo.FromPtr(r.YearOfIncorporation),
		Country:             lo.FromPtr(r.Country),
		TotalFounders:       lo.FromPtr(r.TotalFounders),
		NoOfEmployees:       lo.FromPtr(r.NoOfEmployees),
		FounderNames:        lo.FromPtr(r.FounderNames),
		IndustryType:        lo.FromPtr(r.IndustryType),
		Geography:           lo.FromPtr(r.Geography),
		IsActive:            lo.FromPtrOr(r.IsActive, true),
	}
}

// FundingRequest は POST /funding です。
// 金額は10進数文字列で、st_currency / st_created_by / st_modified_by / is_active は省略可能です。
type FundingRequest struct {
	CompanyID           *uint   `json:"st_company_id" binding:"required,min=1"`
	Stage               *string `json:"st_stage" binding:"required"`
	RaisedToDate        *string `json:"st_raised_to_date" binding:"required"`
	LastValuation       *string `json:"st_last_valuation" binding:"required"`
	CurrentValuation    *string `json:"st_current_valuation" binding:"required"`
	CapitalRequirements *string `json:"st_capital_requirements" binding:"required"`
	Currency            *string `json:"st_currency" binding:"omitempty,max=10"`
	CreatedBy           *int    `json:"st_created_by" binding:"omitempty,min=1"`
	ModifiedBy          *int    `json:"st_modified_by" binding:"omitempty,min=1"`
	IsActive            *bool   `json:"is_active"`
}

func (r FundingRequest) ToEntity() entity.FundingValuation {
	return entity.FundingValuation{
		CompanyID:           lo.FromPtr(r.CompanyID),
		Stage:               r.Stage,
		RaisedToDate:        r.RaisedToDate,
		LastValuation:       r.LastValuation,
		CurrentValuation:    r.CurrentValuation,
		CapitalRequirements: r.CapitalRequirements,
		Currency:            lo.FromPtrOr(r.Currency, entity.DefaultCurrency),
		CreatedBy:           lo.FromPtrOr(r.CreatedBy, entity.DefaultAuditUserID),
		ModifiedBy:          lo.FromPtrOr(r.ModifiedBy, entity.DefaultAuditUserID),
		IsActive:            lo.FromPtrOr(r.IsActive, true),
	}
}

// ShareholderFields は株主1行分の項目です。
type ShareholderFields struct {
	Type              *string  `json:"st_type" binding:"required"`
	ShareholderName   *string  `json:"st_shareholder_name" binding:"required"`
	HoldingPercentage *float64 `json:"st_holding_percentage" binding:"required,min=0,max=100"`
	IsActive          *bool    `json:"is_active"`
}

func (r ShareholderFields) toEntity(companyID uint) entity.OwnershipStructure {
	return entity.OwnershipStructure{
		CompanyID:         companyID,
		Type:              lo.FromPtr(r.Type),
		ShareholderName:   lo.FromPtr(r.ShareholderName),
		HoldingPercentage: lo.FromPtr(r.HoldingPercentage),
		IsActive:          lo.FromPtrOr(r.IsActive, true),
	}
}

// OwnershipRequest は POST /ownership の1要素です。ボディは単一オブジェクトか配列です。
type OwnershipRequest struct {
	CompanyID *uint `json:"st_company_id" binding:"required,min=1"`
	ShareholderFields
}

func (r OwnershipRequest) ToEntity() entity.OwnershipStructure {
	return r.toEntity(lo.FromPtr(r.CompanyID))
}

// ScoringRequest は POST /scoring です。10項目のスコアはすべて必須で0〜10です。
type ScoringRequest struct {
	CompanyID            *uint    `json:"st_company_id" binding:"required,min=1"`
	MarketPotential      *float64 `json:"st_market_potential" binding:"required,min=0,max=10"`
	ProductViability     *float64 `json:"st_product_viability" binding:"required,min=0,max=10"`
	FinancialHealth      *float64 `json:"st_financial_health" binding:"required,min=0,max=10"`
	TeamStrength         *float64 `json:"st_team_strength" binding:"required,min=0,max=10"`
	CompetitiveAdvantage *float64 `json:"st_competitive_advantage" binding:"required,min=0,max=10"`
	CustomerTraction     *float64 `json:"st_customer_traction" binding:"required,min=0,max=10"`
	RiskFactors          *float64 `json:"st_risk_factors" binding:"required,min=0,max=10"`
	ExitPotential        *float64 `json:"st_exit_potential" binding:"required,min=0,max=10"`
	Innovation           *float64 `json:"st_innovation" binding:"required,min=0,max=10"`
	Sustainability       *float64 `json:"st_sustainability" binding:"required,min=0,max=10"`
	IsActive             *bool    `json:"is_active"`
}

func (r ScoringRequest) ToEntity() entity.ParametricScoring {
	return entity.ParametricScoring{
		CompanyID:            lo.FromPtr(r.CompanyID),
		MarketPotential:      r.MarketPotential,
		ProductViability:     r.ProductViability,
		FinancialHealth:      r.FinancialHealth,
		TeamStrength:         r.TeamStrength,
		CompetitiveAdvantage: r.CompetitiveAdvantage,
		CustomerTraction:     r.CustomerTraction,
		RiskFactors:          r.RiskFactors,
		ExitPotential:        r.ExitPotential,
		Innovation:           r.Innovation,
		Sustainability:       r.Sustainability,
		IsActive:             lo.FromPtrOr(r.IsActive, true),
	}
}
