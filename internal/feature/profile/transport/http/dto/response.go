package dto

import (
	"profile_backend/internal/feature/profile/domain/confidence"
	"profile_backend/internal/feature/profile/domain/entity"
)

// ErrorResponse は {"error": "..."} 形式のエラーです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse は作成系エンドポイントの201レスポンスです。
type CreatedResponse struct {
	Message string `json:"message"`
	IDs     []uint `json:"ids"`
}

type CompanyResponse struct {
	ID                  uint   `json:"st_company_id"`
	Name                string `json:"st_company_name"`
	Description         string `json:"st_company_description"`
	YearOfIncorporation int    `json:"st_year_of_incorporation"`
	Country             string `json:"st_country"`
	TotalFounders       int    `json:"st_total_founders"`
	NoOfEmployees       int    `json:"st_no_of_employees"`
	FounderNames        string `json:"st_founder_names"`
	IndustryType        string `json:"st_industry_type"`
	Geography           string `json:"st_geography"`
	IsActive            bool   `json:"is_active"`
}

func NewCompanyResponse(c entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		YearOfIncorporation: c.YearOfIncorporation,
		Country:             c.Country,
		TotalFounders:       c.TotalFounders,
		NoOfEmployees:       c.NoOfEmployees,
		FounderNames:        c.FounderNames,
		IndustryType:        c.IndustryType,
		Geography:           c.Geography,
		IsActive:            c.IsActive,
	}
}

type FundingResponse struct {
	ID                  uint    `json:"st_funding_id"`
	CompanyID           uint    `json:"st_company_id"`
	Stage               *string `json:"st_stage"`
	RaisedToDate        *string `json:"st_raised_to_date"`
	LastValuation       *string `json:"st_last_valuation"`
	CurrentValuation    *string `json:"st_current_valuation"`
	CapitalRequirements *string `json:"st_capital_requirements"`
	Currency            string  `json:"st_currency"`
	CreatedBy           int     `json:"st_created_by"`
	ModifiedBy          int     `json:"st_modified_by"`
	IsActive            bool    `json:"is_active"`
}

func NewFundingResponse(f entity.FundingValuation) FundingResponse {
	return FundingResponse{
		ID:                  f.ID,
		CompanyID:           f.CompanyID,
		Stage:               f.Stage,
		RaisedToDate:        f.RaisedToDate,
		LastValuation:       f.LastValuation,
		CurrentValuation:    f.CurrentValuation,
		CapitalRequirements: f.CapitalRequirements,
		Currency:            f.Currency,
		CreatedBy:           f.CreatedBy,
		ModifiedBy:          f.ModifiedBy,
		IsActive:            f.IsActive,
	}
}

type OwnershipResponse struct {
	ID                uint    `json:"st_ownership_id"`
	CompanyID         uint    `json:"st_company_id"`
	Type              string  `json:"st_type"`
	ShareholderName   string  `json:"st_shareholder_name"`
	HoldingPercentage float64 `json:"st_holding_percentage"`
	IsActive          bool    `json:"is_active"`
}

func NewOwnershipResponse(o entity.OwnershipStructure) OwnershipResponse {
	return OwnershipResponse{
		ID:                o.ID,
		CompanyID:         o.CompanyID,
		Type:              o.Type,
		ShareholderName:   o.ShareholderName,
		HoldingPercentage: o.HoldingPercentage,
		IsActive:          o.IsActive,
	}
}

type ScoringResponse struct {
	ID                   uint     `json:"st_parametric_scoring_id"`
	CompanyID            uint     `json:"st_company_id"`
	MarketPotential      *float64 `json:"st_market_potential"`
	ProductViability     *float64 `json:"st_product_viability"`
	FinancialHealth      *float64 `json:"st_financial_health"`
	TeamStrength         *float64 `json:"st_team_strength"`
	CompetitiveAdvantage *float64 `json:"st_competitive_advantage"`
	CustomerTraction     *float64 `json:"st_customer_traction"`
	RiskFactors          *float64 `json:"st_risk_factors"`
	ExitPotential        *float64 `json:"st_exit_potential"`
	Innovation           *float64 `json:"st_innovation"`
	Sustainability       *float64 `json:"st_sustainability"`
	IsActive             bool     `json:"is_active"`
}

func NewScoringResponse(s entity.ParametricScoring) ScoringResponse {
	return ScoringResponse{
		ID:                   s.ID,
		CompanyID:            s.CompanyID,
		MarketPotential:      s.MarketPotential,
		ProductViability:     s.ProductViability,
		FinancialHealth:      s.FinancialHealth,
		TeamStrength:         s.TeamStrength,
		CompetitiveAdvantage: s.CompetitiveAdvantage,
		CustomerTraction:     s.CustomerTraction,
		RiskFactors:          s.RiskFactors,
		ExitPotential:        s.ExitPotential,
		Innovation:           s.Innovation,
		Sustainability:       s.Sustainability,
		IsActive:             s.IsActive,
	}
}

// ScoringListItem はリスト表示用で、confidence_levelを付与します。
// スコアが欠けている行ではconfidence_levelはnullです。
type ScoringListItem struct {
	ScoringResponse
	ConfidenceLevel *string `json:"confidence_level"`
}

func NewScoringListItem(s entity.ParametricScoring) ScoringListItem {
	item := ScoringListItem{ScoringResponse: NewScoringResponse(s)}
	if v, err := s.Confidence(); err == nil {
		formatted := confidence.Format(v)
		item.ConfidenceLevel = &formatted
	}
	return item
}
