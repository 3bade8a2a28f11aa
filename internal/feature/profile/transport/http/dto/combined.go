package dto

import (
	"github.com/samber/lo"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/usecase"
)

// CombinedRequest は POST /combined のボディです。
// company_overviewのみ必須で、他のセクションは省略可能です。
type CombinedRequest struct {
	CompanyOverview    *CompanyRequest     `json:"company_overview" binding:"required"`
	FundingValuation   *CombinedFunding    `json:"funding_valuation"`
	OwnershipStructure []ShareholderFields `json:"ownership_structure" binding:"omitempty,dive"`
	ParametricScoring  *CombinedScoring    `json:"parametric_scoring"`
}

// CombinedFunding はcombined送信時の資金調達セクションです。すべて省略可能で、未指定の金額はnullになります。
type CombinedFunding struct {
	Stage               *string `json:"st_stage"`
	RaisedToDate        *string `json:"st_raised_to_date"`
	LastValuation       *string `json:"st_last_valuation"`
	CurrentValuation    *string `json:"st_current_valuation"`
	CapitalRequirements *string `json:"st_capital_requirements"`
	Currency            *string `json:"st_currency" binding:"omitempty,max=10"`
	IsActive            *bool   `json:"is_active"`
}

// CombinedScoring はcombined送信時のスコアリングセクションです。未指定のスコアはnullになります。
type CombinedScoring struct {
	MarketPotential      *float64 `json:"st_market_potential" binding:"omitempty,min=0,max=10"`
	ProductViability     *float64 `json:"st_product_viability" binding:"omitempty,min=0,max=10"`
	FinancialHealth      *float64 `json:"st_financial_health" binding:"omitempty,min=0,max=10"`
	TeamStrength         *float64 `json:"st_team_strength" binding:"omitempty,min=0,max=10"`
	CompetitiveAdvantage *float64 `json:"st_competitive_advantage" binding:"omitempty,min=0,max=10"`
	CustomerTraction     *float64 `json:"st_customer_traction" binding:"omitempty,min=0,max=10"`
	RiskFactors          *float64 `json:"st_risk_factors" binding:"omitempty,min=0,max=10"`
	ExitPotential        *float64 `json:"st_exit_potential" binding:"omitempty,min=0,max=10"`
	Innovation           *float64 `json:"st_innovation" binding:"omitempty,min=0,max=10"`
	Sustainability       *float64 `json:"st_sustainability" binding:"omitempty,min=0,max=10"`
	IsActive             *bool    `json:"is_active"`
}

// ToSubmission は省略されたセクションを空として扱い、デフォルト値を適用します。
func (r CombinedRequest) ToSubmission() usecase.CombinedSubmission {
	var sub usecase.CombinedSubmission
	if r.CompanyOverview != nil {
		sub.Company = r.CompanyOverview.ToEntity()
	}

	f := lo.FromPtr(r.FundingValuation)
	sub.Funding = entity.FundingValuation{
		Stage:               f.Stage,
		RaisedToDate:        f.RaisedToDate,
		LastValuation:       f.LastValuation,
		CurrentValuation:    f.CurrentValuation,
		CapitalRequirements: f.CapitalRequirements,
		Currency:            lo.FromPtrOr(f.Currency, entity.DefaultCurrency),
		IsActive:            lo.FromPtrOr(f.IsActive, true),
	}

	sub.Ownership = lo.Map(r.OwnershipStructure, func(o ShareholderFields, _ int) entity.OwnershipStructure {
		return o.toEntity(0)
	})

	s := lo.FromPtr(r.ParametricScoring)
	sub.Scoring = entity.ParametricScoring{
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
		IsActive:             lo.FromPtrOr(s.IsActive, true),
	}
	return sub
}

// CombinedResponse は GET /combined のレスポンスです。
// 存在しないセクションはnullの項目を持つオブジェクト（ownershipは空配列）になります。
type CombinedResponse struct {
	CompanyID          uint                `json:"st_company_id"`
	CompanyOverview    CompanyResponse     `json:"company_overview"`
	FundingValuation   FundingSummary      `json:"funding_valuation"`
	OwnershipStructure []ShareholderSummary `json:"ownership_structure"`
	ParametricScoring  ScoringSummary      `json:"parametric_scoring"`
}

type FundingSummary struct {
	Stage               *string `json:"st_stage"`
	RaisedToDate        *string `json:"st_raised_to_date"`
	LastValuation       *string `json:"st_last_valuation"`
	CurrentValuation    *string `json:"st_current_valuation"`
	CapitalRequirements *string `json:"st_capital_requirements"`
	Currency            *string `json:"st_currency"`
	IsActive            *bool   `json:"is_active"`
}

type ShareholderSummary struct {
	Type              string  `json:"st_type"`
	ShareholderName   string  `json:"st_shareholder_name"`
	HoldingPercentage float64 `json:"st_holding_percentage"`
	IsActive          bool    `json:"is_active"`
}

type ScoringSummary struct {
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
	IsActive             *bool    `json:"is_active"`
}

func NewCombinedResponse(p *entity.CombinedProfile) CombinedResponse {
	out := CombinedResponse{
		CompanyID:       p.Company.ID,
		CompanyOverview: NewCompanyResponse(p.Company),
		OwnershipStructure: lo.Map(p.Ownership, func(o entity.OwnershipStructure, _ int) ShareholderSummary {
			return ShareholderSummary{
				Type:              o.Type,
				ShareholderName:   o.ShareholderName,
				HoldingPercentage: o.HoldingPercentage,
				IsActive:          o.IsActive,
			}
		}),
	}

	if f := p.Funding; f != nil {
		out.FundingValuation = FundingSummary{
			Stage:               f.Stage,
			RaisedToDate:        f.RaisedToDate,
			LastValuation:       f.LastValuation,
			CurrentValuation:    f.CurrentValuation,
			CapitalRequirements: f.CapitalRequirements,
			Currency:            lo.ToPtr(f.Currency),
			IsActive:            lo.ToPtr(f.IsActive),
		}
	}

	if s := p.Scoring; s != nil {
		out.ParametricScoring = ScoringSummary{
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
			IsActive:             lo.ToPtr(s.IsActive),
		}
	}
	return out
}
