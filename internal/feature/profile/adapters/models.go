// Package adapters はprofileフィーチャーのGORMリポジトリ実装を提供します。
package adapters

import (
	"profile_backend/internal/feature/profile/domain/entity"
)

// CompanyModel はst_company_overviewテーブルの行です。
type CompanyModel struct {
	ID                  uint   `gorm:"column:st_company_id;primaryKey"`
	Name                string `gorm:"column:st_company_name;size:255;not null"`
	Description         string `gorm:"column:st_company_description;type:text"`
	YearOfIncorporation int    `gorm:"column:st_year_of_incorporation"`
	Country             string `gorm:"column:st_country;size:100"`
	TotalFounders       int    `gorm:"column:st_total_founders"`
	NoOfEmployees       int    `gorm:"column:st_no_of_employees"`
	FounderNames        string `gorm:"column:st_founder_names;type:text"`
	IndustryType        string `gorm:"column:st_industry_type;size:100"`
	Geography           string `gorm:"column:st_geography;size:100"`
	// default:true を付けるとGORMがfalseをデフォルト値で上書きするため、not nullのみ指定する
	IsActive bool `gorm:"column:is_active;not null"`
}

func (CompanyModel) TableName() string { return "st_company_overview" }

// FundingValuationModel はst_funding_valuationテーブルの行です。
// 金額は文字列のまま保存し、精度を落とさない。
type FundingValuationModel struct {
	ID                  uint          `gorm:"column:st_funding_id;primaryKey"`
	CompanyID           uint          `gorm:"column:st_company_id;not null;index"`
	Company             *CompanyModel `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE"`
	Stage               *string       `gorm:"column:st_stage;size:100"`
	RaisedToDate        *string       `gorm:"column:st_raised_to_date;size:64"`
	LastValuation       *string       `gorm:"column:st_last_valuation;size:64"`
	CurrentValuation    *string       `gorm:"column:st_current_valuation;size:64"`
	CapitalRequirements *string       `gorm:"column:st_capital_requirements;size:64"`
	Currency            string        `gorm:"column:st_currency;size:10;not null"`
	CreatedBy           int           `gorm:"column:st_created_by;not null"`
	ModifiedBy          int           `gorm:"column:st_modified_by;not null"`
	IsActive            bool          `gorm:"column:is_active;not null"`
}

func (FundingValuationModel) TableName() string { return "st_funding_valuation" }

// OwnershipStructureModel はst_ownership_structureテーブルの行です。
type OwnershipStructureModel struct {
	ID                uint          `gorm:"column:st_ownership_id;primaryKey"`
	CompanyID         uint          `gorm:"column:st_company_id;not null;index"`
	Company           *CompanyModel `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE"`
	Type              string        `gorm:"column:st_type;size:100"`
	ShareholderName   string        `gorm:"column:st_shareholder_name;size:255"`
	HoldingPercentage float64       `gorm:"column:st_holding_percentage"`
	IsActive          bool          `gorm:"column:is_active;not null"`
}

func (OwnershipStructureModel) TableName() string { return "st_ownership_structure" }

// ParametricScoringModel はst_parametric_scoringテーブルの行です。
type ParametricScoringModel struct {
	ID                   uint          `gorm:"column:st_parametric_scoring_id;primaryKey"`
	CompanyID            uint          `gorm:"column:st_company_id;not null;index"`
	Company              *CompanyModel `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE"`
	MarketPotential      *float64      `gorm:"column:st_market_potential"`
	ProductViability     *float64      `gorm:"column:st_product_viability"`
	FinancialHealth      *float64      `gorm:"column:st_financial_health"`
	TeamStrength         *float64      `gorm:"column:st_team_strength"`
	CompetitiveAdvantage *float64      `gorm:"column:st_competitive_advantage"`
	CustomerTraction     *float64      `gorm:"column:st_customer_traction"`
	RiskFactors          *float64      `gorm:"column:st_risk_factors"`
	ExitPotential        *float64      `gorm:"column:st_exit_potential"`
	Innovation           *float64      `gorm:"column:st_innovation"`
	Sustainability       *float64      `gorm:"column:st_sustainability"`
	IsActive             bool          `gorm:"column:is_active;not null"`
}

func (ParametricScoringModel) TableName() string { return "st_parametric_scoring" }

// Models returns every table model in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&CompanyModel{},
		&FundingValuationModel{},
		&OwnershipStructureModel{},
		&ParametricScoringModel{},
	}
}

func companyToModel(e entity.Company) CompanyModel {
	return CompanyModel{
		ID:                  e.ID,
		Name:                e.Name,
		Description:         e.Description,
		YearOfIncorporation: e.YearOfIncorporation,
		Country:             e.Country,
		TotalFounders:       e.TotalFounders,
		NoOfEmployees:       e.NoOfEmployees,
		FounderNames:        e.FounderNames,
		IndustryType:        e.IndustryType,
		Geography:           e.Geography,
		IsActive:            e.IsActive,
	}
}

func (m CompanyModel) toEntity() entity.Company {
	return entity.Company{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		YearOfIncorporation: m.YearOfIncorporation,
		Country:             m.Country,
		TotalFounders:       m.TotalFounders,
		NoOfEmployees:       m.NoOfEmployees,
		FounderNames:        m.FounderNames,
		IndustryType:        m.IndustryType,
		Geography:           m.Geography,
		IsActive:            m.IsActive,
	}
}

func fundingToModel(e entity.FundingValuation) FundingValuationModel {
	return FundingValuationModel{
		ID:                  e.ID,
		CompanyID:           e.CompanyID,
		Stage:               e.Stage,
		RaisedToDate:        e.RaisedToDate,
		LastValuation:       e.LastValuation,
		CurrentValuation:    e.CurrentValuation,
		CapitalRequirements: e.CapitalRequirements,
		Currency:            e.Currency,
		CreatedBy:           e.CreatedBy,
		ModifiedBy:          e.ModifiedBy,
		IsActive:            e.IsActive,
	}
}

func (m FundingValuationModel) toEntity() entity.FundingValuation {
	return entity.FundingValuation{
		ID:                  m.ID,
		CompanyID:           m.CompanyID,
		Stage:               m.Stage,
		RaisedToDate:        m.RaisedToDate,
		LastValuation:       m.LastValuation,
		CurrentValuation:    m.CurrentValuation,
		CapitalRequirements: m.CapitalRequirements,
		Currency:            m.Currency,
		CreatedBy:           m.CreatedBy,
		ModifiedBy:          m.ModifiedBy,
		IsActive:            m.IsActive,
	}
}

func ownershipToModel(e entity.OwnershipStructure) OwnershipStructureModel {
	return OwnershipStructureModel{
		ID:                e.ID,
		CompanyID:         e.CompanyID,
		Type:              e.Type,
		ShareholderName:   e.ShareholderName,
		HoldingPercentage: e.HoldingPercentage,
		IsActive:          e.IsActive,
	}
}

func (m OwnershipStructureModel) toEntity() entity.OwnershipStructure {
	return entity.OwnershipStructure{
		ID:                m.ID,
		CompanyID:         m.CompanyID,
		Type:              m.Type,
		ShareholderName:   m.ShareholderName,
		HoldingPercentage: m.HoldingPercentage,
		IsActive:          m.IsActive,
	}
}

func scoringToModel(e entity.ParametricScoring) ParametricScoringModel {
	return ParametricScoringModel{
		ID:                   e.ID,
		CompanyID:            e.CompanyID,
		MarketPotential:      e.MarketPotential,
		ProductViability:     e.ProductViability,
		FinancialHealth:      e.FinancialHealth,
		TeamStrength:         e.TeamStrength,
		CompetitiveAdvantage: e.CompetitiveAdvantage,
		CustomerTraction:     e.CustomerTraction,
		RiskFactors:          e.RiskFactors,
		ExitPotential:        e.ExitPotential,
		Innovation:           e.Innovation,
		Sustainability:       e.Sustainability,
		IsActive:             e.IsActive,
	}
}

func (m ParametricScoringModel) toEntity() entity.ParametricScoring {
	return entity.ParametricScoring{
		ID:                   m.ID,
		CompanyID:            m.CompanyID,
		MarketPotential:      m.MarketPotential,
		ProductViability:     m.ProductViability,
		FinancialHealth:      m.FinancialHealth,
		TeamStrength:         m.TeamStrength,
		CompetitiveAdvantage: m.CompetitiveAdvantage,
		CustomerTraction:     m.CustomerTraction,
		RiskFactors:          m.RiskFactors,
		ExitPotential:        m.ExitPotential,
		Innovation:           m.Innovation,
		Sustainability:       m.Sustainability,
		IsActive:             m.IsActive,
	}
}
