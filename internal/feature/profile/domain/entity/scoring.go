package entity

import "profile_backend/internal/feature/profile/domain/confidence"

// ParametricScoring holds ten independent sub-scores for a company.
// Scores are nullable because a combined submission may omit them.
type ParametricScoring struct {
	ID                   uint
	CompanyID            uint
	MarketPotential      *float64
	ProductViability     *float64
	FinancialHealth      *float64
	TeamStrength         *float64
	CompetitiveAdvantage *float64
	CustomerTraction     *float64
	RiskFactors          *float64
	ExitPotential        *float64
	Innovation           *float64
	Sustainability       *float64
	IsActive             bool
}

// Scores returns the ten sub-scores in a fixed order.
func (s ParametricScoring) Scores() [confidence.ScoreCount]*float64 {
	return [confidence.ScoreCount]*float64{
		s.MarketPotential,
		s.ProductViability,
		s.FinancialHealth,
		s.TeamStrength,
		s.CompetitiveAdvantage,
		s.CustomerTraction,
		s.RiskFactors,
		s.ExitPotential,
		s.Innovation,
		s.Sustainability,
	}
}

// Confidence derives the confidence percentage. It is computed on read and never stored.
func (s ParametricScoring) Confidence() (float64, error) {
	return confidence.Calculate(s.Scores())
}
