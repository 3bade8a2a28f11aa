package usecase

import (
	"context"
	"fmt"

	"profile_backend/internal/feature/profile/domain/entity"
)

// CombinedSubmission is a full profile submitted in one request.
// CompanyID fields of the dependents are ignored and replaced by the generated company ID.
type CombinedSubmission struct {
	Company   entity.Company
	Funding   entity.FundingValuation
	Ownership []entity.OwnershipStructure
	Scoring   entity.ParametricScoring
}

// SubmitCombined creates the company and its three dependent sections in one transaction.
// Validation runs before the transaction begins; any failure inside it rolls back every row.
func (s *RecordService) SubmitCombined(ctx context.Context, sub CombinedSubmission) (uint, error) {
	sub.Funding = withFundingDefaults(sub.Funding)
	if err := validateFunding(sub.Funding); err != nil {
		return 0, fmt.Errorf("funding_valuation: %w", err)
	}
	for i, o := range sub.Ownership {
		if err := validateOwnership(o); err != nil {
			return 0, fmt.Errorf("ownership_structure[%d]: %w", i, err)
		}
	}
	if err := validateScoring(sub.Scoring, false); err != nil {
		return 0, fmt.Errorf("parametric_scoring: %w", err)
	}

	company := sub.Company
	err := s.write(ctx, func(r Repositories) error {
		// INSERT ... RETURNING で採番済みIDを取得（コミット前）
		if err := r.Companies.Create(ctx, &company); err != nil {
			return fmt.Errorf("company_overview: %w", err)
		}

		funding := sub.Funding
		funding.CompanyID = company.ID
		if err := r.Fundings.Create(ctx, &funding); err != nil {
			return fmt.Errorf("funding_valuation: %w", err)
		}

		for i := range sub.Ownership {
			o := sub.Ownership[i]
			o.CompanyID = company.ID
			if err := r.Ownerships.Create(ctx, &o); err != nil {
				return fmt.Errorf("ownership_structure[%d]: %w", i, err)
			}
		}

		scoring := sub.Scoring
		scoring.CompanyID = company.ID
		if err := r.Scorings.Create(ctx, &scoring); err != nil {
			return fmt.Errorf("parametric_scoring: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("combined submission: %w", err)
	}
	return company.ID, nil
}

// LatestProfile returns the most recently created company (highest ID) with its
// first funding row, all ownership rows and first scoring row.
// It returns ErrNotFound only when no company exists.
func (s *RecordService) LatestProfile(ctx context.Context) (*entity.CombinedProfile, error) {
	// 世代はDB読み取り前に取得する。読み取り中に書き込みがあれば古い値は保存されても参照されない
	cached, gen, ok := s.cache.GetLatest(ctx)
	if ok {
		return cached, nil
	}

	company, err := s.repos.Companies.FindLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest company: %w", err)
	}

	funding, err := optional(s.repos.Fundings.FindFirstByCompanyID(ctx, company.ID))
	if err != nil {
		return nil, fmt.Errorf("funding for company %d: %w", company.ID, err)
	}
	ownership, err := s.repos.Ownerships.ListByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("ownership for company %d: %w", company.ID, err)
	}
	scoring, err := optional(s.repos.Scorings.FindFirstByCompanyID(ctx, company.ID))
	if err != nil {
		return nil, fmt.Errorf("scoring for company %d: %w", company.ID, err)
	}

	p := &entity.CombinedProfile{
		Company:   *company,
		Funding:   funding,
		Ownership: ownership,
		Scoring:   scoring,
	}
	s.cache.SetLatest(ctx, gen, p)
	return p, nil
}
