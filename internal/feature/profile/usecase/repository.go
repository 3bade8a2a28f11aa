package usecase

import (
	"context"

	"profile_backend/internal/feature/profile/domain/entity"
)

// CompanyRepository はst_company_overviewテーブルの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CompanyRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	// FindByID は該当行がない場合ErrNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Company, error)
	// FindLatest はIDが最大の会社を返します。会社が1件もない場合ErrNotFoundを返します。
	FindLatest(ctx context.Context) (*entity.Company, error)
	// Create は行を挿入し、生成されたIDをc.IDに設定します。
	Create(ctx context.Context, c *entity.Company) error
	Delete(ctx context.Context, id uint) error
}

// FundingRepository はst_funding_valuationテーブルの永続化層を抽象化します。
type FundingRepository interface {
	List(ctx context.Context) ([]entity.FundingValuation, error)
	FindByID(ctx context.Context, id uint) (*entity.FundingValuation, error)
	// FindFirstByCompanyID は該当会社の最初の行を返します。
	FindFirstByCompanyID(ctx context.Context, companyID uint) (*entity.FundingValuation, error)
	Create(ctx context.Context, f *entity.FundingValuation) error
	Delete(ctx context.Context, id uint) error
}

// OwnershipRepository はst_ownership_structureテーブルの永続化層を抽象化します。
type OwnershipRepository interface {
	List(ctx context.Context) ([]entity.OwnershipStructure, error)
	FindByID(ctx context.Context, id uint) (*entity.OwnershipStructure, error)
	ListByCompanyID(ctx context.Context, companyID uint) ([]entity.OwnershipStructure, error)
	Create(ctx context.Context, o *entity.OwnershipStructure) error
	Delete(ctx context.Context, id uint) error
}

// ScoringRepository はst_parametric_scoringテーブルの永続化層を抽象化します。
type ScoringRepository interface {
	List(ctx context.Context) ([]entity.ParametricScoring, error)
	FindByID(ctx context.Context, id uint) (*entity.ParametricScoring, error)
	FindFirstByCompanyID(ctx context.Context, companyID uint) (*entity.ParametricScoring, error)
	Create(ctx context.Context, s *entity.ParametricScoring) error
	Delete(ctx context.Context, id uint) error
}

// Repositories groups the four repositories bound to the same connection or transaction.
type Repositories struct {
	Companies  CompanyRepository
	Fundings   FundingRepository
	Ownerships OwnershipRepository
	Scorings   ScoringRepository
}

// UnitOfWork runs fn inside one transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics. Repositories passed to fn must not escape it.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

// ProfileCache caches the combined latest profile.
// Implementations are best effort: failures are swallowed, never returned.
type ProfileCache interface {
	// GetLatest returns the cached profile and the cache generation observed,
	// which is returned on a miss as well.
	GetLatest(ctx context.Context) (*entity.CombinedProfile, uint64, bool)
	// SetLatest stores p for generation gen. If Invalidate ran after gen was
	// observed, p must never be served.
	SetLatest(ctx context.Context, gen uint64, p *entity.CombinedProfile)
	Invalidate(ctx context.Context)
}

type nopProfileCache struct{}

func (nopProfileCache) GetLatest(context.Context) (*entity.CombinedProfile, uint64, bool) {
	return nil, 0, false
}
func (nopProfileCache) SetLatest(context.Context, uint64, *entity.CombinedProfile) {}
func (nopProfileCache) Invalidate(context.Context)                                 {}
