package adapters

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/usecase"
)

const fundingPK = "st_funding_id"

type fundingGorm struct {
	db *gorm.DB
}

var _ usecase.FundingRepository = (*fundingGorm)(nil)

func NewFundingRepository(db *gorm.DB) *fundingGorm {
	return &fundingGorm{db: db}
}

func (r *fundingGorm) List(ctx context.Context) ([]entity.FundingValuation, error) {
	rows, err := listAll[FundingValuationModel](ctx, r.db, fundingPK)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(m FundingValuationModel, _ int) entity.FundingValuation { return m.toEntity() }), nil
}

func (r *fundingGorm) FindByID(ctx context.Context, id uint) (*entity.FundingValuation, error) {
	m, err := findByID[FundingValuationModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(m.toEntity()), nil
}

func (r *fundingGorm) FindFirstByCompanyID(ctx context.Context, companyID uint) (*entity.FundingValuation, error) {
	m, err := findFirstByCompany[FundingValuationModel](ctx, r.db, fundingPK, companyID)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(m.toEntity()), nil
}

func (r *fundingGorm) Create(ctx context.Context, f *entity.FundingValuation) error {
	m := fundingToModel(*f)
	if err := create(ctx, r.db, &m); err != nil {
		return err
	}
	f.ID = m.ID
	return nil
}

func (r *fundingGorm) Delete(ctx context.Context, id uint) error {
	return deleteByID[FundingValuationModel](ctx, r.db, id)
}
