package adapters

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/usecase"
)

const scoringPK = "st_parametric_scoring_id"

type scoringGorm struct {
	db *gorm.DB
}

var _ usecase.ScoringRepository = (*scoringGorm)(nil)

func NewScoringRepository(db *gorm.DB) *scoringGorm {
	return &scoringGorm{db: db}
}

func (r *scoringGorm) List(ctx context.Context) ([]entity.ParametricScoring, error) {
	rows, err := listAll[ParametricScoringModel](ctx, r.db, scoringPK)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(m ParametricScoringModel, _ int) entity.ParametricScoring { return m.toEntity() }), nil
}

func (r *scoringGorm) FindByID(ctx context.Context, id uint) (*entity.ParametricScoring, error) {
	m, err := findByID[ParametricScoringModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(m.toEntity()), nil
}

func (r *scoringGorm) FindFirstByCompanyID(ctx context.Context, companyID uint) (*entity.ParametricScoring, error) {
	m, err := findFirstByCompany[ParametricScoringModel](ctx, r.db, scoringPK, companyID)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(m.toEntity()), nil
}

func (r *scoringGorm) Create(ctx context.Context, s *entity.ParametricScoring) error {
	m := scoringToModel(*s)
	if err := create(ctx, r.db, &m); err != nil {
		return err
	}
	s.ID = m.ID
	return nil
}

func (r *scoringGorm) Delete(ctx context.Context, id uint) error {
	return deleteByID[ParametricScoringModel](ctx, r.db, id)
}
