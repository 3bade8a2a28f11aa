package adapters

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/usecase"
)

const ownershipPK = "st_ownership_id"

type ownershipGorm struct {
	db *gorm.DB
}

var _ usecase.OwnershipRepository = (*ownershipGorm)(nil)

func NewOwnershipRepository(db *gorm.DB) *ownershipGorm {
	return &ownershipGorm{db: db}
}

func (r *ownershipGorm) List(ctx context.Context) ([]entity.OwnershipStructure, error) {
	rows, err := listAll[OwnershipStructureModel](ctx, r.db, ownershipPK)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(m OwnershipStructureModel, _ int) entity.OwnershipStructure { return m.toEntity() }), nil
}

func (r *ownershipGorm) FindByID(ctx context.Context, id uint) (*entity.OwnershipStructure, error) {
	m, err := findByID[OwnershipStructureModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(m.toEntity()), nil
}

// ListByCompanyID は会社の株主を主キー昇順で返します。該当なしの場合は空スライスです。
func (r *ownershipGorm) ListByCompanyID(ctx context.Context, companyID uint) ([]entity.OwnershipStructure, error) {
	var rows []OwnershipStructureModel
	err := r.db.WithContext(ctx).
		Where("st_company_id = ?", companyID).
		Order(ownershipPK + " ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return lo.Map(rows, func(m OwnershipStructureModel, _ int) entity.OwnershipStructure { return m.toEntity() }), nil
}

func (r *ownershipGorm) Create(ctx context.Context, o *entity.OwnershipStructure) error {
	m := ownershipToModel(*o)
	if err := create(ctx, r.db, &m); err != nil {
		return err
	}
	o.ID = m.ID
	return nil
}

func (r *ownershipGorm) Delete(ctx context.Context, id uint) error {
	return deleteByID[OwnershipStructureModel](ctx, r.db, id)
}
