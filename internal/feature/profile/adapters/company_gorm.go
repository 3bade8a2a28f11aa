package adapters

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/domain/entity"
	"profile_backend/internal/feature/profile/usecase"
)

const companyPK = "st_company_id"

// companyGorm はCompanyRepositoryのGORM実装です。
type companyGorm struct {
	db *gorm.DB
}

// companyGormがCompanyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CompanyRepository = (*companyGorm)(nil)

// NewCompanyRepository は指定されたgorm.DB接続（またはトランザクション）でリポジトリを生成します。
func NewCompanyRepository(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

func (r *companyGorm) List(ctx context.Context) ([]entity.Company, error) {
	rows, err := listAll[CompanyModel](ctx, r.db, companyPK)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(m CompanyModel, _ int) entity.Company { return m.toEntity() }), nil
}

func (r *companyGorm) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	m, err := findByID[CompanyModel](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(m.toEntity()), nil
}

// FindLatest は採番IDが最大の会社を返します。
func (r *companyGorm) FindLatest(ctx context.Context) (*entity.Company, error) {
	var m CompanyModel
	if err := r.db.WithContext(ctx).Order(companyPK + " DESC").Take(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return lo.ToPtr(m.toEntity()), nil
}

// Create は行を挿入し、INSERT時に採番されたIDをc.IDに設定します。
func (r *companyGorm) Create(ctx context.Context, c *entity.Company) error {
	m := companyToModel(*c)
	if err := create(ctx, r.db, &m); err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

// Delete は会社を削除します。依存行はON DELETE CASCADEで削除されます。
func (r *companyGorm) Delete(ctx context.Context, id uint) error {
	return deleteByID[CompanyModel](ctx, r.db, id)
}
