package adapters

import (
	"context"

	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/usecase"
)

// listAll は主キー昇順で全行を取得します。
func listAll[M any](ctx context.Context, db *gorm.DB, pk string) ([]M, error) {
	var rows []M
	if err := db.WithContext(ctx).Order(pk + " ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

func findByID[M any](ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	var m M
	if err := db.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

// findFirstByCompany は会社に紐づく行のうち主キーが最小のものを返します。
func findFirstByCompany[M any](ctx context.Context, db *gorm.DB, pk string, companyID uint) (*M, error) {
	var m M
	err := db.WithContext(ctx).
		Where("st_company_id = ?", companyID).
		Order(pk + " ASC").
		Take(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func create[M any](ctx context.Context, db *gorm.DB, m *M) error {
	return translateError(db.WithContext(ctx).Create(m).Error)
}

// deleteByID は行を物理削除します。該当行がない場合usecase.ErrNotFoundを返します。
func deleteByID[M any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
