package adapters

import (
	"context"

	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/usecase"
)

// NewRepositories は同じ接続（またはトランザクション）に束縛された4つのリポジトリを返します。
func NewRepositories(db *gorm.DB) usecase.Repositories {
	return usecase.Repositories{
		Companies:  NewCompanyRepository(db),
		Fundings:   NewFundingRepository(db),
		Ownerships: NewOwnershipRepository(db),
		Scorings:   NewScoringRepository(db),
	}
}

// gormUnitOfWork はgorm.DB.Transactionによるusecase.UnitOfWorkの実装です。
type gormUnitOfWork struct {
	db *gorm.DB
}

var _ usecase.UnitOfWork = (*gormUnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *gormUnitOfWork {
	return &gormUnitOfWork{db: db}
}

// Do はfnをトランザクション内で実行します。
// fnがnilを返せばコミット、エラーを返すかpanicした場合はロールバックします。
func (u *gormUnitOfWork) Do(ctx context.Context, fn func(repos usecase.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Migrate はprofileの全テーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
