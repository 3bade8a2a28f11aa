package adapters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"profile_backend/internal/feature/profile/usecase"
)

// integrityViolationClass はPostgreSQLの整合性制約違反(SQLSTATE 23xxx)のクラスです。
const integrityViolationClass = "23"

// translateError はドライバ固有のエラーをusecaseのエラーに変換します。
// 該当しないエラーはそのまま返します。
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return fmt.Errorf("%w: %s", usecase.ErrConstraintViolation, pgErr.Message)
	}

	// テスト・ローカル実行用のSQLite
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %s", usecase.ErrConstraintViolation, liteErr.Error())
	}
	return err
}
