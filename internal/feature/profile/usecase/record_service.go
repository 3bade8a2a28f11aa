package usecase

import (
	"context"
	"errors"
	"fmt"

	"profile_backend/internal/feature/profile/domain/entity"
)

// RecordService provides list/detail/create/delete over the four profile record
// kinds plus the combined submission.
// Reads run on the pooled connection; every write runs inside its own unit of work.
type RecordService struct {
	repos Repositories
	uow   UnitOfWork
	cache ProfileCache
}

// NewRecordService はRecordServiceの新しいインスタンスを生成します。
// cacheがnilの場合、キャッシュなしで動作します。
func NewRecordService(repos Repositories, uow UnitOfWork, cache ProfileCache) *RecordService {
	if cache == nil {
		cache = nopProfileCache{}
	}
	return &RecordService{repos: repos, uow: uow, cache: cache}
}

// write runs fn in a unit of work and drops the cached profile once it has committed.
func (s *RecordService) write(ctx context.Context, fn func(r Repositories) error) error {
	if err := s.uow.Do(ctx, fn); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

// --- Company ---

func (s *RecordService) ListCompanies(ctx context.Context) ([]entity.Company, error) {
	return s.repos.Companies.List(ctx)
}

func (s *RecordService) GetCompany(ctx context.Context, id uint) (*entity.Company, error) {
	c, err := s.repos.Companies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("company %d: %w", id, err)
	}
	return c, nil
}

// CreateCompany は会社を1件作成し、生成されたIDを返します。
func (s *RecordService) CreateCompany(ctx context.Context, c entity.Company) (uint, error) {
	err := s.write(ctx, func(r Repositories) error {
		return r.Companies.Create(ctx, &c)
	})
	if err != nil {
		return 0, fmt.Errorf("create company: %w", err)
	}
	return c.ID, nil
}

// DeleteCompany は会社を物理削除します。依存レコードはDBのON DELETE CASCADEで削除されます。
func (s *RecordService) DeleteCompany(ctx context.Context, id uint) error {
	return s.write(ctx, func(r Repositories) error {
		if _, err := r.Companies.FindByID(ctx, id); err != nil {
			return fmt.Errorf("company %d: %w", id, err)
		}
		return r.Companies.Delete(ctx, id)
	})
}

// --- FundingValuation ---

func (s *RecordService) ListFundings(ctx context.Context) ([]entity.FundingValuation, error) {
	return s.repos.Fundings.List(ctx)
}

func (s *RecordService) GetFunding(ctx context.Context, id uint) (*entity.FundingValuation, error) {
	f, err := s.repos.Fundings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("funding %d: %w", id, err)
	}
	return f, nil
}

func (s *RecordService) CreateFunding(ctx context.Context, f entity.FundingValuation) (uint, error) {
	f = withFundingDefaults(f)
	if err := validateFunding(f); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(r Repositories) error {
		return r.Fundings.Create(ctx, &f)
	})
	if err != nil {
		return 0, fmt.Errorf("create funding valuation: %w", err)
	}
	return f.ID, nil
}

func (s *RecordService) DeleteFunding(ctx context.Context, id uint) error {
	return s.write(ctx, func(r Repositories) error {
		if _, err := r.Fundings.FindByID(ctx, id); err != nil {
			return fmt.Errorf("funding %d: %w", id, err)
		}
		return r.Fundings.Delete(ctx, id)
	})
}

// --- OwnershipStructure ---

func (s *RecordService) ListOwnerships(ctx context.Context) ([]entity.OwnershipStructure, error) {
	return s.repos.Ownerships.List(ctx)
}

func (s *RecordService) GetOwnership(ctx context.Context, id uint) (*entity.OwnershipStructure, error) {
	o, err := s.repos.Ownerships.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ownership %d: %w", id, err)
	}
	return o, nil
}

// CreateOwnerships は株主をまとめて作成します。
// 単一オブジェクトの場合も要素1のスライスとして渡されます。いずれかが失敗した場合は全件ロールバックします。
// 空の場合はトランザクションを開始せず空のIDを返します。
func (s *RecordService) CreateOwnerships(ctx context.Context, rows []entity.OwnershipStructure) ([]uint, error) {
	if len(rows) == 0 {
		return []uint{}, nil
	}
	for i, o := range rows {
		if err := validateOwnership(o); err != nil {
			return nil, fmt.Errorf("shareholder %d: %w", i, err)
		}
	}

	ids := make([]uint, 0, len(rows))
	err := s.write(ctx, func(r Repositories) error {
		for i := range rows {
			if err := r.Ownerships.Create(ctx, &rows[i]); err != nil {
				return fmt.Errorf("shareholder %d: %w", i, err)
			}
			ids = append(ids, rows[i].ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create ownership structure: %w", err)
	}
	return ids, nil
}

func (s *RecordService) DeleteOwnership(ctx context.Context, id uint) error {
	return s.write(ctx, func(r Repositories) error {
		if _, err := r.Ownerships.FindByID(ctx, id); err != nil {
			return fmt.Errorf("ownership %d: %w", id, err)
		}
		return r.Ownerships.Delete(ctx, id)
	})
}

// --- ParametricScoring ---

func (s *RecordService) ListScorings(ctx context.Context) ([]entity.ParametricScoring, error) {
	return s.repos.Scorings.List(ctx)
}

func (s *RecordService) GetScoring(ctx context.Context, id uint) (*entity.ParametricScoring, error) {
	sc, err := s.repos.Scorings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("scoring %d: %w", id, err)
	}
	return sc, nil
}

// CreateScoring は10項目すべてのスコアが指定されたスコアリングを作成します。
func (s *RecordService) CreateScoring(ctx context.Context, sc entity.ParametricScoring) (uint, error) {
	if err := validateScoring(sc, true); err != nil {
		return 0, err
	}
	err := s.write(ctx, func(r Repositories) error {
		return r.Scorings.Create(ctx, &sc)
	})
	if err != nil {
		return 0, fmt.Errorf("create parametric scoring: %w", err)
	}
	return sc.ID, nil
}

func (s *RecordService) DeleteScoring(ctx context.Context, id uint) error {
	return s.write(ctx, func(r Repositories) error {
		if _, err := r.Scorings.FindByID(ctx, id); err != nil {
			return fmt.Errorf("scoring %d: %w", id, err)
		}
		return r.Scorings.Delete(ctx, id)
	})
}

// optional maps ErrNotFound to a nil record so missing dependents are reported as nulls.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return v, err
}
