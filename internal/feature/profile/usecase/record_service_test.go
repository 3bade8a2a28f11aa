package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"profile_backend/internal/feature/profile/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore はテスト用のインメモリストアです。UnitOfWorkのロールバックはスナップショットの復元で再現します。
type memStore struct {
	nextID     uint
	companies  map[uint]entity.Company
	fundings   map[uint]entity.FundingValuation
	ownerships map[uint]entity.OwnershipStructure
	scorings   map[uint]entity.ParametricScoring

	// failOn が一致する種別のCreateは失敗します（"funding", "ownership", "scoring"）。
	failOn  string
	readErr error
}

func newMemStore() *memStore {
	return &memStore{
		companies:  map[uint]entity.Company{},
		fundings:   map[uint]entity.FundingValuation{},
		ownerships: map[uint]entity.OwnershipStructure{},
		scorings:   map[uint]entity.ParametricScoring{},
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) snapshot() *memStore {
	c := newMemStore()
	c.nextID = m.nextID
	for k, v := range m.companies {
		c.companies[k] = v
	}
	for k, v := range m.fundings {
		c.fundings[k] = v
	}
	for k, v := range m.ownerships {
		c.ownerships[k] = v
	}
	for k, v := range m.scorings {
		c.scorings[k] = v
	}
	return c
}

func (m *memStore) restore(s *memStore) {
	m.nextID, m.companies, m.fundings, m.ownerships, m.scorings =
		s.nextID, s.companies, s.fundings, s.ownerships, s.scorings
}

func (m *memStore) repos() Repositories {
	return Repositories{
		Companies:  memCompanies{m},
		Fundings:   memFundings{m},
		Ownerships: memOwnerships{m},
		Scorings:   memScorings{m},
	}
}

func sortedKeys[V any](mm map[uint]V) []uint {
	keys := make([]uint, 0, len(mm))
	for k := range mm {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type memCompanies struct{ m *memStore }

func (r memCompanies) List(ctx context.Context) ([]entity.Company, error) {
	if r.m.readErr != nil {
		return nil, r.m.readErr
	}
	var out []entity.Company
	for _, k := range sortedKeys(r.m.companies) {
		out = append(out, r.m.companies[k])
	}
	return out, nil
}

func (r memCompanies) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	c, ok := r.m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r memCompanies) FindLatest(ctx context.Context) (*entity.Company, error) {
	if r.m.readErr != nil {
		return nil, r.m.readErr
	}
	keys := sortedKeys(r.m.companies)
	if len(keys) == 0 {
		return nil, ErrNotFound
	}
	c := r.m.companies[keys[len(keys)-1]]
	return &c, nil
}

func (r memCompanies) Create(ctx context.Context, c *entity.Company) error {
	c.ID = r.m.id()
	r.m.companies[c.ID] = *c
	return nil
}

func (r memCompanies) Delete(ctx context.Context, id uint) error {
	delete(r.m.companies, id)
	return nil
}

type memFundings struct{ m *memStore }

func (r memFundings) List(ctx context.Context) ([]entity.FundingValuation, error) {
	var out []entity.FundingValuation
	for _, k := range sortedKeys(r.m.fundings) {
		out = append(out, r.m.fundings[k])
	}
	return out, nil
}

func (r memFundings) FindByID(ctx context.Context, id uint) (*entity.FundingValuation, error) {
	f, ok := r.m.fundings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (r memFundings) FindFirstByCompanyID(ctx context.Context, companyID uint) (*entity.FundingValuation, error) {
	for _, k := range sortedKeys(r.m.fundings) {
		if f := r.m.fundings[k]; f.CompanyID == companyID {
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

func (r memFundings) Create(ctx context.Context, f *entity.FundingValuation) error {
	if r.m.failOn == "funding" {
		return ErrConstraintViolation
	}
	if _, ok := r.m.companies[f.CompanyID]; !ok {
		return ErrConstraintViolation
	}
	f.ID = r.m.id()
	r.m.fundings[f.ID] = *f
	return nil
}

func (r memFundings) Delete(ctx context.Context, id uint) error {
	delete(r.m.fundings, id)
	return nil
}

type memOwnerships struct{ m *memStore }

func (r memOwnerships) List(ctx context.Context) ([]entity.OwnershipStructure, error) {
	var out []entity.OwnershipStructure
	for _, k := range sortedKeys(r.m.ownerships) {
		out = append(out, r.m.ownerships[k])
	}
	return out, nil
}

func (r memOwnerships) FindByID(ctx context.Context, id uint) (*entity.OwnershipStructure, error) {
	o, ok := r.m.ownerships[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r memOwnerships) ListByCompanyID(ctx context.Context, companyID uint) ([]entity.OwnershipStructure, error) {
	out := []entity.OwnershipStructure{}
	for _, k := range sortedKeys(r.m.ownerships) {
		if o := r.m.ownerships[k]; o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r memOwnerships) Create(ctx context.Context, o *entity.OwnershipStructure) error {
	if r.m.failOn == "ownership" {
		return ErrConstraintViolation
	}
	if _, ok := r.m.companies[o.CompanyID]; !ok {
		return ErrConstraintViolation
	}
	o.ID = r.m.id()
	r.m.ownerships[o.ID] = *o
	return nil
}

func (r memOwnerships) Delete(ctx context.Context, id uint) error {
	delete(r.m.ownerships, id)
	return nil
}

type memScorings struct{ m *memStore }

func (r memScorings) List(ctx context.Context) ([]entity.ParametricScoring, error) {
	var out []entity.ParametricScoring
	for _, k := range sortedKeys(r.m.scorings) {
		out = append(out, r.m.scorings[k])
	}
	return out, nil
}

func (r memScorings) FindByID(ctx context.Context, id uint) (*entity.ParametricScoring, error) {
	s, ok := r.m.scorings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r memScorings) FindFirstByCompanyID(ctx context.Context, companyID uint) (*entity.ParametricScoring, error) {
	for _, k := range sortedKeys(r.m.scorings) {
		if s := r.m.scorings[k]; s.CompanyID == companyID {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r memScorings) Create(ctx context.Context, s *entity.ParametricScoring) error {
	if r.m.failOn == "scoring" {
		return ErrConstraintViolation
	}
	if _, ok := r.m.companies[s.CompanyID]; !ok {
		return ErrConstraintViolation
	}
	s.ID = r.m.id()
	r.m.scorings[s.ID] = *s
	return nil
}

func (r memScorings) Delete(ctx context.Context, id uint) error {
	delete(r.m.scorings, id)
	return nil
}

// memUnitOfWork はエラー時にスナップショットへ戻すUnitOfWorkです。
type memUnitOfWork struct {
	m     *memStore
	calls int
}

func (u *memUnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	u.calls++
	snap := u.m.snapshot()
	if err := fn(u.m.repos()); err != nil {
		u.m.restore(snap)
		return err
	}
	return nil
}

// spyCache はProfileCacheの呼び出しを記録します。
// 世代が変わった後のSetLatestは無視します。
type spyCache struct {
	cached      *entity.CombinedProfile
	gen         uint64
	sets        int
	invalidated int
	// afterGet はGetLatestの直後に呼ばれます。並行する書き込みの再現に使います
	afterGet func()
}

func (c *spyCache) GetLatest(ctx context.Context) (*entity.CombinedProfile, uint64, bool) {
	p, gen := c.cached, c.gen
	if c.afterGet != nil {
		c.afterGet()
	}
	return p, gen, p != nil
}

func (c *spyCache) SetLatest(ctx context.Context, gen uint64, p *entity.CombinedProfile) {
	c.sets++
	if gen != c.gen {
		return
	}
	c.cached = p
}

func (c *spyCache) Invalidate(ctx context.Context) {
	c.invalidated++
	c.gen++
	c.cached = nil
}

func newTestService(t *testing.T) (*RecordService, *memStore, *spyCache) {
	t.Helper()
	m := newMemStore()
	cache := &spyCache{}
	return NewRecordService(m.repos(), &memUnitOfWork{m: m}, cache), m, cache
}

func fp(v float64) *float64 { return &v }
func sp(v string) *string   { return &v }

func sampleCompany(name string) entity.Company {
	return entity.Company{
		Name:                name,
		Description:         "payments platform",
		YearOfIncorporation: 2019,
		Country:             "JP",
		TotalFounders:       2,
		NoOfEmployees:       40,
		FounderNames:        "A. Sato, B. Tanaka",
		IndustryType:        "Fintech",
		Geography:           "APAC",
		IsActive:            true,
	}
}

func fullScoring(v float64) entity.ParametricScoring {
	return entity.ParametricScoring{
		MarketPotential: fp(v), ProductViability: fp(v), FinancialHealth: fp(v), TeamStrength: fp(v),
		CompetitiveAdvantage: fp(v), CustomerTraction: fp(v), RiskFactors: fp(v), ExitPotential: fp(v),
		Innovation: fp(v), Sustainability: fp(v), IsActive: true,
	}
}

func TestNewRecordService_NilCache(t *testing.T) {
	t.Parallel()

	m := newMemStore()
	svc := NewRecordService(m.repos(), &memUnitOfWork{m: m}, nil)

	require.NotNil(t, svc)
	_, ok := svc.cache.(nopProfileCache)
	assert.True(t, ok, "nil cache should fall back to the no-op cache")
}

func TestRecordService_CompanyRoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, cache := newTestService(t)
	ctx := context.Background()

	in := sampleCompany("Acme")
	id, err := svc.CreateCompany(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, 1, cache.invalidated, "write should invalidate the cache")

	got, err := svc.GetCompany(ctx, id)
	require.NoError(t, err)
	in.ID = id
	assert.Equal(t, in, *got)

	list, err := svc.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecordService_GetCompany_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	got, err := svc.GetCompany(context.Background(), 42)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, cache := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		del  func(ctx context.Context, id uint) error
	}{
		{"company", svc.DeleteCompany},
		{"funding", svc.DeleteFunding},
		{"ownership", svc.DeleteOwnership},
		{"scoring", svc.DeleteScoring},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.del(ctx, 999)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
	assert.Zero(t, cache.invalidated, "failed deletes must not invalidate the cache")
}

func TestRecordService_DeleteCompany(t *testing.T) {
	t.Parallel()

	svc, m, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCompany(ctx, id))
	assert.Empty(t, m.companies)

	_, err = svc.GetCompany(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordService_CreateFunding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		funding  func(companyID uint) entity.FundingValuation
		wantErr  error
		validate func(t *testing.T, f entity.FundingValuation)
	}{
		{
			name: "success: defaults applied",
			funding: func(companyID uint) entity.FundingValuation {
				return entity.FundingValuation{
					CompanyID: companyID, Stage: sp("Seed"), RaisedToDate: sp("1500000.50"),
					LastValuation: sp("8000000"), CurrentValuation: sp("12000000"),
					CapitalRequirements: sp("3000000"), IsActive: true,
				}
			},
			validate: func(t *testing.T, f entity.FundingValuation) {
				assert.Equal(t, "USD", f.Currency)
				assert.Equal(t, 1, f.CreatedBy)
				assert.Equal(t, 1, f.ModifiedBy)
				assert.Equal(t, "1500000.50", *f.RaisedToDate)
			},
		},
		{
			name: "success: explicit currency kept",
			funding: func(companyID uint) entity.FundingValuation {
				return entity.FundingValuation{
					CompanyID: companyID, Stage: sp("Series A"), RaisedToDate: sp("1"),
					LastValuation: sp("2"), CurrentValuation: sp("3"), CapitalRequirements: sp("4"),
					Currency: "JPY", CreatedBy: 7, ModifiedBy: 8,
				}
			},
			validate: func(t *testing.T, f entity.FundingValuation) {
				assert.Equal(t, "JPY", f.Currency)
				assert.Equal(t, 7, f.CreatedBy)
				assert.Equal(t, 8, f.ModifiedBy)
			},
		},
		{
			name: "failure: non-decimal amount",
			funding: func(companyID uint) entity.FundingValuation {
				return entity.FundingValuation{
					CompanyID: companyID, Stage: sp("Seed"), RaisedToDate: sp("a lot"),
					LastValuation: sp("2"), CurrentValuation: sp("3"), CapitalRequirements: sp("4"),
				}
			},
			wantErr: ErrValidation,
		},
		{
			name: "failure: thousands separators in amount",
			funding: func(companyID uint) entity.FundingValuation {
				return entity.FundingValuation{
					CompanyID: companyID, Stage: sp("Seed"), RaisedToDate: sp("1"),
					LastValuation: sp("1,000,000"), CurrentValuation: sp("3"), CapitalRequirements: sp("4"),
				}
			},
			wantErr: ErrValidation,
		},
		{
			name: "failure: empty string in amount",
			funding: func(companyID uint) entity.FundingValuation {
				return entity.FundingValuation{
					CompanyID: companyID, Stage: sp("Seed"), RaisedToDate: sp("1"),
					LastValuation: sp(""), CurrentValuation: sp("3"), CapitalRequirements: sp("4"),
				}
			},
			wantErr: ErrValidation,
		},
		{
			name: "failure: unknown company",
			funding: func(companyID uint) entity.FundingValuation {
				return entity.FundingValuation{
					CompanyID: companyID + 100, Stage: sp("Seed"), RaisedToDate: sp("1"),
					LastValuation: sp("2"), CurrentValuation: sp("3"), CapitalRequirements: sp("4"),
				}
			},
			wantErr: ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, m, _ := newTestService(t)
			ctx := context.Background()
			companyID, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
			require.NoError(t, err)

			id, err := svc.CreateFunding(ctx, tt.funding(companyID))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, m.fundings)
				return
			}
			require.NoError(t, err)
			got, err := svc.GetFunding(ctx, id)
			require.NoError(t, err)
			tt.validate(t, *got)
		})
	}
}

func TestRecordService_CreateOwnerships(t *testing.T) {
	t.Parallel()

	t.Run("bulk create N rows for the same company", func(t *testing.T) {
		svc, m, _ := newTestService(t)
		ctx := context.Background()
		companyID, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
		require.NoError(t, err)

		rows := []entity.OwnershipStructure{
			{CompanyID: companyID, Type: "Founder", ShareholderName: "A. Sato", HoldingPercentage: 40, IsActive: true},
			{CompanyID: companyID, Type: "Founder", ShareholderName: "B. Tanaka", HoldingPercentage: 35, IsActive: true},
			{CompanyID: companyID, Type: "Investor", ShareholderName: "Seed Fund", HoldingPercentage: 25, IsActive: true},
		}
		ids, err := svc.CreateOwnerships(ctx, rows)

		require.NoError(t, err)
		assert.Len(t, ids, 3)
		assert.Len(t, m.ownerships, 3)
		for _, o := range m.ownerships {
			assert.Equal(t, companyID, o.CompanyID)
		}
	})

	t.Run("empty input creates nothing", func(t *testing.T) {
		m := newMemStore()
		uow := &memUnitOfWork{m: m}
		cache := &spyCache{}
		svc := NewRecordService(m.repos(), uow, cache)

		ids, err := svc.CreateOwnerships(context.Background(), []entity.OwnershipStructure{})

		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
		assert.Empty(t, m.ownerships)
		assert.Zero(t, uow.calls, "no transaction is opened")
		assert.Zero(t, cache.invalidated)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		svc, m, _ := newTestService(t)
		ctx := context.Background()
		companyID, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
		require.NoError(t, err)

		_, err = svc.CreateOwnerships(ctx, []entity.OwnershipStructure{
			{CompanyID: companyID, Type: "Founder", ShareholderName: "A", HoldingPercentage: 120},
		})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, m.ownerships)
	})

	t.Run("one failing row rolls back the whole batch", func(t *testing.T) {
		svc, m, _ := newTestService(t)
		ctx := context.Background()
		companyID, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
		require.NoError(t, err)

		_, err = svc.CreateOwnerships(ctx, []entity.OwnershipStructure{
			{CompanyID: companyID, Type: "Founder", ShareholderName: "A", HoldingPercentage: 50},
			{CompanyID: companyID + 100, Type: "Founder", ShareholderName: "B", HoldingPercentage: 50},
		})

		assert.ErrorIs(t, err, ErrConstraintViolation)
		assert.Empty(t, m.ownerships)
	})
}

func TestRecordService_CreateScoring(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		ctx := context.Background()
		companyID, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
		require.NoError(t, err)

		in := fullScoring(8)
		in.CompanyID = companyID
		id, err := svc.CreateScoring(ctx, in)
		require.NoError(t, err)

		got, err := svc.GetScoring(ctx, id)
		require.NoError(t, err)
		c, err := got.Confidence()
		require.NoError(t, err)
		assert.InDelta(t, 80.0, c, 1e-9)
	})

	t.Run("missing score is rejected", func(t *testing.T) {
		svc, m, _ := newTestService(t)
		ctx := context.Background()
		companyID, err := svc.CreateCompany(ctx, sampleCompany("Acme"))
		require.NoError(t, err)

		in := fullScoring(8)
		in.CompanyID = companyID
		in.Innovation = nil
		_, err = svc.CreateScoring(ctx, in)

		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, m.scorings)
	})

	t.Run("score above the scale is rejected", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		in := fullScoring(8)
		in.RiskFactors = fp(11)

		_, err := svc.CreateScoring(context.Background(), in)

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestRecordService_SubmitCombined(t *testing.T) {
	t.Parallel()

	submission := func() CombinedSubmission {
		return CombinedSubmission{
			Company: sampleCompany("Acme"),
			Funding: entity.FundingValuation{Stage: sp("Seed"), RaisedToDate: sp("100000"), IsActive: true},
			Ownership: []entity.OwnershipStructure{
				{Type: "Founder", ShareholderName: "A. Sato", HoldingPercentage: 60, IsActive: true},
				{Type: "Investor", ShareholderName: "Seed Fund", HoldingPercentage: 40, IsActive: true},
			},
			Scoring: entity.ParametricScoring{MarketPotential: fp(7), IsActive: true},
		}
	}

	t.Run("success: all rows reference the new company", func(t *testing.T) {
		svc, m, cache := newTestService(t)

		id, err := svc.SubmitCombined(context.Background(), submission())

		require.NoError(t, err)
		assert.Len(t, m.companies, 1)
		assert.Len(t, m.fundings, 1)
		assert.Len(t, m.ownerships, 2)
		assert.Len(t, m.scorings, 1)
		for _, f := range m.fundings {
			assert.Equal(t, id, f.CompanyID)
			assert.Equal(t, "USD", f.Currency)
			assert.Nil(t, f.LastValuation)
		}
		for _, o := range m.ownerships {
			assert.Equal(t, id, o.CompanyID)
		}
		for _, s := range m.scorings {
			assert.Equal(t, id, s.CompanyID)
			assert.Nil(t, s.Innovation, "absent scores pass through as null")
		}
		assert.Equal(t, 1, cache.invalidated)
	})

	for _, failOn := range []string{"funding", "ownership", "scoring"} {
		t.Run("atomic: failure in "+failOn+" leaves no rows", func(t *testing.T) {
			svc, m, cache := newTestService(t)
			m.failOn = failOn

			_, err := svc.SubmitCombined(context.Background(), submission())

			assert.ErrorIs(t, err, ErrConstraintViolation)
			assert.Empty(t, m.companies)
			assert.Empty(t, m.fundings)
			assert.Empty(t, m.ownerships)
			assert.Empty(t, m.scorings)
			assert.Zero(t, cache.invalidated)
		})
	}

	t.Run("validation runs before the transaction", func(t *testing.T) {
		m := newMemStore()
		uow := &memUnitOfWork{m: m}
		svc := NewRecordService(m.repos(), uow, nil)

		sub := submission()
		sub.Scoring.TeamStrength = fp(-1)
		_, err := svc.SubmitCombined(context.Background(), sub)

		assert.ErrorIs(t, err, ErrValidation)
		assert.Zero(t, uow.calls, "unit of work must not start")
		assert.Empty(t, m.companies)
	})
}

func TestRecordService_LatestProfile(t *testing.T) {
	t.Parallel()

	t.Run("not found when no company exists", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.LatestProfile(context.Background())

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns the most recent company", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		ctx := context.Background()

		_, err := svc.SubmitCombined(ctx, CombinedSubmission{Company: sampleCompany("A")})
		require.NoError(t, err)
		idB, err := svc.SubmitCombined(ctx, CombinedSubmission{
			Company:   sampleCompany("B"),
			Ownership: []entity.OwnershipStructure{{Type: "Founder", ShareholderName: "B1", HoldingPercentage: 100}},
		})
		require.NoError(t, err)

		p, err := svc.LatestProfile(ctx)

		require.NoError(t, err)
		assert.Equal(t, idB, p.Company.ID)
		assert.Equal(t, "B", p.Company.Name)
		require.Len(t, p.Ownership, 1)
		assert.Equal(t, "B1", p.Ownership[0].ShareholderName)
	})

	t.Run("missing dependents are nil", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		ctx := context.Background()
		_, err := svc.CreateCompany(ctx, sampleCompany("Bare"))
		require.NoError(t, err)

		p, err := svc.LatestProfile(ctx)

		require.NoError(t, err)
		assert.Nil(t, p.Funding)
		assert.Nil(t, p.Scoring)
		assert.Empty(t, p.Ownership)
	})

	t.Run("served from cache after first read", func(t *testing.T) {
		svc, m, cache := newTestService(t)
		ctx := context.Background()
		_, err := svc.CreateCompany(ctx, sampleCompany("Cached"))
		require.NoError(t, err)

		first, err := svc.LatestProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets)

		m.readErr = errors.New("store down")
		second, err := svc.LatestProfile(ctx)
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("write during read does not leave a stale entry", func(t *testing.T) {
		svc, _, cache := newTestService(t)
		ctx := context.Background()
		_, err := svc.SubmitCombined(ctx, CombinedSubmission{Company: sampleCompany("A")})
		require.NoError(t, err)

		// 読み取りの途中でBが作成された場合
		cache.afterGet = func() {
			cache.afterGet = nil
			_, err := svc.SubmitCombined(ctx, CombinedSubmission{Company: sampleCompany("B")})
			require.NoError(t, err)
		}
		_, err = svc.LatestProfile(ctx)
		require.NoError(t, err)
		assert.Nil(t, cache.cached, "profile read before the write must not be cached")

		p, err := svc.LatestProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "B", p.Company.Name)
	})

	t.Run("store error propagates", func(t *testing.T) {
		svc, m, _ := newTestService(t)
		storeErr := errors.New("connection reset")
		m.readErr = storeErr

		_, err := svc.LatestProfile(context.Background())

		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
