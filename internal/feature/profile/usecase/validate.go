package usecase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"profile_backend/internal/feature/profile/domain/entity"
)

const (
	minScore      = 0
	maxScore      = 10
	minPercentage = 0
	maxPercentage = 100
)

// validateFunding は金額フィールドが10進数として解釈できることを検証します。
// 未指定（nil）の金額は許容します。
func validateFunding(f entity.FundingValuation) error {
	amounts := f.Amounts()
	names := make([]string, 0, len(amounts))
	for name := range amounts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := amounts[name]
		if v == nil {
			continue
		}
		if _, err := decimal.NewFromString(*v); err != nil {
			return fmt.Errorf("%w: %s must be a decimal number, got %q", ErrValidation, name, *v)
		}
	}
	return nil
}

// withFundingDefaults は未指定の通貨・監査IDにデフォルト値を設定します。
func withFundingDefaults(f entity.FundingValuation) entity.FundingValuation {
	if f.Currency == "" {
		f.Currency = entity.DefaultCurrency
	}
	if f.CreatedBy == 0 {
		f.CreatedBy = entity.DefaultAuditUserID
	}
	if f.ModifiedBy == 0 {
		f.ModifiedBy = entity.DefaultAuditUserID
	}
	return f
}

func validateOwnership(o entity.OwnershipStructure) error {
	if o.HoldingPercentage < minPercentage || o.HoldingPercentage > maxPercentage {
		return fmt.Errorf("%w: st_holding_percentage must be between %d and %d", ErrValidation, minPercentage, maxPercentage)
	}
	return nil
}

// validateScoring は指定されたスコアが範囲内であることを検証します。
// requireAll がtrueの場合、10項目すべての指定を必須とします。
func validateScoring(s entity.ParametricScoring, requireAll bool) error {
	for i, v := range s.Scores() {
		if v == nil {
			if requireAll {
				return fmt.Errorf("%w: score %d is required", ErrValidation, i+1)
			}
			continue
		}
		if *v < minScore || *v > maxScore {
			return fmt.Errorf("%w: scores must be between %d and %d, got %v", ErrValidation, minScore, maxScore, *v)
		}
	}
	return nil
}
