package preferences

import (
	"fmt"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

// ValidateCrossFields checks rules spanning two or more fields. Every check
// runs independently: a single call can return results against several
// fields. Range violations are reported against the "max" field; dependency
// violations against the field that must be supplied.
func ValidateCrossFields(in *PreferencesInput) []*validation.Error {
	var results []*validation.Error

	// Age range
	if in.MinAge != nil && in.MaxAge != nil {
		if *in.MinAge >= *in.MaxAge {
			results = append(results, validation.NewError("maxAge",
				"Maximum age must be greater than minimum age",
				"INVALID_AGE_RANGE", validation.PriorityHigh))
		} else if *in.MaxAge-*in.MinAge > AgeRangeMaxSpan {
			results = append(results, validation.NewWarning("maxAge",
				fmt.Sprintf("An age range wider than %d years may dilute match quality", AgeRangeMaxSpan),
				"AGE_RANGE_TOO_WIDE", validation.PriorityMedium))
		}
	}

	// Height range
	if in.MinHeight != nil && in.MaxHeight != nil {
		if *in.MinHeight >= *in.MaxHeight {
			results = append(results, validation.NewError("maxHeight",
				"Maximum height must be greater than minimum height",
				"INVALID_HEIGHT_RANGE", validation.PriorityMedium))
		} else if *in.MaxHeight-*in.MinHeight > HeightRangeMaxSpan {
			results = append(results, validation.NewWarning("maxHeight",
				fmt.Sprintf("A height range wider than %d cm may dilute match quality", HeightRangeMaxSpan),
				"HEIGHT_RANGE_TOO_WIDE", validation.PriorityLow))
		}
	}

	// Income range
	if in.MinIncome != nil && in.MaxIncome != nil {
		if *in.MinIncome >= *in.MaxIncome {
			results = append(results, validation.NewError("maxIncome",
				"Maximum income must be greater than minimum income",
				"INVALID_INCOME_RANGE", validation.PriorityMedium))
		} else if *in.MinIncome > 0 && *in.MaxIncome / *in.MinIncome > IncomeRangeMaxMultiplier {
			results = append(results, validation.NewWarning("maxIncome",
				fmt.Sprintf("An income range spanning more than %dx may dilute match quality", IncomeRangeMaxMultiplier),
				"INCOME_RANGE_TOO_WIDE", validation.PriorityLow))
		}
	}

	// Currency is required whenever either income bound is set
	if (in.MinIncome != nil || in.MaxIncome != nil) && isEmpty(strValue(in.Currency)) {
		results = append(results, validation.NewError("currency",
			"Select a currency for your income range",
			"MISSING_CURRENCY", validation.PriorityHigh))
	}

	// A search radius needs a location to be relative to
	if in.LocationPreferenceRadius != nil && isEmpty(strValue(in.LocationPreference)) {
		results = append(results, validation.NewError("locationPreference",
			"Choose a location before setting a search radius",
			"MISSING_LOCATION", validation.PriorityHigh))
	}

	return results
}
