package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/raghavmehta/expense-ledger/internal/domain/error"
)

// MoneyUtils contains utility functions for handling monetary values

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// maxAmountInCents bounds amounts well below int64 overflow so sums stay safe
const maxAmountInCents = int64(1_000_000_000_000_000)

// ParseSignedAmount validates a signed decimal string and converts it to cents.
// The sign encodes the direction: positive is income, negative is expense.
// Returns the amount as int64 cents and an error if validation fails.
func ParseSignedAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	cents := d.Shift(MaxDecimalPlaces)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	if cents.Abs().GreaterThan(decimal.NewFromInt(maxAmountInCents)) {
		return 0, errs.ErrAmountOverflow
	}

	return cents.IntPart(), nil
}

// CentsToDisplay converts cents to a display string with exactly 2 decimal places.
// For example:
// - 1015 becomes "10.15"
// - -5000 becomes "-50.00"
func CentsToDisplay(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
}

// CentsToCompact converts cents to a display string with trailing zeros trimmed,
// matching how a raw numeric amount reads on a rendered entry.
// For example:
// - 5000 becomes "50"
// - 5050 becomes "50.5"
func CentsToCompact(cents int64) string {
	s := decimal.NewFromInt(cents).Shift(-MaxDecimalPlaces).StringFixed(MaxDecimalPlaces)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
