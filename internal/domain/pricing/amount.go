// Package pricing derives charge amounts from catalog packages.
//
// Prices are configured in "cents", i.e. as if every currency had two
// decimals. The processor expects the smallest unit of the actual currency,
// so amounts are rescaled per currency exponent:
//
//	currency  amountInCents  processorAmount
//	usd       150            150
//	jpy       15000          150
//	kwd       150            1500
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"photo_studio/internal/domain/entities"
)

// MaxAdditionalUnits caps the extra prints a single order may add.
const MaxAdditionalUnits = 100

var (
	ErrNegativeAdditionalUnits = errors.New("additional photo number must be >= 0")
	ErrTooManyAdditionalUnits  = fmt.Errorf("additional photo number must be <= %d", MaxAdditionalUnits)
	ErrAmountOverflow          = errors.New("order amount out of range")
)

var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

var threeDecimalCurrencies = map[string]struct{}{
	"bhd": {}, "jod": {}, "kwd": {}, "omr": {}, "tnd": {},
}

// Quote is the outcome of the Amount Calculator.
type Quote struct {
	PackageID               string
	Currency                string
	TotalAmountInMinorUnits int64
	ProcessorAmount         int64
	TotalUnitCount          int
	// Rounded is set when a zero-decimal conversion dropped a fraction.
	Rounded bool
}

// Compute prices pkg with additional extra prints. Digital-only packages
// ignore additional units.
func Compute(pkg entities.ProductPackage, additional int, perUnitPriceInCents int64) (Quote, error) {
	if additional < 0 {
		return Quote{}, fmt.Errorf("%w: got %d", ErrNegativeAdditionalUnits, additional)
	}

	total := pkg.PriceCents
	units := 0
	if !pkg.IsDigitalOnly() {
		if additional > MaxAdditionalUnits {
			return Quote{}, fmt.Errorf("%w: got %d", ErrTooManyAdditionalUnits, additional)
		}
		if perUnitPriceInCents < 0 || (perUnitPriceInCents > 0 && int64(additional) > (math.MaxInt64-pkg.PriceCents)/perUnitPriceInCents) {
			return Quote{}, fmt.Errorf("%w: package %s with %d additional units", ErrAmountOverflow, pkg.ID, additional)
		}
		total = pkg.PriceCents + int64(additional)*perUnitPriceInCents
		units = pkg.PrintedPhotoNumber + additional
	}

	// Leaves room for the three-decimal x10 scale.
	if total > math.MaxInt64/10 {
		return Quote{}, fmt.Errorf("%w: package %s totals %d", ErrAmountOverflow, pkg.ID, total)
	}

	amount, rounded := ConvertToProcessorAmount(total, pkg.Currency)
	return Quote{
		PackageID:               pkg.ID,
		Currency:                pkg.Currency,
		TotalAmountInMinorUnits: total,
		ProcessorAmount:         amount,
		TotalUnitCount:          units,
		Rounded:                 rounded,
	}, nil
}

// CurrencyExponent returns the number of decimals the processor uses for
// currency.
func CurrencyExponent(currency string) int {
	c := strings.ToLower(currency)
	if _, ok := zeroDecimalCurrencies[c]; ok {
		return 0
	}
	if _, ok := threeDecimalCurrencies[c]; ok {
		return 3
	}
	return 2
}

// ProcessorAmount converts cents into the processor-native integer amount.
func ProcessorAmount(amountInCents int64, currency string) int64 {
	amount, _ := ConvertToProcessorAmount(amountInCents, currency)
	return amount
}

// ConvertToProcessorAmount is ProcessorAmount that also reports whether a
// fraction was rounded away. Zero-decimal currencies round half up; the
// other scales are exact.
func ConvertToProcessorAmount(amountInCents int64, currency string) (int64, bool) {
	switch CurrencyExponent(currency) {
	case 0:
		rounded := amountInCents%100 != 0
		if amountInCents < 0 {
			return -((-amountInCents + 50) / 100), rounded
		}
		return (amountInCents + 50) / 100, rounded
	case 3:
		return amountInCents * 10, false
	default:
		return amountInCents, false
	}
}

// MajorUnits converts a processor-native amount into a decimal value of the
// currency's major unit.
func MajorUnits(processorAmount int64, currency string) float64 {
	v := float64(processorAmount)
	for i := 0; i < CurrencyExponent(currency); i++ {
		v /= 10
	}
	return v
}

// FromMajorUnits is the inverse of MajorUnits, rounded to the nearest unit.
func FromMajorUnits(major float64, currency string) int64 {
	v := major
	for i := 0; i < CurrencyExponent(currency); i++ {
		v *= 10
	}
	if v < 0 {
		return int64(v - 0.5)
	}
	return int64(v + 0.5)
}

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"jpy": "¥",
}

// FormatPrice renders an amount in cents for display, e.g. 999 usd as
// "$9.99".
func FormatPrice(amountInCents int64, currency string) string {
	c := strings.ToLower(currency)
	exp := CurrencyExponent(c)
	major := float64(amountInCents) / 100

	number := fmt.Sprintf("%.*f", exp, major)
	if sym, ok := currencySymbols[c]; ok {
		return sym + number
	}
	return strings.ToUpper(c) + " " + number
}
