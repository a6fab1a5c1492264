package entities

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidPackageID       = errors.New("invalid package id")
	ErrInvalidPackagePrice    = errors.New("invalid package price")
	ErrInvalidPackageCurrency = errors.New("invalid package currency")
	ErrInvalidPhotoNumber     = errors.New("invalid printed photo number")
)

var currencyCodePattern = regexp.MustCompile(`^[a-z]{3}$`)

// ProductPackage is a catalog entry. It is configured outside the system and
// never mutated by customers.
//
// Monetary representation:
//   - PriceCents is expressed in minor units as if the currency had two
//     decimals; pricing.ProcessorAmount converts it for the processor.
//   - PrintedPhotoNumber is the baseline print count; 0 means digital only.
type ProductPackage struct {
	ID                 string   `json:"id" yaml:"id" dynamodbav:"id"`
	Name               string   `json:"name" yaml:"name" dynamodbav:"name"`
	PriceCents         int64    `json:"priceCents" yaml:"priceCents" dynamodbav:"price_cents"`
	Currency           string   `json:"currency" yaml:"currency" dynamodbav:"currency"`
	PrintedPhotoNumber int      `json:"printedPhotoNumber" yaml:"printedPhotoNumber" dynamodbav:"printed_photo_number"`
	IsPickUp           bool     `json:"isPickUp" yaml:"isPickUp" dynamodbav:"is_pick_up"`
	IsPopular          bool     `json:"isPopular" yaml:"isPopular" dynamodbav:"is_popular"`
	Description        []string `json:"description" yaml:"description" dynamodbav:"description"`
}

// IsDigitalOnly reports whether the package includes no prints.
func (p ProductPackage) IsDigitalOnly() bool {
	return p.PrintedPhotoNumber == 0
}

func (p ProductPackage) Validate() error {
	if p.ID == "" {
		return ErrInvalidPackageID
	}
	if p.PriceCents < 0 {
		return fmt.Errorf("%w: package %s has price %d", ErrInvalidPackagePrice, p.ID, p.PriceCents)
	}
	if !currencyCodePattern.MatchString(p.Currency) {
		return fmt.Errorf("%w: package %s has currency %q", ErrInvalidPackageCurrency, p.ID, p.Currency)
	}
	if p.PrintedPhotoNumber < 0 {
		return fmt.Errorf("%w: package %s has %d prints", ErrInvalidPhotoNumber, p.ID, p.PrintedPhotoNumber)
	}
	return nil
}

// IsValidCurrencyCode reports whether code is a lowercase three-letter code.
func IsValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}
