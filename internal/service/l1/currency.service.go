package l1_service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// BaseCurrency is the single reporting currency everything is
	// normalized into.
	BaseCurrency = "GBP"
	// baseCurrencyMinorAlias is the pence quotation of the base currency.
	baseCurrencyMinorAlias = "GBp"
)

// FXRule maps a quote currency to the FX ticker that converts it to the
// base currency. Multiply controls which side of the pair the base sits on:
// GBPUSD=X quotes USD per GBP so USD amounts divide, EURGBP=X quotes GBP
// per EUR so EUR amounts multiply.
type FXRule struct {
	FXTicker string
	Multiply bool
}

type FXTable map[string]FXRule

func DefaultFXTable() FXTable {
	return FXTable{
		"USD": {FXTicker: "GBPUSD=X", Multiply: false},
		"EUR": {FXTicker: "EURGBP=X", Multiply: true},
	}
}

// ConversionError means a price could not be normalized into the base
// currency. Callers degrade to the raw price rather than aborting the run.
type ConversionError struct {
	Currency string
	Date     time.Time
	Reason   string
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s on %s: %s", e.Currency, e.Date.Format(time.DateOnly), e.Reason)
}

type CurrencyService interface {
	// Convert normalizes an amount quoted in the given currency into the
	// base currency. fxRate must be supplied for any currency that is not
	// the base or its minor-unit alias.
	Convert(amount decimal.Decimal, currency string, date time.Time, fxRate *decimal.Decimal) (decimal.Decimal, error)
	// FXTicker returns the FX ticker needed to convert the currency, if
	// the currency is known.
	FXTicker(currency string) (string, bool)
}

type currencyServiceHandler struct {
	fxTable FXTable
}

func NewCurrencyService(fxTable FXTable) CurrencyService {
	return currencyServiceHandler{fxTable: fxTable}
}

func (h currencyServiceHandler) Convert(amount decimal.Decimal, currency string, date time.Time, fxRate *decimal.Decimal) (decimal.Decimal, error) {
	if currency == BaseCurrency {
		return amount, nil
	}
	if currency == baseCurrencyMinorAlias {
		return amount.Div(decimal.NewFromInt(100)), nil
	}

	rule, ok := h.fxTable[currency]
	if !ok {
		return decimal.Zero, ConversionError{Currency: currency, Date: date, Reason: "unknown currency"}
	}
	if fxRate == nil {
		return decimal.Zero, ConversionError{Currency: currency, Date: date, Reason: fmt.Sprintf("no %s rate available", rule.FXTicker)}
	}
	if fxRate.IsZero() {
		return decimal.Zero, ConversionError{Currency: currency, Date: date, Reason: fmt.Sprintf("%s rate is zero", rule.FXTicker)}
	}

	if rule.Multiply {
		return amount.Mul(*fxRate), nil
	}
	return amount.Div(*fxRate), nil
}

func (h currencyServiceHandler) FXTicker(currency string) (string, bool) {
	rule, ok := h.fxTable[currency]
	if !ok {
		return "", false
	}
	return rule.FXTicker, true
}
