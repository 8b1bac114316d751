package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field names as they appear in the request payload.
const (
	FieldDealID       = "dealId"
	FieldFromCurrency = "fromCurrency"
	FieldToCurrency   = "toCurrency"
	FieldAmount       = "amount"
	FieldTimestamp    = "timestamp"
)

const (
	MsgDealIDRequired       = "Le dealId est obligatoire"
	MsgFromCurrencyRequired = "Source currency is required"
	MsgToCurrencyRequired   = "Target currency is required"
	MsgAmountRequired       = "Transaction amount is required"
	MsgAmountNotPositive    = "Transaction amount must be greater than 0"
	MsgTimestampInFuture    = "Deal date cannot be in the future"
)

// FieldErrors maps a payload field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid deal: " + strings.Join(parts, "; ")
}

// DealCandidate is an inbound deal before validation. Amount and Timestamp
// are pointers so that "missing" can be told apart from a zero value.
type DealCandidate struct {
	DealID       string
	FromCurrency string
	ToCurrency   string
	Amount       *decimal.Decimal
	Timestamp    *time.Time
}

// Validate checks the structural rules of a deal. It returns nil when the
// candidate is acceptable.
func (c DealCandidate) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if isBlank(c.DealID) {
		errs[FieldDealID] = MsgDealIDRequired
	}
	if isBlank(c.FromCurrency) {
		errs[FieldFromCurrency] = MsgFromCurrencyRequired
	}
	if isBlank(c.ToCurrency) {
		errs[FieldToCurrency] = MsgToCurrencyRequired
	}

	switch {
	case c.Amount == nil:
		errs[FieldAmount] = MsgAmountRequired
	case !c.Amount.IsPositive():
		errs[FieldAmount] = MsgAmountNotPositive
	}

	if c.Timestamp != nil && c.Timestamp.After(now) {
		errs[FieldTimestamp] = MsgTimestampInFuture
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToDeal builds the transient Deal. The timestamp defaults to now when the
// candidate carries none. Call Validate first.
func (c DealCandidate) ToDeal(now time.Time) *Deal {
	d := &Deal{
		DealID:       strings.TrimSpace(c.DealID),
		FromCurrency: strings.TrimSpace(c.FromCurrency),
		ToCurrency:   strings.TrimSpace(c.ToCurrency),
		Timestamp:    now,
	}
	if c.Amount != nil {
		d.Amount = *c.Amount
	}
	if c.Timestamp != nil {
		d.Timestamp = *c.Timestamp
	}
	return d
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
