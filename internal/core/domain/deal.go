package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrDealExists is returned by a store when the dealId is already taken.
var ErrDealExists = errors.New("deal already exists")

// Deal is a single foreign-exchange transaction record.
// DealID is the business key and is unique across all deals.
type Deal struct {
	ID           int64           `json:"id"`
	DealID       string          `json:"dealId"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    time.Time       `json:"timestamp"`
}

// AdmissionOutcome is the result of the save-or-reject decision.
type AdmissionOutcome string

const (
	AdmissionSaved     AdmissionOutcome = "SAVED"
	AdmissionDuplicate AdmissionOutcome = "DUPLICATE"
)

const (
	MsgDealSaved  = "Deal saved successfully"
	MsgDealExists = "Deal already exists"
)

// AdmissionResult carries the outcome and, on SAVED, the stored deal.
type AdmissionResult struct {
	Outcome AdmissionOutcome
	Deal    *Deal
}

// Message returns the client-facing text for the outcome.
func (r AdmissionResult) Message() string {
	if r.Outcome == AdmissionDuplicate {
		return MsgDealExists
	}
	return MsgDealSaved
}

// Saved reports whether the deal was persisted.
func (r AdmissionResult) Saved() bool {
	return r.Outcome == AdmissionSaved
}
