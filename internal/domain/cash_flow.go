package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFlowEvent is a row from the external cash ledger. NetFlow is signed:
// positive means money entered the portfolio.
type CashFlowEvent struct {
	CashFlowEventID uuid.UUID
	Date            time.Time
	Activity        string
	NetFlow         decimal.Decimal
}

// activity classes that represent money crossing the portfolio boundary
var externalFlowActivities = []string{
	"PAYMENT RECEIVED",
	"WITHDRAWAL",
	"ISA TRANSFER IN",
}

// IsExternalFlow reports whether the event moves money in or out of the
// portfolio, as opposed to internal activity like fees or dividends.
func (e CashFlowEvent) IsExternalFlow() bool {
	upper := strings.ToUpper(e.Activity)
	for _, a := range externalFlowActivities {
		if strings.Contains(upper, a) {
			return true
		}
	}
	return false
}
