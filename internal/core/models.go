package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status int

const (
	StatusNotQualified Status = iota
	StatusQualified
	StatusLookupFailed
)

func (s Status) String() string {
	switch s {
	case StatusQualified:
		return "qualified"
	case StatusLookupFailed:
		return "lookup_failed"
	default:
		return "not_qualified"
	}
}

// PurchaseRecord is a verified token purchase. CreatedAt is assigned by the store.
type PurchaseRecord struct {
	TxHash    string          `json:"tx_hash"`
	Buyer     *string         `json:"buyer"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

// BuyerName returns the buyer address or "unknown" when the sender was not resolved.
func (p PurchaseRecord) BuyerName() string {
	if p.Buyer == nil || *p.Buyer == "" {
		return unknownBuyer
	}
	return *p.Buyer
}

// Detection is the outcome of analysing one transaction. Purchase is set only
// for StatusQualified and Err only for StatusLookupFailed.
type Detection struct {
	Status   Status
	Purchase *PurchaseRecord
	Err      error
}

type BuyerTotal struct {
	Buyer string          `json:"buyer"`
	Total decimal.Decimal `json:"total"`
}

// Settings holds the detection parameters read once at startup.
type Settings struct {
	TokenAddress string
	MinAmount    decimal.Decimal

	// PublishTimeout bounds each event stream write; zero means defaultPublishTimeout.
	PublishTimeout time.Duration
}

const (
	unknownBuyer = "unknown"

	// tokenDecimals is the fixed scale of the raw integer amount in a log entry.
	tokenDecimals = 18

	verifiedTitle = "Purchase Verified ✅"
	failedTitle   = "Verification Failed ❌"
	cardFileName  = "card.png"

	defaultPublishTimeout = 15 * time.Second
)
