package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	purchasesTable     = "purchases"
	txHashColumn       = "txhash"
	buyerColumn        = "buyer"
	amountColumn       = "amount"
	defaultBuyersLimit = 10
)

// Purchase is one row of the purchases table. Rows are never updated.
type Purchase struct {
	ID        uint            `gorm:"primaryKey"`
	TxHash    string          `gorm:"column:txhash;type:text;uniqueIndex"`
	Buyer     *string         `gorm:"column:buyer;type:text"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric"`
	CreatedAt time.Time       `gorm:"column:created_at;type:timestamp;default:now();autoCreateTime:false;<-:false"`
}

func (Purchase) TableName() string {
	return purchasesTable
}

// BuyerTotal is one leaderboard row. Buyer is nil for purchases stored without a sender.
type BuyerTotal struct {
	Buyer *string         `gorm:"column:buyer"`
	Total decimal.Decimal `gorm:"column:total"`
}
