package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

const (
	DefaultRankLimit = 10
	MaxRankLimit     = 25
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// VerifyRequest is a manual verification of one transaction.
type VerifyRequest struct {
	TxHash string `json:"txhash"`
}

func (v VerifyRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.TxHash,
			validation.Required,
			validation.Match(txHashRegex).Error("must be a 0x-prefixed 32 byte hex hash")),
	)
}

// RankRequest asks for the top Limit buyers.
type RankRequest struct {
	Limit int `json:"limit"`
}

func (r RankRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Limit,
			validation.Required,
			validation.Min(1),
			validation.Max(MaxRankLimit)),
	)
}
