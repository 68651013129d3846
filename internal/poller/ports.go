package poller

import (
	"context"

	"buybot/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainSource . ChainSource
type ChainSource interface {
	LatestBlockNumber(ctx context.Context) (uint64, error)
	BlockTransactionHashes(ctx context.Context, number uint64) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name TransactionProcessor . TransactionProcessor
type TransactionProcessor interface {
	ProcessTransaction(ctx context.Context, txHash string) core.Detection
}
