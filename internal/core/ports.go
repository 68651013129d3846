package core

import (
	"context"

	"buybot/internal/ethereum"
	"buybot/internal/repository"
	"buybot/internal/webhook"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchTransaction(ctx context.Context, hash string) (*ethereum.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	InsertPurchase(ctx context.Context, purchase repository.Purchase) error
	TopBuyers(ctx context.Context, limit int) ([]repository.BuyerTotal, error)
}

//counterfeiter:generate -o fake -fake-name CardRenderer . CardRenderer
type CardRenderer interface {
	Render(buyer, amount, txHash string) ([]byte, error)
	Describe(buyer, amount, txHash string) string
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Send(ctx context.Context, msg webhook.Message) error
}

//counterfeiter:generate -o fake -fake-name EventPublisher . EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, purchase PurchaseRecord) error
}
