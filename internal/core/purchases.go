package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"buybot/internal/repository"
	"buybot/internal/webhook"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var errEmptyLogData = errors.New("empty log data")

// PurchaseService detects qualifying token purchases and fans a detected
// purchase out to the store, the event stream and the webhook.
type PurchaseService struct {
	logs       *zap.SugaredLogger
	settings   Settings
	ethService EthereumService
	repo       Repository
	cards      CardRenderer
	notifier   Notifier
	publisher  EventPublisher
	now        func() time.Time
}

// NewPurchaseService wires the pipeline. notifier and publisher may be nil, in
// which case purchases are only detected and stored.
func NewPurchaseService(
	logger *zap.SugaredLogger,
	settings Settings,
	ethService EthereumService,
	repo Repository,
	cards CardRenderer,
	notifier Notifier,
	publisher EventPublisher,
) *PurchaseService {
	return &PurchaseService{
		logs:       logger,
		settings:   settings,
		ethService: ethService,
		repo:       repo,
		cards:      cards,
		notifier:   notifier,
		publisher:  publisher,
		now:        time.Now,
	}
}

// DetectPurchase fetches txHash and returns the first receipt log entry emitted
// by the token contract whose decoded amount reaches the threshold.
func (s *PurchaseService) DetectPurchase(ctx context.Context, txHash string) Detection {
	tx, err := s.ethService.FetchTransaction(ctx, txHash)
	if err != nil {
		return Detection{Status: StatusLookupFailed, Err: err}
	}

	for i, lg := range tx.Logs {
		if !strings.EqualFold(lg.Address, s.settings.TokenAddress) {
			continue
		}

		amount, err := decodeAmount(lg.Data)
		if err != nil {
			s.logs.Debugw("skipping undecodable log entry",
				"tx_hash", txHash,
				"log_index", i,
				"error", err)
			continue
		}

		if amount.LessThan(s.settings.MinAmount) {
			continue
		}

		record := &PurchaseRecord{
			TxHash: canonicalHash(tx.TransactionHash, txHash),
			Amount: amount,
		}
		if tx.From != "" {
			buyer := tx.From
			record.Buyer = &buyer
		}
		return Detection{Status: StatusQualified, Purchase: record}
	}

	return Detection{Status: StatusNotQualified}
}

// VerifyAndNotify runs a user requested verification. A qualified purchase is
// stored and announced; a transaction that does not qualify is announced as a
// failed verification. Store, render and delivery failures are logged and never
// change the returned detection.
func (s *PurchaseService) VerifyAndNotify(ctx context.Context, txHash string) Detection {
	detection := s.DetectPurchase(ctx, txHash)

	switch detection.Status {
	case StatusQualified:
		s.recordAndNotify(ctx, *detection.Purchase)
	case StatusNotQualified:
		s.logs.Infow("transaction did not qualify", "tx_hash", txHash)
		s.notify(ctx, webhook.Message{
			Title:       failedTitle,
			Description: fmt.Sprintf("Tx `%s` did not qualify.", txHash),
			Timestamp:   s.now().UTC(),
		})
	case StatusLookupFailed:
		s.logs.Errorw("could not verify transaction",
			"tx_hash", txHash,
			"error", detection.Err)
	}

	return detection
}

// ProcessTransaction is the poll loop path: only qualified purchases produce
// side effects.
func (s *PurchaseService) ProcessTransaction(ctx context.Context, txHash string) Detection {
	detection := s.DetectPurchase(ctx, txHash)
	if detection.Status == StatusQualified {
		s.recordAndNotify(ctx, *detection.Purchase)
	}
	return detection
}

// TopBuyers returns the leaderboard, highest total first.
func (s *PurchaseService) TopBuyers(ctx context.Context, limit int) ([]BuyerTotal, error) {
	totals, err := s.repo.TopBuyers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top buyers: %w", err)
	}

	buyers := make([]BuyerTotal, 0, len(totals))
	for _, t := range totals {
		name := unknownBuyer
		if t.Buyer != nil && *t.Buyer != "" {
			name = *t.Buyer
		}
		buyers = append(buyers, BuyerTotal{
			Buyer: name,
			Total: t.Total,
		})
	}
	return buyers, nil
}

func (s *PurchaseService) recordAndNotify(ctx context.Context, purchase PurchaseRecord) {
	s.logs.Infow("purchase detected",
		"tx_hash", purchase.TxHash,
		"buyer", purchase.BuyerName(),
		"amount", purchase.Amount.String())

	err := s.repo.InsertPurchase(ctx, repository.Purchase{
		TxHash: purchase.TxHash,
		Buyer:  purchase.Buyer,
		Amount: purchase.Amount,
	})
	if err != nil {
		s.logs.Errorw("failed to store purchase",
			"tx_hash", purchase.TxHash,
			"error", err)
	}

	s.announce(ctx, purchase)
	s.publish(ctx, purchase)
}

func (s *PurchaseService) announce(ctx context.Context, purchase PurchaseRecord) {
	if s.notifier == nil {
		return
	}

	buyer := purchase.BuyerName()
	amount := purchase.Amount.String()

	msg := webhook.Message{
		Title:       verifiedTitle,
		Description: s.cards.Describe(buyer, amount, purchase.TxHash),
		Timestamp:   s.now().UTC(),
	}

	image, err := s.cards.Render(buyer, amount, purchase.TxHash)
	if err != nil {
		s.logs.Errorw("card unavailable, sending without image",
			"tx_hash", purchase.TxHash,
			"error", err)
	} else {
		msg.Image = image
		msg.ImageName = cardFileName
	}

	s.notify(ctx, msg)
}

// publish runs after the webhook so a stalled broker never delays the announcement.
func (s *PurchaseService) publish(ctx context.Context, purchase PurchaseRecord) {
	if s.publisher == nil {
		return
	}

	timeout := s.settings.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, purchase); err != nil {
		s.logs.Errorw("failed to publish purchase event",
			"tx_hash", purchase.TxHash,
			"error", err)
	}
}

func (s *PurchaseService) notify(ctx context.Context, msg webhook.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logs.Errorw("failed to deliver webhook message",
			"title", msg.Title,
			"error", err)
	}
}

// decodeAmount reads data as a big-endian unsigned integer in hex and scales
// it down by the token decimals.
func decodeAmount(data string) (decimal.Decimal, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(data, "0x"), "0X")
	if raw == "" {
		return decimal.Decimal{}, errEmptyLogData
	}

	value, ok := new(big.Int).SetString(raw, 16)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("invalid hex amount %q", data)
	}
	return decimal.NewFromBigInt(value, -tokenDecimals), nil
}

func canonicalHash(fetched, requested string) string {
	if fetched != "" {
		return fetched
	}
	return requested
}
