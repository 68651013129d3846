package poller

import (
	"context"
	"fmt"
	"time"

	"buybot/internal/core"

	"go.uber.org/zap"
)

const DefaultBackoff = 3 * time.Second

// Poller scans the chain head for purchases on a fixed interval. It alternates
// between waiting and scanning until its context is cancelled.
type Poller struct {
	logs      *zap.SugaredLogger
	chain     ChainSource
	processor TransactionProcessor
	interval  time.Duration
	backoff   time.Duration

	// hashes analysed in this process; never persisted
	processed map[string]struct{}
}

func NewPoller(logger *zap.SugaredLogger, chain ChainSource, processor TransactionProcessor, interval, backoff time.Duration) *Poller {
	return &Poller{
		logs:      logger,
		chain:     chain,
		processor: processor,
		interval:  interval,
		backoff:   backoff,
		processed: make(map[string]struct{}),
	}
}

// Run blocks until ctx is done and returns its error.
func (p *Poller) Run(ctx context.Context) error {
	p.logs.Infow("poll loop started", "interval", p.interval.String())

	for {
		wait := p.interval
		if err := p.scan(ctx); err != nil {
			p.logs.Errorw("poll iteration failed", "error", err, "backoff", p.backoff.String())
			wait = p.backoff
		}

		select {
		case <-ctx.Done():
			p.logs.Infow("poll loop stopped")
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// Start runs the loop in the background. The returned channel yields Run's
// error once the loop has fully stopped, including any in-flight scan.
func (p *Poller) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx)
	}()
	return done
}

func (p *Poller) scan(ctx context.Context) error {
	number, err := p.chain.LatestBlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("latest block: %w", err)
	}

	hashes, err := p.chain.BlockTransactionHashes(ctx, number)
	if err != nil {
		return fmt.Errorf("block %d: %w", number, err)
	}

	for _, hash := range hashes {
		if ctx.Err() != nil {
			return nil
		}
		if _, ok := p.processed[hash]; ok {
			continue
		}

		detection := p.processor.ProcessTransaction(ctx, hash)
		switch detection.Status {
		case core.StatusLookupFailed:
			p.logs.Warnw("skipping transaction",
				"tx_hash", hash,
				"block", number,
				"error", detection.Err)
			continue
		case core.StatusQualified:
			p.logs.Infow("purchase found by poll loop",
				"tx_hash", hash,
				"block", number)
		}
		p.processed[hash] = struct{}{}
	}
	return nil
}
