package poller_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"buybot/internal/core"
	"buybot/internal/ethereum"
	"buybot/internal/poller"
	"buybot/internal/poller/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Poller", func() {
	var (
		fakeChain     *fake.ChainSource
		fakeProcessor *fake.TransactionProcessor
		p             *poller.Poller
		ctx           context.Context
		cancel        context.CancelFunc
		done          chan error
	)

	callsFor := func(hash string) int {
		n := 0
		for i := 0; i < fakeProcessor.ProcessTransactionCallCount(); i++ {
			_, h := fakeProcessor.ProcessTransactionArgsForCall(i)
			if h == hash {
				n++
			}
		}
		return n
	}

	BeforeEach(func() {
		fakeChain = new(fake.ChainSource)
		fakeProcessor = new(fake.TransactionProcessor)

		fakeChain.LatestBlockNumberReturns(100, nil)
		fakeChain.BlockTransactionHashesReturns([]string{"0xa", "0xb", "0xc"}, nil)
		fakeProcessor.ProcessTransactionStub = func(_ context.Context, hash string) core.Detection {
			switch hash {
			case "0xa":
				return core.Detection{Status: core.StatusQualified, Purchase: &core.PurchaseRecord{TxHash: hash}}
			case "0xc":
				return core.Detection{Status: core.StatusLookupFailed, Err: ethereum.ErrLookupFailed}
			default:
				return core.Detection{Status: core.StatusNotQualified}
			}
		}

		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)
	})

	JustBeforeEach(func() {
		p = poller.NewPoller(zap.NewNop().Sugar(), fakeChain, fakeProcessor, 5*time.Millisecond, 5*time.Millisecond)
		go func() {
			done <- p.Run(ctx)
		}()
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive())
	})

	When("the head block is scanned repeatedly", func() {
		It("should analyse each hash once unless its lookup failed", func() {
			Eventually(func() int { return callsFor("0xc") }).Should(BeNumerically(">=", 3))

			Expect(callsFor("0xa")).To(Equal(1))
			Expect(callsFor("0xb")).To(Equal(1))

			_, number := fakeChain.BlockTransactionHashesArgsForCall(0)
			Expect(number).To(Equal(uint64(100)))
		})
	})

	When("the block fetch fails", func() {
		BeforeEach(func() {
			fakeChain.LatestBlockNumberReturnsOnCall(0, 0, ethereum.ErrLookupFailed)
			fakeChain.BlockTransactionHashesReturnsOnCall(0, nil, errors.New("rpc down"))
		})

		It("should back off and keep polling", func() {
			Eventually(fakeChain.BlockTransactionHashesCallCount).Should(BeNumerically(">=", 2))
			Eventually(func() int { return callsFor("0xa") }).Should(Equal(1))
		})
	})

	When("the context is cancelled", func() {
		It("should stop with the context error", func() {
			Eventually(fakeChain.LatestBlockNumberCallCount).Should(BeNumerically(">=", 1))
			cancel()

			var err error
			Eventually(done).Should(Receive(&err))
			Expect(err).To(MatchError(context.Canceled))

			// AfterEach drains done
			done <- err
		})
	})
})

var _ = Describe("Poller.Start", func() {
	var (
		fakeChain     *fake.ChainSource
		fakeProcessor *fake.TransactionProcessor
		ctx           context.Context
		cancel        context.CancelFunc
		started       chan struct{}
		finished      atomic.Bool
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainSource)
		fakeProcessor = new(fake.TransactionProcessor)
		started = make(chan struct{})
		finished.Store(false)

		fakeChain.LatestBlockNumberReturns(100, nil)
		fakeChain.BlockTransactionHashesReturns([]string{"0xa"}, nil)
		fakeProcessor.ProcessTransactionStub = func(ctx context.Context, _ string) core.Detection {
			close(started)
			<-ctx.Done()
			time.Sleep(20 * time.Millisecond)
			finished.Store(true)
			return core.Detection{Status: core.StatusLookupFailed, Err: ctx.Err()}
		}

		ctx, cancel = context.WithCancel(context.Background())
	})

	AfterEach(func() {
		cancel()
	})

	It("should only signal completion after the in-flight scan returned", func() {
		p := poller.NewPoller(zap.NewNop().Sugar(), fakeChain, fakeProcessor, time.Hour, time.Hour)
		done := p.Start(ctx)

		Eventually(started).Should(BeClosed())
		Consistently(done, 10*time.Millisecond).ShouldNot(Receive())
		cancel()

		var err error
		Eventually(done).Should(Receive(&err))
		Expect(err).To(MatchError(context.Canceled))
		Expect(finished.Load()).To(BeTrue())
	})
})
