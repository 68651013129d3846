package core_test

import (
	"context"
	"errors"
	"time"

	"buybot/internal/core"
	"buybot/internal/core/fake"
	"buybot/internal/ethereum"
	"buybot/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	tokenAddress = "0xe509B5232AbCa3c7f15672366ceAFF8E7285bA50"
	otherAddress = "0x1111111111111111111111111111111111111111"
	txHash       = "0x9f3c1a2b4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8"
	buyerAddress = "0xBuyer0000000000000000000000000000000000"

	// 2 * 10^18
	twoTokens = "0x0000000000000000000000000000000000000000000000001bc16d674ec80000"
	// 7 * 10^18
	sevenTokens = "0x0000000000000000000000000000000000000000000000006124fee993bc0000"
)

var _ = Describe("PurchaseService", func() {
	var (
		fakeEth       *fake.EthereumService
		fakeRepo      *fake.Repository
		fakeCards     *fake.CardRenderer
		fakeNotifier  *fake.Notifier
		fakePublisher *fake.EventPublisher
		settings      core.Settings
		ctx           context.Context
		fakeErr       error
		transaction   *ethereum.Transaction

		service *core.PurchaseService
	)

	BeforeEach(func() {
		fakeEth = new(fake.EthereumService)
		fakeRepo = new(fake.Repository)
		fakeCards = new(fake.CardRenderer)
		fakeNotifier = new(fake.Notifier)
		fakePublisher = new(fake.EventPublisher)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		settings = core.Settings{
			TokenAddress: tokenAddress,
			MinAmount:    decimal.NewFromInt(1),
		}

		transaction = &ethereum.Transaction{
			TransactionHash: txHash,
			From:            buyerAddress,
			Logs: []ethereum.Log{
				{Address: tokenAddress, Data: twoTokens},
			},
		}
		fakeEth.FetchTransactionStub = func(context.Context, string) (*ethereum.Transaction, error) {
			return transaction, nil
		}

		fakeCards.DescribeReturns("description")
		fakeCards.RenderReturns([]byte("png"), nil)
	})

	JustBeforeEach(func() {
		service = core.NewPurchaseService(zap.NewNop().Sugar(), settings, fakeEth, fakeRepo, fakeCards, fakeNotifier, fakePublisher)
	})

	Describe("DetectPurchase", func() {
		var detection core.Detection

		JustBeforeEach(func() {
			detection = service.DetectPurchase(ctx, txHash)
		})

		When("a token log entry clears the threshold", func() {
			It("should return the purchase", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(detection.Err).NotTo(HaveOccurred())
				Expect(detection.Purchase).NotTo(BeNil())
				Expect(detection.Purchase.TxHash).To(Equal(txHash))
				Expect(*detection.Purchase.Buyer).To(Equal(buyerAddress))
				Expect(detection.Purchase.Amount.Equal(decimal.NewFromInt(2))).To(BeTrue())

				Expect(fakeEth.FetchTransactionCallCount()).To(Equal(1))
				_, hash := fakeEth.FetchTransactionArgsForCall(0)
				Expect(hash).To(Equal(txHash))
			})
		})

		When("the threshold is above the amount", func() {
			BeforeEach(func() {
				settings.MinAmount = decimal.NewFromInt(5)
			})

			It("should not qualify", func() {
				Expect(detection.Status).To(Equal(core.StatusNotQualified))
				Expect(detection.Purchase).To(BeNil())
			})
		})

		When("the amount equals the threshold", func() {
			BeforeEach(func() {
				settings.MinAmount = decimal.NewFromInt(2)
			})

			It("should qualify", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
			})
		})

		When("the token address differs only in case", func() {
			BeforeEach(func() {
				transaction.Logs[0].Address = "0xE509B5232ABCA3C7F15672366CEAFF8E7285BA50"
			})

			It("should still match", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
			})
		})

		When("no log entry comes from the token contract", func() {
			BeforeEach(func() {
				transaction.Logs = []ethereum.Log{
					{Address: otherAddress, Data: sevenTokens},
				}
			})

			It("should not qualify", func() {
				Expect(detection.Status).To(Equal(core.StatusNotQualified))
			})
		})

		When("several token entries qualify", func() {
			BeforeEach(func() {
				transaction.Logs = []ethereum.Log{
					{Address: otherAddress, Data: sevenTokens},
					{Address: tokenAddress, Data: "0x"},
					{Address: tokenAddress, Data: "0xzz"},
					{Address: tokenAddress, Data: twoTokens},
					{Address: tokenAddress, Data: sevenTokens},
				}
			})

			It("should return the first decodable one in receipt order", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(detection.Purchase.Amount.Equal(decimal.NewFromInt(2))).To(BeTrue())
			})
		})

		When("an earlier token entry is below the threshold", func() {
			BeforeEach(func() {
				settings.MinAmount = decimal.NewFromInt(5)
				transaction.Logs = []ethereum.Log{
					{Address: tokenAddress, Data: twoTokens},
					{Address: tokenAddress, Data: sevenTokens},
				}
			})

			It("should keep scanning", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(detection.Purchase.Amount.Equal(decimal.NewFromInt(7))).To(BeTrue())
			})
		})

		When("the sender is unknown", func() {
			BeforeEach(func() {
				transaction.From = ""
			})

			It("should leave the buyer empty", func() {
				Expect(detection.Purchase.Buyer).To(BeNil())
				Expect(detection.Purchase.BuyerName()).To(Equal("unknown"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeEth.FetchTransactionStub = nil
				fakeEth.FetchTransactionReturns(nil, ethereum.ErrLookupFailed)
			})

			It("should report a lookup failure", func() {
				Expect(detection.Status).To(Equal(core.StatusLookupFailed))
				Expect(detection.Err).To(MatchError(ethereum.ErrLookupFailed))
				Expect(detection.Purchase).To(BeNil())
			})
		})
	})

	Describe("VerifyAndNotify", func() {
		var detection core.Detection

		JustBeforeEach(func() {
			detection = service.VerifyAndNotify(ctx, txHash)
		})

		When("the purchase qualifies", func() {
			It("should store, publish and announce it", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))

				Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(1))
				_, stored := fakeRepo.InsertPurchaseArgsForCall(0)
				Expect(stored.TxHash).To(Equal(txHash))
				Expect(*stored.Buyer).To(Equal(buyerAddress))
				Expect(stored.Amount.Equal(decimal.NewFromInt(2))).To(BeTrue())

				Expect(fakePublisher.PublishCallCount()).To(Equal(1))
				_, event := fakePublisher.PublishArgsForCall(0)
				Expect(event.TxHash).To(Equal(txHash))

				Expect(fakeCards.RenderCallCount()).To(Equal(1))
				buyer, amount, hash := fakeCards.RenderArgsForCall(0)
				Expect(buyer).To(Equal(buyerAddress))
				Expect(amount).To(Equal("2"))
				Expect(hash).To(Equal(txHash))

				Expect(fakeNotifier.SendCallCount()).To(Equal(1))
				_, msg := fakeNotifier.SendArgsForCall(0)
				Expect(msg.Title).To(Equal("Purchase Verified ✅"))
				Expect(msg.Description).To(Equal("description"))
				Expect(msg.Image).To(Equal([]byte("png")))
				Expect(msg.ImageName).To(Equal("card.png"))
				Expect(msg.Timestamp.IsZero()).To(BeFalse())
			})
		})

		When("storing fails", func() {
			BeforeEach(func() {
				fakeRepo.InsertPurchaseReturns(repository.ErrPersistence)
			})

			It("should still announce the purchase", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(fakeNotifier.SendCallCount()).To(Equal(1))
			})
		})

		When("rendering fails", func() {
			BeforeEach(func() {
				fakeCards.RenderReturns(nil, fakeErr)
			})

			It("should announce without an image", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(fakeNotifier.SendCallCount()).To(Equal(1))
				_, msg := fakeNotifier.SendArgsForCall(0)
				Expect(msg.Image).To(BeNil())
				Expect(msg.ImageName).To(BeEmpty())
			})
		})

		When("delivery and publishing fail", func() {
			BeforeEach(func() {
				fakeNotifier.SendReturns(fakeErr)
				fakePublisher.PublishReturns(fakeErr)
			})

			It("should still report the purchase as qualified", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(1))
			})
		})

		When("the event stream stalls", func() {
			var (
				sentBeforePublish int
				hadDeadline       bool
			)

			BeforeEach(func() {
				settings.PublishTimeout = 50 * time.Millisecond
				fakePublisher.PublishStub = func(ctx context.Context, _ core.PurchaseRecord) error {
					sentBeforePublish = fakeNotifier.SendCallCount()
					_, hadDeadline = ctx.Deadline()
					<-ctx.Done()
					return ctx.Err()
				}
			})

			It("should announce first and give up on the publish after the timeout", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(sentBeforePublish).To(Equal(1))
				Expect(hadDeadline).To(BeTrue())
				Expect(fakePublisher.PublishCallCount()).To(Equal(1))
			})
		})

		When("the transaction does not qualify", func() {
			BeforeEach(func() {
				settings.MinAmount = decimal.NewFromInt(5)
			})

			It("should announce the failed verification only", func() {
				Expect(detection.Status).To(Equal(core.StatusNotQualified))
				Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(0))
				Expect(fakeCards.RenderCallCount()).To(Equal(0))

				Expect(fakeNotifier.SendCallCount()).To(Equal(1))
				_, msg := fakeNotifier.SendArgsForCall(0)
				Expect(msg.Title).To(Equal("Verification Failed ❌"))
				Expect(msg.Description).To(Equal("Tx `" + txHash + "` did not qualify."))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeEth.FetchTransactionStub = nil
				fakeEth.FetchTransactionReturns(nil, ethereum.ErrLookupFailed)
			})

			It("should not store anything", func() {
				Expect(detection.Status).To(Equal(core.StatusLookupFailed))
				Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(0))
				Expect(fakePublisher.PublishCallCount()).To(Equal(0))
				Expect(fakeNotifier.SendCallCount()).To(Equal(0))
			})
		})
	})

	Describe("VerifyAndNotify without a webhook or event stream", func() {
		var detection core.Detection

		JustBeforeEach(func() {
			service = core.NewPurchaseService(zap.NewNop().Sugar(), settings, fakeEth, fakeRepo, fakeCards, nil, nil)
			detection = service.VerifyAndNotify(ctx, txHash)
		})

		It("should store the purchase and report success", func() {
			Expect(detection.Status).To(Equal(core.StatusQualified))
			Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(1))
			Expect(fakeCards.RenderCallCount()).To(Equal(0))
		})
	})

	Describe("ProcessTransaction", func() {
		var detection core.Detection

		JustBeforeEach(func() {
			detection = service.ProcessTransaction(ctx, txHash)
		})

		When("the purchase qualifies", func() {
			It("should store and announce it", func() {
				Expect(detection.Status).To(Equal(core.StatusQualified))
				Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(1))
				Expect(fakeNotifier.SendCallCount()).To(Equal(1))
			})
		})

		When("the transaction does not qualify", func() {
			BeforeEach(func() {
				transaction.Logs = nil
			})

			It("should stay silent", func() {
				Expect(detection.Status).To(Equal(core.StatusNotQualified))
				Expect(fakeRepo.InsertPurchaseCallCount()).To(Equal(0))
				Expect(fakeNotifier.SendCallCount()).To(Equal(0))
			})
		})
	})

	Describe("TopBuyers", func() {
		var (
			buyers []core.BuyerTotal
			err    error
		)

		BeforeEach(func() {
			buyerB := "buyerB"
			fakeRepo.TopBuyersReturns([]repository.BuyerTotal{
				{Buyer: &buyerB, Total: decimal.NewFromInt(10)},
				{Buyer: nil, Total: decimal.NewFromInt(7)},
			}, nil)
		})

		JustBeforeEach(func() {
			buyers, err = service.TopBuyers(ctx, 2)
		})

		It("should map store rows to buyer totals", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(buyers).To(HaveLen(2))
			Expect(buyers[0].Buyer).To(Equal("buyerB"))
			Expect(buyers[0].Total.Equal(decimal.NewFromInt(10))).To(BeTrue())
			Expect(buyers[1].Buyer).To(Equal("unknown"))

			_, limit := fakeRepo.TopBuyersArgsForCall(0)
			Expect(limit).To(Equal(2))
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.TopBuyersReturns(nil, repository.ErrPersistence)
			})

			It("should return the persistence error", func() {
				Expect(err).To(MatchError(repository.ErrPersistence))
				Expect(buyers).To(BeNil())
			})
		})
	})
})
