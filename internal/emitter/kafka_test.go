package emitter_test

import (
	"context"
	"encoding/json"
	"errors"

	"buybot/internal/core"
	"buybot/internal/emitter"
	"buybot/internal/emitter/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("KafkaEmitter", func() {
	var (
		fakeWriter *fake.MessageWriter
		kafkaEmit  *emitter.KafkaEmitter
		purchase   core.PurchaseRecord
		err        error
	)

	BeforeEach(func() {
		fakeWriter = new(fake.MessageWriter)
		kafkaEmit = emitter.NewEmitter(zap.NewNop().Sugar(), fakeWriter)

		buyer := "0xbuyer"
		purchase = core.PurchaseRecord{
			TxHash: "0xhash",
			Buyer:  &buyer,
			Amount: decimal.RequireFromString("2.5"),
		}
	})

	Describe("Publish", func() {
		JustBeforeEach(func() {
			err = kafkaEmit.Publish(context.Background(), purchase)
		})

		It("should write one message keyed by hash", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeWriter.WriteMessagesCallCount()).To(Equal(1))

			_, msgs := fakeWriter.WriteMessagesArgsForCall(0)
			Expect(msgs).To(HaveLen(1))
			Expect(string(msgs[0].Key)).To(Equal("0xhash"))

			var event emitter.PurchaseEvent
			Expect(json.Unmarshal(msgs[0].Value, &event)).To(Succeed())
			Expect(event.TxHash).To(Equal("0xhash"))
			Expect(event.Buyer).To(Equal("0xbuyer"))
			Expect(event.Amount).To(Equal("2.5"))
			Expect(event.DetectedAt.IsZero()).To(BeFalse())
		})

		When("the writer fails", func() {
			BeforeEach(func() {
				fakeWriter.WriteMessagesReturns(errors.New("broker down"))
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("broker down")))
			})
		})

		When("the emitter is closed", func() {
			BeforeEach(func() {
				Expect(kafkaEmit.Close()).To(Succeed())
			})

			It("should refuse to publish", func() {
				Expect(err).To(MatchError(emitter.ErrClosed))
				Expect(fakeWriter.WriteMessagesCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Close", func() {
		It("should close the writer once", func() {
			Expect(kafkaEmit.Close()).To(Succeed())
			Expect(kafkaEmit.Close()).To(Succeed())
			Expect(fakeWriter.CloseCallCount()).To(Equal(1))
		})
	})
})
