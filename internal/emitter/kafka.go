package emitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"buybot/internal/core"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrClosed error = errors.New("emitter closed")

// PurchaseEvent is the message value written for every stored purchase.
type PurchaseEvent struct {
	TxHash     string    `json:"tx_hash"`
	Buyer      string    `json:"buyer"`
	Amount     string    `json:"amount"`
	DetectedAt time.Time `json:"detected_at"`
}

// KafkaEmitter publishes purchases to a Kafka topic keyed by transaction hash.
type KafkaEmitter struct {
	logs   *zap.SugaredLogger
	writer MessageWriter
	now    func() time.Time
	mu     sync.Mutex
}

func NewKafkaEmitter(logger *zap.SugaredLogger, brokerAddress, topic string) *KafkaEmitter {
	return NewEmitter(logger, &kafka.Writer{
		Addr:                   kafka.TCP(brokerAddress),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	})
}

func NewEmitter(logger *zap.SugaredLogger, writer MessageWriter) *KafkaEmitter {
	return &KafkaEmitter{
		logs:   logger,
		writer: writer,
		now:    time.Now,
	}
}

func (k *KafkaEmitter) Publish(ctx context.Context, purchase core.PurchaseRecord) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer == nil {
		return ErrClosed
	}

	value, err := json.Marshal(PurchaseEvent{
		TxHash:     purchase.TxHash,
		Buyer:      purchase.BuyerName(),
		Amount:     purchase.Amount.String(),
		DetectedAt: k.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(purchase.TxHash),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}

	k.logs.Infow("purchase event emitted", "tx_hash", purchase.TxHash)
	return nil
}

func (k *KafkaEmitter) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer != nil {
		err := k.writer.Close()
		k.writer = nil
		return err
	}
	return nil
}
