package anomaly

import (
	"app/base/utils"
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const defaultAnomalyTopic = "platform.slice-purchase.anomalies"

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Event struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// KafkaReporter publishes anomalies as json events, the writer is expected to be asynchronous
type KafkaReporter struct {
	Writer Writer
	Source string
}

func NewKafkaReporterFromEnv() *KafkaReporter {
	kafkaAddress := utils.GetenvOrFail("KAFKA_ADDRESS")
	topic := utils.Getenv("ANOMALY_TOPIC", defaultAnomalyTopic)

	writer := &kafka.Writer{
		Addr:         kafka.TCP(kafkaAddress),
		Topic:        topic,
		Async:        true,
		BatchTimeout: time.Nanosecond,
		ErrorLogger: kafka.LoggerFunc(func(fmt string, args ...interface{}) {
			utils.Log("type", "kafka").Errorf(fmt, args...)
		}),
	}
	hostname, _ := os.Hostname()
	return &KafkaReporter{Writer: writer, Source: hostname}
}

func (r *KafkaReporter) Report(id uuid.UUID, message string) {
	event := Event{ID: id.String(), Message: message, Source: r.Source, Timestamp: time.Now().UTC()}
	value, err := json.Marshal(&event)
	if err != nil {
		utils.LogError("err", err.Error(), "unable to serialize anomaly event")
		return
	}
	err = r.Writer.WriteMessages(context.Background(), kafka.Message{Key: []byte(event.ID), Value: value})
	if err != nil {
		utils.LogError("err", err.Error(), "anomaly_id", event.ID, "unable to send anomaly event")
	}
}

func (r *KafkaReporter) Close() error {
	if closer, ok := r.Writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
