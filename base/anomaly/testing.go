package anomaly

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Report struct {
	ID      uuid.UUID
	Message string
}

// Recorder keeps reported anomalies in memory
type Recorder struct {
	lock    sync.Mutex
	Reports []Report
}

func (r *Recorder) Report(id uuid.UUID, message string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Reports = append(r.Reports, Report{ID: id, Message: message})
}

func (r *Recorder) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Reports)
}

type MockKafkaWriter struct {
	Messages []kafka.Message
}

func (t *MockKafkaWriter) WriteMessages(_ context.Context, ev ...kafka.Message) error {
	t.Messages = append(t.Messages, ev...)
	return nil
}
