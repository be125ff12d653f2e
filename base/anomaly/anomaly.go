// Out-of-band reporting of unexpected failures. Reporting is best effort,
// reporters must not block and their failures never reach the caller.
package anomaly

import (
	"app/base/utils"
	"io"

	"github.com/google/uuid"
)

type Reporter interface {
	Report(id uuid.UUID, message string)
}

type ReporterFunc func(id uuid.UUID, message string)

func (f ReporterFunc) Report(id uuid.UUID, message string) {
	f(id, message)
}

type Noop struct{}

func (Noop) Report(uuid.UUID, string) {}

// LogReporter writes anomalies to the application log
type LogReporter struct{}

func (LogReporter) Report(id uuid.UUID, message string) {
	utils.Log("anomaly_id", id.String()).Warn(message)
}

// Multi fans out each report to all reporters
type Multi []Reporter

func (m Multi) Report(id uuid.UUID, message string) {
	for _, r := range m {
		Safe(r, id, message)
	}
}

// Close closes reporters holding resources, e.g. flushes pending kafka writes
func (m Multi) Close() error {
	var firstErr error
	for _, r := range m {
		if closer, ok := r.(io.Closer); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Safe calls the reporter and swallows its panics
func Safe(r Reporter, id uuid.UUID, message string) {
	if r == nil {
		return
	}
	defer func() {
		if obj := recover(); obj != nil {
			utils.Log("err", obj, "anomaly_id", id.String()).Error("anomaly reporter panicked")
		}
	}()
	r.Report(id, message)
}

// FromEnv creates reporter logging and counting anomalies, also sending them to kafka when KAFKA_ADDRESS is set
func FromEnv() Reporter {
	reporters := Multi{LogReporter{}, MetricsReporter{}}
	if utils.Getenv("KAFKA_ADDRESS", "") != "" {
		reporters = append(reporters, NewKafkaReporterFromEnv())
	}
	return reporters
}
