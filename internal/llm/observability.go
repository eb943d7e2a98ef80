package llm

import "go.uber.org/zap"

// CallEvent records metadata about a single generation call.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about generation calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// ZapObserver logs generation call events through a zap logger.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an Observer that logs events to log.
func NewZapObserver(log *zap.Logger) *ZapObserver {
	return &ZapObserver{log: log}
}

func (o *ZapObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success {
		o.log.Info("generation call", fields...)
		return
	}
	fields = append(fields, zap.String("error_code", event.ErrorCode))
	o.log.Warn("generation call failed", fields...)
}
