// Package metrics provides a narrow counter sink. Handlers emit named
// counters through it; the backing implementation is swappable.
package metrics

import (
	"sync"

	"go.uber.org/zap"
)

// Counter names emitted by the API handlers.
const (
	CashFlowCalculations      = "CashFlowCalculations"
	CashFlowCalculationErrors = "CashFlowCalculationErrors"
	HealthCheckRequests       = "HealthCheckRequests"
	HealthCheckErrors         = "HealthCheckErrors"
	DatabaseHealthCheckFailed = "DatabaseHealthCheckFailed"
	CreatePropertyRequests    = "CreatePropertyRequests"
	CreatePropertyErrors      = "CreatePropertyErrors"
	PropertiesCreated         = "PropertiesCreated"
	GetPropertiesRequests     = "GetPropertiesRequests"
	GetPropertiesErrors       = "GetPropertiesErrors"
	PropertiesRetrieved       = "PropertiesRetrieved"
)

// Recorder accepts named counter increments.
type Recorder interface {
	Add(name string, delta float64)
}

// LogRecorder emits each counter as a structured log line. It stands in
// for an external metrics pipeline that would scrape or forward these.
type LogRecorder struct {
	logger    *zap.Logger
	namespace string
}

// NewLogRecorder creates a Recorder backed by the given logger.
func NewLogRecorder(logger *zap.Logger, namespace string) *LogRecorder {
	return &LogRecorder{logger: logger, namespace: namespace}
}

func (r *LogRecorder) Add(name string, delta float64) {
	r.logger.Info("metric",
		zap.String("namespace", r.namespace),
		zap.String("name", name),
		zap.Float64("value", delta),
	)
}

// MemoryRecorder accumulates counters in memory for tests.
type MemoryRecorder struct {
	mu     sync.Mutex
	Counts map[string]float64
}

// NewMemoryRecorder creates an empty in-memory Recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{Counts: make(map[string]float64)}
}

func (r *MemoryRecorder) Add(name string, delta float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts[name] += delta
}

// Get returns the accumulated value for a counter.
func (r *MemoryRecorder) Get(name string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Counts[name]
}
