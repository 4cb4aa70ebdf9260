package meter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/joeydtaylor/metronome/pkg/internal/utils"
)

const (
	defaultUpdateInterval = 1 * time.Second
	defaultIdleTimeout    = 30 * time.Second
)

// Meter counts pipeline activity for one detector and renders periodic
// snapshots of counts plus host CPU/RAM usage.
type Meter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	mu          sync.Mutex
	counts      map[string]*uint64
	percentages map[string]float64

	updateInterval time.Duration
	idleTimeout    time.Duration
	dataCh         chan struct{}
	startTime      time.Time

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMeter constructs a Meter with optional configuration.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:         make(map[string]*uint64),
		percentages:    make(map[string]float64),
		updateInterval: defaultUpdateInterval,
		idleTimeout:    defaultIdleTimeout,
		dataCh:         make(chan struct{}, 1),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

// ConnectLogger attaches loggers to the meter.
func (m *Meter) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	m.loggers = append(m.loggers, loggers...)
}

// NotifyLoggers sends a log message to all attached loggers.
func (m *Meter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	m.loggersLock.Lock()
	loggers := append([]types.Logger(nil), m.loggers...)
	m.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

// GetComponentMetadata returns the meter's metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	m.metadataLock.Lock()
	defer m.metadataLock.Unlock()
	return m.componentMetadata
}

// SetComponentMetadata updates the meter's name and id.
func (m *Meter) SetComponentMetadata(name string, id string) {
	m.metadataLock.Lock()
	defer m.metadataLock.Unlock()
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
}

func (m *Meter) ensureCounter(metricName string) *uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	counter, ok := m.counts[metricName]
	if !ok {
		counter = new(uint64)
		m.counts[metricName] = counter
	}
	return counter
}

// IncrementCount adds one to a metric count.
func (m *Meter) IncrementCount(metricName string) {
	atomic.AddUint64(m.ensureCounter(metricName), 1)
}

// AddToCount adds delta to a metric count.
func (m *Meter) AddToCount(metricName string, delta uint64) {
	atomic.AddUint64(m.ensureCounter(metricName), delta)
}

// GetMetricCount returns the current value of a metric count.
func (m *Meter) GetMetricCount(metricName string) uint64 {
	return atomic.LoadUint64(m.ensureCounter(metricName))
}

// SetMetricCount overwrites a metric count.
func (m *Meter) SetMetricCount(metricName string, count uint64) {
	atomic.StoreUint64(m.ensureCounter(metricName), count)
}

// SetMetricPercentage records a gauge-style percentage value.
func (m *Meter) SetMetricPercentage(metricName string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.percentages[metricName] = value
}

// GetMetricPercentage returns a recorded percentage value.
func (m *Meter) GetMetricPercentage(metricName string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.percentages[metricName]
}

// ReportData signals activity to reset the idle timer.
func (m *Meter) ReportData() {
	select {
	case m.dataCh <- struct{}{}:
	default:
	}
}
