// Package detector implements the real-time screening controller. It owns the
// per-wrist sliding windows, re-runs the spectral pipeline on a periodic tick,
// and publishes immutable session snapshots for downstream consumers.
package detector

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/joeydtaylor/metronome/pkg/internal/spectral"
	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/joeydtaylor/metronome/pkg/internal/utils"
	"github.com/joeydtaylor/metronome/pkg/internal/window"
)

// RealTimeDetector is the concrete Detector. Each wrist's window is guarded
// by windowLock; analysis passes snapshot the windows before transforming so
// ingestion never interleaves with a pass mid-read.
type RealTimeDetector struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	config    *detectorConfig
	sessionID string
	analyzer  *spectral.Analyzer

	baseCtx context.Context
	ctx     context.Context
	cancel  context.CancelFunc

	windowLock sync.Mutex
	windows    map[types.Wrist]*window.Series

	latestLock sync.RWMutex
	latest     *types.SessionAnalysis

	started  int32
	stopOnce *sync.Once
	runLock  sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
	meters      []types.Meter
	metersLock  sync.Mutex
}

// NewDetector constructs a RealTimeDetector for one screening session.
// Configuration is validated once here; the analysis path never fails.
func NewDetector(ctx context.Context, options ...types.Option[types.Detector]) (types.Detector, error) {
	d := &RealTimeDetector{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DETECTOR",
		},
		config:    defaultConfig(),
		sessionID: uuid.NewString(),
		baseCtx:   ctx,
		stopOnce:  &sync.Once{},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}

	if err := d.config.validate(); err != nil {
		return nil, err
	}

	analyzerOptions, err := d.config.analyzerOptions()
	if err != nil {
		return nil, err
	}
	analyzer, err := spectral.NewAnalyzer(analyzerOptions...)
	if err != nil {
		return nil, err
	}
	d.analyzer = analyzer

	d.windows = make(map[types.Wrist]*window.Series, 2)
	for _, wrist := range []types.Wrist{types.WristLeft, types.WristRight} {
		series, err := window.NewSeries(d.config.windowSize)
		if err != nil {
			return nil, err
		}
		d.windows[wrist] = series
	}

	return d, nil
}

// SessionID identifies this detector's screening session.
func (d *RealTimeDetector) SessionID() string {
	return d.sessionID
}

// GetComponentMetadata returns the detector's metadata.
func (d *RealTimeDetector) GetComponentMetadata() types.ComponentMetadata {
	d.metadataLock.Lock()
	defer d.metadataLock.Unlock()
	return d.componentMetadata
}

// SetComponentMetadata updates the detector's name and id.
func (d *RealTimeDetector) SetComponentMetadata(name string, id string) {
	d.metadataLock.Lock()
	defer d.metadataLock.Unlock()
	d.componentMetadata.Name = name
	d.componentMetadata.ID = id
}

// ConnectLogger attaches loggers for recording detector events.
func (d *RealTimeDetector) ConnectLogger(loggers ...types.Logger) {
	d.loggersLock.Lock()
	defer d.loggersLock.Unlock()
	d.loggers = append(d.loggers, loggers...)
}

// ConnectSensor attaches sensors whose callbacks fire on detector events.
func (d *RealTimeDetector) ConnectSensor(sensors ...types.Sensor) {
	d.sensorLock.Lock()
	defer d.sensorLock.Unlock()
	d.sensors = append(d.sensors, sensors...)
}

// ConnectMeter attaches meters that count ticks, passes, and ingestion.
func (d *RealTimeDetector) ConnectMeter(meters ...types.Meter) {
	d.metersLock.Lock()
	defer d.metersLock.Unlock()
	d.meters = append(d.meters, meters...)
}

// IsStarted reports whether the periodic analysis loop is running.
func (d *RealTimeDetector) IsStarted() bool {
	return atomic.LoadInt32(&d.started) == 1
}

func (d *RealTimeDetector) snapshotSensors() []types.Sensor {
	d.sensorLock.Lock()
	defer d.sensorLock.Unlock()
	out := make([]types.Sensor, len(d.sensors))
	copy(out, d.sensors)
	return out
}

func (d *RealTimeDetector) snapshotMeters() []types.Meter {
	d.metersLock.Lock()
	defer d.metersLock.Unlock()
	out := make([]types.Meter, len(d.meters))
	copy(out, d.meters)
	return out
}
