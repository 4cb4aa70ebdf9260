package sensor

import (
	"sync"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/joeydtaylor/metronome/pkg/internal/utils"
)

// Sensor provides callback hooks for detector telemetry.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	onStart            []func(types.ComponentMetadata)
	onStop             []func(types.ComponentMetadata)
	onRestart          []func(types.ComponentMetadata)
	onSampleIngested   []func(types.ComponentMetadata, types.Wrist, types.Sample)
	onSampleEvicted    []func(types.ComponentMetadata, types.Wrist, int)
	onAnalysisComplete []func(types.ComponentMetadata, types.SessionAnalysis)
	onAnalysisSkipped  []func(types.ComponentMetadata, int)
	onError            []func(types.ComponentMetadata, error)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
	meters       []types.Meter
	metersLock   sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

// ConnectLogger attaches loggers for recording significant sensoring events.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	s.loggers = append(s.loggers, loggers...)
}

// ConnectMeter attaches meters so detector events also feed metric counts.
func (s *Sensor) ConnectMeter(meters ...types.Meter) {
	s.metersLock.Lock()
	defer s.metersLock.Unlock()
	s.meters = append(s.meters, meters...)
}

// GetMeters returns the attached meters.
func (s *Sensor) GetMeters() []types.Meter {
	s.metersLock.Lock()
	defer s.metersLock.Unlock()
	out := make([]types.Meter, len(s.meters))
	copy(out, s.meters)
	return out
}

// GetComponentMetadata returns the sensor's metadata.
func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	return s.componentMetadata
}

// SetComponentMetadata updates the sensor's name and id.
func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
}

func (s *Sensor) RegisterOnStart(callback ...func(types.ComponentMetadata)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onStart = append(s.onStart, callback...)
}

func (s *Sensor) InvokeOnStart(cm types.ComponentMetadata) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata){}, s.onStart...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm)
	}
}

func (s *Sensor) RegisterOnStop(callback ...func(types.ComponentMetadata)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onStop = append(s.onStop, callback...)
}

func (s *Sensor) InvokeOnStop(cm types.ComponentMetadata) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata){}, s.onStop...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm)
	}
}

func (s *Sensor) RegisterOnRestart(callback ...func(types.ComponentMetadata)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onRestart = append(s.onRestart, callback...)
}

func (s *Sensor) InvokeOnRestart(cm types.ComponentMetadata) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata){}, s.onRestart...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm)
	}
}

func (s *Sensor) RegisterOnSampleIngested(callback ...func(types.ComponentMetadata, types.Wrist, types.Sample)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onSampleIngested = append(s.onSampleIngested, callback...)
}

func (s *Sensor) InvokeOnSampleIngested(cm types.ComponentMetadata, wrist types.Wrist, sample types.Sample) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata, types.Wrist, types.Sample){}, s.onSampleIngested...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, wrist, sample)
	}
	for _, m := range s.GetMeters() {
		m.IncrementCount(types.MetricSampleIngestCount)
		m.ReportData()
	}
}

func (s *Sensor) RegisterOnSampleEvicted(callback ...func(types.ComponentMetadata, types.Wrist, int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onSampleEvicted = append(s.onSampleEvicted, callback...)
}

func (s *Sensor) InvokeOnSampleEvicted(cm types.ComponentMetadata, wrist types.Wrist, count int) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata, types.Wrist, int){}, s.onSampleEvicted...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, wrist, count)
	}
	for _, m := range s.GetMeters() {
		m.AddToCount(types.MetricSampleEvictionCount, uint64(count))
	}
}

func (s *Sensor) RegisterOnAnalysisComplete(callback ...func(types.ComponentMetadata, types.SessionAnalysis)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onAnalysisComplete = append(s.onAnalysisComplete, callback...)
}

func (s *Sensor) InvokeOnAnalysisComplete(cm types.ComponentMetadata, analysis types.SessionAnalysis) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata, types.SessionAnalysis){}, s.onAnalysisComplete...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, analysis)
	}
	for _, m := range s.GetMeters() {
		m.IncrementCount(types.MetricAnalysisPassCount)
		m.ReportData()
	}
}

func (s *Sensor) RegisterOnAnalysisSkipped(callback ...func(types.ComponentMetadata, int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onAnalysisSkipped = append(s.onAnalysisSkipped, callback...)
}

func (s *Sensor) InvokeOnAnalysisSkipped(cm types.ComponentMetadata, sampleCount int) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata, int){}, s.onAnalysisSkipped...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, sampleCount)
	}
	for _, m := range s.GetMeters() {
		m.IncrementCount(types.MetricAnalysisSkipCount)
	}
}

func (s *Sensor) RegisterOnError(callback ...func(types.ComponentMetadata, error)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onError = append(s.onError, callback...)
}

func (s *Sensor) InvokeOnError(cm types.ComponentMetadata, err error) {
	s.callbackLock.Lock()
	callbacks := append([]func(types.ComponentMetadata, error){}, s.onError...)
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, err)
	}
}
