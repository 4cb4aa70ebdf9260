package detector

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"github.com/joeydtaylor/metronome/pkg/logschema"
)

// Start launches the periodic analysis loop. The loop stops when Stop is
// called or the supplied context is cancelled. Starting an already started
// detector is an error.
func (d *RealTimeDetector) Start(ctx context.Context) error {
	d.runLock.Lock()
	defer d.runLock.Unlock()

	if !atomic.CompareAndSwapInt32(&d.started, 0, 1) {
		return fmt.Errorf("detector %s already started", d.GetComponentMetadata().ID)
	}

	if ctx == nil {
		ctx = d.baseCtx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	d.ctx, d.cancel = context.WithCancel(ctx)
	d.stopOnce = &sync.Once{}

	cm := d.GetComponentMetadata()
	d.NotifyLoggers(types.InfoLevel,
		"Detector started",
		logschema.FieldComponent, cm,
		logschema.FieldEvent, "Start",
		logschema.FieldSession, d.sessionID,
		"analysis_interval", d.config.analysisInterval.String(),
		"window_size", d.config.windowSize,
	)
	for _, s := range d.snapshotSensors() {
		s.InvokeOnStart(cm)
	}

	go d.run(d.ctx)
	return nil
}

// Stop cancels the periodic tick. Samples already buffered stay in the
// windows; a later Restart resumes analysis over them. Stop is idempotent.
func (d *RealTimeDetector) Stop() error {
	d.runLock.Lock()
	once := d.stopOnce
	d.runLock.Unlock()

	once.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		atomic.StoreInt32(&d.started, 0)

		cm := d.GetComponentMetadata()
		d.NotifyLoggers(types.InfoLevel,
			"Detector stopped",
			logschema.FieldComponent, cm,
			logschema.FieldEvent, "Stop",
			logschema.FieldSession, d.sessionID,
		)
		for _, s := range d.snapshotSensors() {
			s.InvokeOnStop(cm)
		}
	})
	return nil
}

// Restart stops the analysis loop and starts it again against ctx. The
// session identity and buffered windows carry over.
func (d *RealTimeDetector) Restart(ctx context.Context) error {
	if err := d.Stop(); err != nil {
		return err
	}
	if err := d.Start(ctx); err != nil {
		return err
	}

	cm := d.GetComponentMetadata()
	d.NotifyLoggers(types.InfoLevel,
		"Detector restarted",
		logschema.FieldComponent, cm,
		logschema.FieldEvent, "Restart",
		logschema.FieldSession, d.sessionID,
	)
	for _, s := range d.snapshotSensors() {
		s.InvokeOnRestart(cm)
	}
	return nil
}

func (d *RealTimeDetector) run(ctx context.Context) {
	ticker := time.NewTicker(d.config.analysisInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, m := range d.snapshotMeters() {
				m.IncrementCount(types.MetricAnalysisTickCount)
			}
			d.Analyze()
		}
	}
}
