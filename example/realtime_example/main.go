package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/joeydtaylor/metronome/pkg/builder"
)

// Simulates a capture layer pushing wrist positions at ~25 fps: the left hand
// flaps at 2.3 Hz while the right hand stays near rest.
func feedSamples(ctx context.Context, detector builder.Detector, sampleRate float64) {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / sampleRate))
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tSec := float64(frame) / sampleRate
			detector.AddSample(builder.WristLeft, builder.Sample{
				X:          rand.Float64() - 0.5,
				Y:          8*math.Sin(2*math.Pi*2.3*tSec) + rand.Float64() - 0.5,
				Z:          3*math.Sin(2*math.Pi*2.3*tSec) + rand.Float64() - 0.5,
				Confidence: 0.95,
				Timestamp:  tSec,
			})
			detector.AddSample(builder.WristRight, builder.Sample{
				X:          rand.Float64() - 0.5,
				Y:          rand.Float64() - 0.5,
				Z:          rand.Float64() - 0.5,
				Confidence: 0.95,
				Timestamp:  tSec,
			})
			frame++
		}
	}
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	meter := builder.NewMeter(
		builder.MeterWithComponentMetadata("ScreeningMeter", "meter-1"),
	)

	sensor := builder.NewSensor(
		builder.SensorWithMeter(meter),
		builder.SensorWithOnAnalysisCompleteFunc(func(c builder.ComponentMetadata, analysis builder.SessionAnalysis) {
			if analysis.Summary == nil {
				return
			}
			fmt.Printf("%v -> score=%.2f classification=%s wrists=%d\n",
				c.Name, analysis.Summary.OverallScore, analysis.Summary.Classification, analysis.Summary.WristCount)
		}),
		builder.SensorWithOnAnalysisSkippedFunc(func(c builder.ComponentMetadata, sampleCount int) {
			fmt.Printf("%v -> waiting for samples (%d buffered)\n", c.Name, sampleCount)
		}),
	)

	detector, err := builder.NewDetector(
		ctx,
		builder.DetectorWithComponentMetadata("ScreeningDetector", "detector-1"),
		builder.DetectorWithFrameRate(25.1),
		builder.DetectorWithAnalysisInterval(1*time.Second),
		builder.DetectorWithLogger(logger),
		builder.DetectorWithSensor(sensor),
		builder.DetectorWithMeter(meter),
	)
	if err != nil {
		fmt.Printf("Error building detector: %v\n", err)
		return
	}

	if err := detector.Start(ctx); err != nil {
		fmt.Printf("Error starting detector: %v\n", err)
		return
	}
	defer detector.Stop()

	go feedSamples(ctx, detector, 25.1)
	go meter.Monitor(ctx)

	<-ctx.Done()

	summary, ok := detector.Summary()
	if !ok {
		fmt.Println("No analysis pass completed.")
		return
	}
	fmt.Printf("\nSession %s\n", detector.SessionID())
	fmt.Printf("Repetitive motion: %v (%s)\n", summary.HasRepetitiveMotion, summary.Severity)
	for _, r := range summary.Recommendations {
		fmt.Printf("  - %s\n", r)
	}
}
