package internallogger

import (
	"testing"

	"github.com/joeydtaylor/metronome/pkg/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_WritesFields(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg", "a", "b", "c", 3, "orphan")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != "a" || fields[1].Key != "c" {
		t.Fatalf("unexpected field keys: %v, %v", fields[0].Key, fields[1].Key)
	}
}

func TestLog_IgnoresNonStringKeys(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	logger.Log(types.InfoLevel, "msg", 123, "skip", "k", "v")

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Context
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "k" {
		t.Fatalf("expected field key 'k', got %q", fields[0].Key)
	}
}

func TestLog_ComponentMetadataField(t *testing.T) {
	logger := NewLogger()
	core, obs := observer.New(zapcore.DebugLevel)

	logger.mu.Lock()
	logger.logger = zap.New(core)
	logger.mu.Unlock()

	meta := types.ComponentMetadata{ID: "abc", Type: "DETECTOR", Name: "session-1"}
	logger.Log(types.InfoLevel, "msg", "component", meta)

	entries := obs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	got, ok := entries[0].ContextMap()["component"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected component field to be a map, got %T", entries[0].ContextMap()["component"])
	}
	if got["id"] != "abc" || got["type"] != "DETECTOR" {
		t.Fatalf("unexpected component map: %v", got)
	}
}
