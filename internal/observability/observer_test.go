// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEmitsJSONAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	observer := NewObserver(LevelDebug, &buf)

	observer.Record(OperationData{
		Component: "planner",
		Operation: "plan_document",
		Success:   true,
	})

	var data OperationData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "planner", data.Component)
	assert.Equal(t, "plan_document", data.Operation)
	assert.True(t, data.Success)
	assert.NotEmpty(t, data.RequestID)
}

func TestRecordSilentBelowDebugLevel(t *testing.T) {
	for _, level := range []Level{LevelOff, LevelMetrics} {
		var buf bytes.Buffer
		observer := NewObserver(level, &buf)

		observer.Record(OperationData{Component: "service", Operation: "redact"})

		assert.Empty(t, buf.String(), "level %d should not emit JSON", level)
	}
}

func TestStartTimingRecordsCompletion(t *testing.T) {
	var buf bytes.Buffer
	observer := NewObserver(LevelDebug, &buf)

	finish := observer.StartTiming("service", "redact")
	finish(false, map[string]interface{}{"error": "boom"})

	var data OperationData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "service", data.Component)
	assert.Equal(t, "redact", data.Operation)
	assert.False(t, data.Success)
	assert.Equal(t, "boom", data.Metadata["error"])
}

func TestDebugObserverStepLifecycle(t *testing.T) {
	var buf bytes.Buffer
	debug := NewDebugObserver(&buf)

	done := debug.StartStep("engine", "open", "bill.pdf")
	debug.LogDetail("engine", "3 content streams")
	done(true, "4 pages")

	out := buf.String()
	assert.Contains(t, out, "engine: open (bill.pdf)")
	assert.Contains(t, out, "engine: 3 content streams")
	assert.Contains(t, out, "engine: open completed")
	assert.Contains(t, out, "4 pages")
}

func TestDebugObserverStepFailure(t *testing.T) {
	var buf bytes.Buffer
	debug := NewDebugObserver(&buf)

	done := debug.StartStep("engine", "save", "out.pdf")
	done(false, "disk full")

	out := buf.String()
	assert.Contains(t, out, "engine: save failed")
	assert.Contains(t, out, "disk full")
}

func TestDebugObserverLogMetric(t *testing.T) {
	var buf bytes.Buffer
	debug := NewDebugObserver(&buf)

	debug.LogMetric("service", "plan_entries", 7)

	assert.Contains(t, buf.String(), "service: plan_entries = 7")
}
