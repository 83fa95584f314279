// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// Observer implements observability for all components
type Observer struct {
	level         Level
	writer        io.Writer
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// NewObserver creates observability component
func NewObserver(level Level, writer io.Writer) *Observer {
	return &Observer{
		level:  level,
		writer: writer,
	}
}

// Level returns the configured observability level
func (o *Observer) Level() Level {
	return o.level
}

// StartTiming returns a function to complete timing
func (o *Observer) StartTiming(component, operation string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := OperationData{
			Component:  component,
			Operation:  operation,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}

		o.Record(data)
	}
}

// Record logs operation data
func (o *Observer) Record(data OperationData) {
	if o.level == LevelOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == LevelDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData for all components
type OperationData struct {
	Component    string                 `json:"component"`
	Operation    string                 `json:"operation"`
	RequestID    string                 `json:"request_id"`
	DocumentPath string                 `json:"document_path,omitempty"`
	Page         int                    `json:"page,omitempty"`
	DurationMs   int64                  `json:"duration_ms,omitempty"`
	Success      bool                   `json:"success"`
	Error        string                 `json:"error,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
