// File: timer.go
// Title: Performance Timer
// Description: Provides timing for evaluations and data inspections. The
//              elapsed time is attached to the completion entry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-16 v0.2.0: Reduced to start/stop/fail

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. A stopped timer returns 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["success"] = err == nil

	entryLevel := t.level
	message := t.operation + " completed"
	if err != nil {
		message = t.operation + " failed"
		if entryLevel < LevelWarn {
			entryLevel = LevelWarn
		}
	}

	if !entryLevel.ShouldLog(t.logger.GetLevel()) {
		return elapsed
	}

	entry := NewEntry(entryLevel, message).WithError(err).WithDuration(elapsed)
	t.logger.mutex.RLock()
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	for k, v := range t.logger.contextFields {
		entry.Fields[k] = v
	}
	formatter, output := t.logger.formatter, t.logger.output
	t.logger.mutex.RUnlock()
	for k, v := range fields {
		entry.Fields[k] = v
	}

	t.logger.write(formatter, output, entry)
	return elapsed
}
