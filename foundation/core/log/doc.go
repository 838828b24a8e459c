// Package log provides structured logging for the numerical foundation.
//
// Package: log
// Title: Numerical Structured Logging
// Description: This package implements a small structured logging system with
//              levels, persistent fields, correlation IDs, JSON/text/console
//              formats and severity-aware logging of *error.Error values. The
//              operator registry logs registrations at debug level, the config
//              loader logs the files it reads, and the CLI tags each session
//              with a correlation ID.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Trimmed to the needs of the numerical stack
//
// Usage:
//
//	import numlog "github.com/msto63/numerical/foundation/core/log"
//
//	logger := numlog.New().
//	  WithLevel(numlog.LevelDebug).
//	  WithFormat(numlog.FormatJSON).
//	  WithField("component", "operators")
//
//	logger.Debug("operator registered", numlog.Fields{"name": "add", "symbol": "a + b"})
//	logger.LogError(err)
//
//	timer := logger.StartTimer("eval")
//	// ... evaluate
//	timer.Stop()
package log
