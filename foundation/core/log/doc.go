// Package log provides structured logging for asymptotix.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, field-based logging with JSON, text, console and logfmt
//              output. Errors from the core error package are logged with their
//              code, severity and details. Timers report how long an evaluation
//              or store operation took.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Component loggers, deterministic field order; request/user
//                       context and async buffering removed
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatLogfmt).
//		WithComponent("expr")
//
//	logger.Debug("parsed expression", log.Fields{"input": src, "nodes": n})
//
//	timer := logger.StartTimer("evaluate")
//	v, err := eval(node)
//	if err != nil {
//		timer.StopWithError(err)
//	} else {
//		timer.Stop()
//	}
package log
