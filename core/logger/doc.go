// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports console output for
// interactive CLI runs and JSON output for scheduled (cron) runs.
//
// # Run Correlation
//
// A sync run is a one-shot process; WithRunID tags the logger with a
// generated run identifier so that entries from one run can be grouped
// when logs from scheduled runs land in the same aggregator.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (CLI) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("sync started")
package logger
