// Package logging provides structured logging for the decoder.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent unless a level is configured, so the decoder's stdout carries only
// decoded output.
//
// # Log Levels
//
//   - Debug: raw input bytes, decoded frame headers, per-line summaries
//   - Info: startup details such as the loaded config file
//   - Warn: candidates that failed to decode
//   - Error: failures that abort a command
//
// # Configuration
//
// The level comes from the --log-level flag, the logging.level config key or
// the SINCLAIR_LOG_LEVEL environment variable, in that order:
//
//	if err := logging.InitializeWithOptions(logging.Options{Level: "debug"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Console output is written to stderr. When a file name is configured, JSON
// entries are also written to a size-rotated file managed by lumberjack.
//
// # Specialized Logging
//
//	logging.LogRawBytes("line bytes", data)
//	logging.LogFrame("line 3", frame.Command, frame.Length, len(frame.Payload), frame.ChecksumOK)
//	logging.LogDecodeFailure("line 3", candidate, err)
//
// # Thread Safety
//
// The logging functions are safe for concurrent use once initialized.
package logging
