// Package logging provides a simple leveled logging interface for the
// media browser.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable (DEBUG=true
// forces debug). Output goes to stderr and, when EnableFile is called, also to a
// size-rotated file managed by lumberjack.
package logging
