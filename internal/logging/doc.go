// Package logging provides a simple leveled logging interface for the
// media picker.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// Messages are written through zerolog: a console format when stderr is a
// terminal, JSON lines otherwise. The log level is configured via the
// LOG_LEVEL environment variable, or DEBUG=true.
package logging
