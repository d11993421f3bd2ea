// Package debug provides optional file-based debug logging.
//
// Logging is off until Init is called; Log is a no-op before that, so
// library code can log unconditionally.
package debug
