// Package logging sets up the process-wide zerolog logger. Logs go to
// stderr so that conversion output on stdout stays machine readable.
package logging
