// Package debug provides debug logging for tabula.
//
// When enabled via the --debug flag, sort recomputation, dataset I/O and
// selection changes are logged with timestamps to a file.
package debug
