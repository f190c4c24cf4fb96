// Package debug provides optional structured debug logging.
//
// When the GUI_DEBUG environment variable names a file, debug records are
// appended to that file through a log/slog text handler. A logger can also
// be installed directly with SetLogger. Otherwise, logging is a no-op.
package debug
