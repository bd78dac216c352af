//go:build cc3000debug && !avr

package diag

import "log/slog"

const Enabled = true

// Println logs msg at debug level through the default slog logger.
func Println(msg string, kv ...any) {
	slog.Debug("cc3000: "+msg, kv...)
}
