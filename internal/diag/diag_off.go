//go:build !cc3000debug

package diag

// Enabled reports whether diagnostics were compiled in.
const Enabled = false

func Println(msg string, kv ...any) {}
