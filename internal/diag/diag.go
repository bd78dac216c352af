// Package diag is the driver's optional diagnostic output. It compiles to
// no-ops unless the build carries the cc3000debug tag.
package diag
