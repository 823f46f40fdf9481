package kernelbase

import (
	"fmt"
	"io"
)

// Diagnostics is a runtime-gated diagnostic printer.
// A nil or disabled Diagnostics discards everything.
type Diagnostics struct {
	w io.Writer
}

// NewDiagnostics returns a printer writing to w when enabled is true.
func NewDiagnostics(w io.Writer, enabled bool) *Diagnostics {
	if !enabled || w == nil {
		return &Diagnostics{}
	}
	return &Diagnostics{w: w}
}

// Enabled reports whether output is written.
func (d *Diagnostics) Enabled() bool {
	return d != nil && d.w != nil
}

// Print writes a pre-formatted message.
func (d *Diagnostics) Print(msg string) {
	if !d.Enabled() {
		return
	}
	_, _ = io.WriteString(d.w, msg)
}

// Printf formats and writes a message. Formatting is skipped when disabled.
func (d *Diagnostics) Printf(format string, args ...any) {
	if !d.Enabled() {
		return
	}
	_, _ = fmt.Fprintf(d.w, format, args...)
}
