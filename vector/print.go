package vector

import (
	"fmt"
	"io"
	"strings"
)

// MaxPrintElems caps how many leading elements Print and FormatPrefix show.
const MaxPrintElems = 5

// Print writes up to MaxPrintElems leading elements of v with index labels.
// Write errors are ignored; Print never modifies v.
func Print(w io.Writer, v []float32) {
	var sb strings.Builder
	sb.WriteString("Printing Vector : \n")
	for i := range min(len(v), MaxPrintElems) {
		fmt.Fprintf(&sb, "v[%d] : %v\n", i, v[i])
	}
	sb.WriteString("\n")
	_, _ = io.WriteString(w, sb.String())
}

// FormatPrefix renders at most MaxPrintElems leading elements as
// "{ 1.0000, 2.0000,  ... }".
func FormatPrefix(v []float32) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for i := range min(len(v), MaxPrintElems) {
		fmt.Fprintf(&sb, "%3.4f, ", v[i])
	}
	sb.WriteString(" ... }")
	return sb.String()
}
