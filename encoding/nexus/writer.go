// Package nexus writes Nexus tree blocks: a "#NEXUS / BEGIN TREES;" header,
// an optional TRANSLATE identifier remap, one TREE statement per tree, and an
// "END;" trailer.
package nexus

import (
	"io"
	"strconv"
	"strings"
)

var newline = []byte{'\n'}

// Writer is a streaming Nexus writer.  Each call writes through to the
// underlying writer immediately; nothing is buffered across calls.  The
// first write error is latched and reported by Err.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter constructs a new Nexus writer that writes to the underlying
// writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Header writes the Nexus preamble and opens the trees block.
func (w *Writer) Header() {
	w.writeln("#NEXUS")
	w.writeln("BEGIN TREES;")
}

// Translate writes a TRANSLATE block remapping the 1-based tip identifiers
// 1..numTips to their 0-based equivalents.
func (w *Writer) Translate(numTips int) {
	var b strings.Builder
	b.WriteString("TRANSLATE\n")
	for i := 0; i < numTips; i++ {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(i))
		if i < numTips-1 {
			b.WriteString(",\n")
		}
	}
	b.WriteByte(';')
	w.writeln(b.String())
}

// Tree writes one TREE statement.  The tree text is ';'-terminated on output
// whether or not it arrived that way.
func (w *Writer) Tree(label, tree string) {
	if !strings.HasSuffix(tree, ";") {
		tree += ";"
	}
	w.writeln("TREE " + label + " = " + tree)
}

// Trailer closes the trees block.
func (w *Writer) Trailer() {
	w.writeln("END;")
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, line)
	if w.err == nil {
		_, w.err = w.w.Write(newline)
	}
}
