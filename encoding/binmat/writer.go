// Package binmat writes argentum's .binary input format: one line per site,
// holding the 0 (ancestral) / 1 (derived) state of every sample concatenated
// with no separator.
package binmat

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Writer emits genotype rows in .binary format.  The first write error is
// latched and returned by every subsequent call.
type Writer struct {
	w   io.Writer
	err error
	buf []byte
}

// NewWriter constructs a new .binary writer that writes rows to the
// underlying writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRow writes one site's states.  Every state must be 0 or 1.
func (w *Writer) WriteRow(states []byte) error {
	if w.err != nil {
		return w.err
	}
	if cap(w.buf) < len(states)+1 {
		w.buf = make([]byte, 0, len(states)+1)
	}
	w.buf = w.buf[:0]
	for i, s := range states {
		if s > 1 {
			w.err = errors.Errorf("state %d at sample %d is not 0 or 1", s, i)
			return w.err
		}
		w.buf = append(w.buf, '0'+s)
	}
	w.buf = append(w.buf, '\n')
	_, w.err = w.w.Write(w.buf)
	return w.err
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

// WritePositions writes the variant positions side file: every position on
// one line, space-separated with a trailing space.
func WritePositions(w io.Writer, positions []float64) error {
	var buf []byte
	for _, p := range positions {
		buf = strconv.AppendFloat(buf[:0], p, 'g', -1, 64)
		buf = append(buf, ' ')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
