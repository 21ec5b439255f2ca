// Package planar parses the per-site "planar order" tree encoding emitted by
// argentum (https://github.com/vlshchur/argentum) and reconstructs Newick
// trees from it.  A planar record is a pair of physical lines: a
// comma-separated ordered list of tip/subtree labels, then a comma-separated
// list of merge heights, one fewer than the labels.
package planar

import (
	"bufio"
	"errors"
	"io"
)

// ErrShort is returned when an order line is not followed by a height line.
var ErrShort = errors.New("short planar record")

var errEOF = errors.New("eof")

// Upper bound on a single order or height line.
const maxLineSize = 16 * 1024 * 1024

// A Record is one site's planar order and its merge heights, kept as the raw
// line text.  Run detection compares records by string equality, so the
// original formatting must be preserved.
type Record struct {
	Order, Heights string
}

// Scanner reads planar records from argentum output.  Lines whose first byte
// is not an ASCII digit are not order lines and are skipped; the physical
// line immediately after an order line is always its height line.  Scanners
// are not threadsafe.
type Scanner struct {
	b   *bufio.Scanner
	err error
}

// NewScanner constructs a new Scanner that reads raw planar data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineSize)
	return &Scanner{b: b}
}

// Scan the next record into the provided record. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it never
// returns true again. Upon completion, the user should check the Err method
// to determine whether scanning stopped because of an error or because the
// end of the stream was reached.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	for {
		if !s.b.Scan() {
			if s.err = s.b.Err(); s.err == nil {
				s.err = errEOF
			}
			return false
		}
		line := s.b.Text()
		if len(line) > 0 && line[0] >= '0' && line[0] <= '9' {
			rec.Order = line
			break
		}
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = ErrShort
		}
		return false
	}
	rec.Heights = s.b.Text()
	return true
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}
