// Package reverseio scans a byte stream line by line in reverse, last line
// first, without materializing the whole stream.  argentum's "advanced" mode
// writes its per-site trees newest genomic position first, so converting its
// output to forward genomic order requires reading the file back to front.
package reverseio

import (
	"bytes"
	"io"
)

const defaultChunkSize = 64 * 1024

// Scanner produces the lines of a seekable stream in strictly reverse order.
// It owns the reader's seek position for the duration of the scan but does
// not close it.  Scanners are not threadsafe.
type Scanner struct {
	r       io.ReadSeeker
	off     int64 // stream offset of the first byte of buf
	buf     []byte
	line    string
	err     error
	started bool
	done    bool
	chunk   int64
}

// NewScanner constructs a Scanner over the first size bytes of r.
func NewScanner(r io.ReadSeeker, size int64) *Scanner {
	return &Scanner{r: r, off: size, chunk: defaultChunkSize}
}

// Scan advances to the previous line, returning false at the beginning of
// the stream or on error.  Once Scan returns false, it never returns true
// again.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.done {
		return false
	}
	if !s.started {
		s.started = true
		if s.off == 0 {
			s.done = true
			return false
		}
		if !s.fill() {
			return false
		}
		// A trailing newline terminates the last line rather than opening an
		// empty one.
		if n := len(s.buf); n > 0 && s.buf[n-1] == '\n' {
			s.buf = s.buf[:n-1]
		}
	}
	for {
		if i := bytes.LastIndexByte(s.buf, '\n'); i >= 0 {
			s.setLine(s.buf[i+1:])
			s.buf = s.buf[:i]
			return true
		}
		if s.off == 0 {
			s.setLine(s.buf)
			s.buf = nil
			s.done = true
			return true
		}
		if !s.fill() {
			return false
		}
	}
}

// Text returns the current line, without its line terminator.
func (s *Scanner) Text() string {
	return s.line
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) setLine(b []byte) {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	s.line = string(b)
}

// fill prepends the chunk preceding buf in the stream.
func (s *Scanner) fill() bool {
	n := s.chunk
	if n > s.off {
		n = s.off
	}
	nb := make([]byte, int(n)+len(s.buf))
	copy(nb[n:], s.buf)
	if _, err := s.r.Seek(s.off-n, io.SeekStart); err != nil {
		s.err = err
		return false
	}
	if _, err := io.ReadFull(s.r, nb[:n]); err != nil {
		s.err = err
		return false
	}
	s.off -= n
	s.buf = nb
	return true
}
