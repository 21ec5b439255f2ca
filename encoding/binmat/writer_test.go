package binmat

import (
	"bytes"
	"testing"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRow([]byte{0, 1, 1, 0}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow([]byte{1, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0110\n1000\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterBadState(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteRow([]byte{0, 2}); err == nil {
		t.Error("expected error")
	}
	// The error is latched.
	if err := w.WriteRow([]byte{0, 1}); err == nil {
		t.Error("expected latched error")
	}
	if got, want := buf.String(), ""; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWritePositions(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePositions(&buf, []float64{1.5, 2, 30}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "1.5 2 30 "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
