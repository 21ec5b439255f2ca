package planar

import (
	"strings"
	"testing"
)

const planarOut = `argentum planar output
4,1,3,2
0.5,0.5,1
enumerating region 2
2,4,1,3
1,0.5,0.5
`

func TestScanner(t *testing.T) {
	s := NewScanner(strings.NewReader(planarOut))
	var recs []Record
	var r Record
	for s.Scan(&r) {
		recs = append(recs, r)
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{Order: "4,1,3,2", Heights: "0.5,0.5,1"},
		{Order: "2,4,1,3", Heights: "1,0.5,0.5"},
	}
	if got, want := len(recs), len(want); got != want {
		t.Fatalf("got %v records, want %v", got, want)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("record %d: got %v, want %v", i, recs[i], want[i])
		}
	}
}

func TestScannerShort(t *testing.T) {
	s := NewScanner(strings.NewReader("header\n1,2,3\n"))
	var r Record
	for s.Scan(&r) {
	}
	if got, want := s.Err(), ErrShort; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScannerEmpty(t *testing.T) {
	s := NewScanner(strings.NewReader("no data lines here\n"))
	var r Record
	if s.Scan(&r) {
		t.Error("unexpected record")
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
