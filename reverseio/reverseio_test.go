package reverseio

import (
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func scanAll(t *testing.T, data string, chunk int64) []string {
	t.Helper()
	s := NewScanner(strings.NewReader(data), int64(len(data)))
	if chunk > 0 {
		s.chunk = chunk
	}
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	expect.NoError(t, s.Err())
	return lines
}

func TestScanner(t *testing.T) {
	tests := []struct {
		data string
		want []string
	}{
		{"", nil},
		{"a\n", []string{"a"}},
		{"a", []string{"a"}},
		{"a\nb\nc\n", []string{"c", "b", "a"}},
		{"a\nb", []string{"b", "a"}},
		{"\na\n", []string{"a", ""}},
		{"a\r\nb\r\n", []string{"b", "a"}},
	}
	for _, tt := range tests {
		expect.EQ(t, scanAll(t, tt.data, 0), tt.want)
	}
}

func TestScannerSmallChunks(t *testing.T) {
	long := strings.Repeat("x", 1000)
	data := "first\n" + long + "\nlast\n"
	expect.EQ(t, scanAll(t, data, 7), []string{"last", long, "first"})
}

func TestScannerStopsAfterDone(t *testing.T) {
	s := NewScanner(strings.NewReader("a\n"), 2)
	expect.True(t, s.Scan())
	expect.True(t, !s.Scan())
	expect.True(t, !s.Scan())
	expect.NoError(t, s.Err())
}
