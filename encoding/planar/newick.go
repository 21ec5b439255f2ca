package planar

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ToNewick reconstructs the Newick tree for a planar record by iteratively
// clustering adjacent elements, lowest merge height first.  When
// branchLengths is true each child of a cluster is annotated with the merge
// height of that cluster.  The returned tree is always ';'-terminated.
//
// Heights are compared by exact floating-point equality: equal height
// literals parse to identical floats and coalesce in the same pass, while
// heights that differ only through a formatting round-trip are distinct
// clusters and never co-merge.
func ToNewick(rec Record, branchLengths bool) (string, error) {
	order := strings.Split(rec.Order, ",")
	heights, err := parseHeights(rec.Heights)
	if err != nil {
		return "", err
	}
	if len(heights) != len(order)-1 {
		return "", errors.Errorf("planar record has %d tokens but %d heights", len(order), len(heights))
	}
	for len(heights) > 0 {
		target := heights[0]
		for _, h := range heights[1:] {
			if h < target {
				target = h
			}
		}
		suffix := ""
		if branchLengths {
			suffix = ":" + formatHeight(target)
		}
		var (
			nextOrder   []string
			nextHeights []float64
		)
		i := 0
		for i < len(order) {
			// A run of k consecutive heights equal to target joins k+1
			// adjacent tokens into one multifurcating cluster.
			j := i
			for j < len(heights) && heights[j] == target {
				j++
			}
			if j == i {
				nextOrder = append(nextOrder, order[i])
				if i < len(heights) {
					nextHeights = append(nextHeights, heights[i])
				}
				i++
				continue
			}
			var b strings.Builder
			b.WriteByte('(')
			for k := i; k <= j; k++ {
				if k > i {
					b.WriteByte(',')
				}
				b.WriteString(order[k])
				b.WriteString(suffix)
			}
			b.WriteByte(')')
			nextOrder = append(nextOrder, b.String())
			if j < len(heights) {
				nextHeights = append(nextHeights, heights[j])
			}
			i = j + 1
		}
		order, heights = nextOrder, nextHeights
	}
	return order[0] + ";", nil
}

func parseHeights(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	heights := make([]float64, len(fields))
	for i, f := range fields {
		h, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse merge height %q", f)
		}
		heights[i] = h
	}
	return heights, nil
}

func formatHeight(h float64) string {
	return strconv.FormatFloat(h, 'g', -1, 64)
}
