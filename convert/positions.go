// Copyright 2019 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Positions files hold one line of coordinates; allow for long ones.
const maxPositionsLine = 64 * 1024 * 1024

// ReadPositions reads the variant positions side file: the first line of r,
// whitespace-separated ascending genomic coordinates, one per site.  A field
// that does not parse as a float is an error; no positions are returned in
// that case.
func ReadPositions(r io.Reader) ([]float64, error) {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxPositionsLine)
	if !b.Scan() {
		if err := b.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("empty positions file")
	}
	fields := strings.Fields(b.Text())
	positions := make([]float64, len(fields))
	for i, f := range fields {
		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse position %q", f)
		}
		positions[i] = p
	}
	return positions, nil
}

func formatPosition(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
