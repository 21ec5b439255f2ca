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

// Package convert turns argentum tree output into Nexus tree blocks.
//
// argentum emits one record per variant site, and genomically adjacent sites
// very often share the same tree.  Both converters collapse each maximal run
// of identical records into a single TREE statement labeled with the genomic
// position at which the run is exited: the position of the first site not in
// the run, or the total sequence length for the final run.  The number of
// sites consumed must exactly match the position index; any mismatch means
// the output trees no longer map to the genome and is a fatal error.
package convert

import (
	"io"
	"strings"

	"github.com/grailbio/arg/encoding/nexus"
	"github.com/grailbio/arg/encoding/planar"
	"github.com/pkg/errors"
)

// Opts controls forward-form conversion.
type Opts struct {
	// BranchLengths annotates every cluster child with its merge height.
	BranchLengths bool
}

// DefaultOpts is the set of default options.
var DefaultOpts = Opts{
	BranchLengths: true,
}

// A LineSource produces lines one at a time.  NewicksToNexus requires one
// that yields lines in strictly reverse stream order, e.g.
// reverseio.Scanner.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Newick lines in argentum's tree output start with this.
const newickSentinel = "[0]"

// PlanarToNexus converts argentum's planar-order output ("fast" mode, one
// order/height line pair per site) read from src into a Nexus tree block
// written to out.  positions holds one genomic coordinate per site and
// seqLength the total sequence length.  Each run of identical record pairs
// is rendered to Newick exactly once, when the run is flushed.
func PlanarToNexus(src io.Reader, positions []float64, seqLength float64, opts Opts, out io.Writer) error {
	w := nexus.NewWriter(out)
	w.Header()
	var (
		cur  planar.Record
		have bool
		site int
	)
	sc := planar.NewScanner(src)
	var rec planar.Record
	for sc.Scan(&rec) {
		if !have {
			cur, have = rec, true
		} else if rec != cur {
			// Run identity is raw string equality on both lines: a change in
			// height formatting alone starts a new run.
			tree, err := planar.ToNewick(cur, opts.BranchLengths)
			if err != nil {
				return err
			}
			label, err := exitLabel(positions, site)
			if err != nil {
				return err
			}
			w.Tree(label, tree)
			cur = rec
		}
		site++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if site != len(positions) {
		return accountingError(site, len(positions))
	}
	if have {
		tree, err := planar.ToNewick(cur, opts.BranchLengths)
		if err != nil {
			return err
		}
		w.Tree(formatPosition(seqLength), tree)
	}
	w.Trailer()
	return w.Err()
}

// NewicksToNexus converts argentum's pre-rendered Newick output ("advanced"
// mode) into a Nexus tree block written to out.  That output is written
// newest genomic position first, so src must read it back to front (e.g. a
// reverseio.Scanner), yielding sites in forward genomic order.  argentum
// numbers tips 1..numTips, so a TRANSLATE block remapping
// them to 0-based identifiers is emitted before the trees.  Lines not
// starting with the "[0]" sentinel's first byte are skipped; a selected line
// lacking the full sentinel is a fatal format error.
func NewicksToNexus(src LineSource, positions []float64, seqLength float64, numTips int, out io.Writer) error {
	w := nexus.NewWriter(out)
	w.Header()
	w.Translate(numTips)
	var (
		cur  string
		have bool
		site int
	)
	for src.Scan() {
		line := src.Text()
		if len(line) == 0 || line[0] != newickSentinel[0] {
			continue
		}
		if !strings.HasPrefix(line, newickSentinel) {
			return errors.Errorf("malformed tree line %q: want %q prefix", line, newickSentinel)
		}
		tree := line[len(newickSentinel):]
		if !have {
			cur, have = tree, true
		} else if tree != cur {
			label, err := exitLabel(positions, site)
			if err != nil {
				return err
			}
			w.Tree(label, cur)
			cur = tree
		}
		site++
	}
	if err := src.Err(); err != nil {
		return err
	}
	if site != len(positions) {
		return accountingError(site, len(positions))
	}
	if have {
		w.Tree(formatPosition(seqLength), cur)
	}
	w.Trailer()
	return w.Err()
}

func exitLabel(positions []float64, site int) (string, error) {
	if site >= len(positions) {
		return "", accountingError(site+1, len(positions))
	}
	return formatPosition(positions[site]), nil
}

func accountingError(sites, numPositions int) error {
	return errors.Errorf("accounting mismatch: %d trees but %d sites", sites, numPositions)
}
