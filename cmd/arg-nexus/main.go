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
package main

/*
arg-nexus converts argentum tree output to a Nexus tree block, collapsing
runs of genomically adjacent identical trees into one TREE statement each.

In planar mode the input is the "fast" argentum's planar-order output (one
order/height line pair per site), which is rendered to Newick here.  In
newick mode the input is the "advanced" argentum's pre-rendered Newick
output, written newest position first, which is read back to front; its
1-based tip labels are remapped to 0-based via a TRANSLATE block.
*/

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/arg/convert"
	"github.com/grailbio/arg/reverseio"
	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
)

var (
	mode            = flag.String("mode", "planar", "Input flavor: 'planar' (order/height line pairs) or 'newick' (reverse-ordered pre-rendered trees)")
	positionsPath   = flag.String("positions", "", "Variant positions file: one line of ascending coordinates, one per site; required")
	seqLength       = flag.Float64("length", 0, "Total sequence length; labels the final tree; required")
	numTips         = flag.Int("tips", 0, "Number of tips; required in newick mode for the TRANSLATE block")
	noBranchLengths = flag.Bool("no-branch-lengths", false, "Omit branch-length annotations in planar mode")
	outPath         = flag.String("out", "", "Output path; defaults to stdout")
)

func argNexusUsage() {
	fmt.Printf("Usage: %s [OPTIONS] treepath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = argNexusUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (argentum tree output path) expected; got %d", flag.NArg())
	}
	treePath := flag.Arg(0)
	if *positionsPath == "" {
		log.Fatalf("-positions is required")
	}
	if *seqLength <= 0 {
		log.Fatalf("-length must be positive")
	}

	ctx := vcontext.Background()
	positions := readPositions(ctx, *positionsPath)

	var outW io.Writer = os.Stdout
	var outFile file.File
	if *outPath != "" {
		var err error
		if outFile, err = file.Create(ctx, *outPath); err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		outW = outFile.Writer(ctx)
	}

	var err error
	switch *mode {
	case "planar":
		err = planarToNexus(ctx, treePath, positions, outW)
	case "newick":
		if *numTips <= 0 {
			log.Fatalf("-tips must be positive in newick mode")
		}
		err = newicksToNexus(treePath, positions, outW)
	default:
		log.Fatalf("unknown -mode %q: want 'planar' or 'newick'", *mode)
	}
	if err != nil {
		log.Fatalf("convert %s: %v", treePath, err)
	}
	if outFile != nil {
		if err := outFile.Close(ctx); err != nil {
			log.Fatalf("close %s: %v", *outPath, err)
		}
	}
}

func planarToNexus(ctx context.Context, path string, positions []float64, outW io.Writer) error {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	opts := convert.DefaultOpts
	opts.BranchLengths = !*noBranchLengths
	cerr := convert.PlanarToNexus(r, positions, *seqLength, opts, outW)
	if err := in.Close(ctx); err != nil {
		log.Fatalf("close %s: %v", path, err)
	}
	return cerr
}

func newicksToNexus(path string, positions []float64, outW io.Writer) error {
	// The reverse scan needs Seek, so the input must be a local file.
	in, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	st, err := in.Stat()
	if err != nil {
		log.Fatalf("stat %s: %v", path, err)
	}
	sc := reverseio.NewScanner(in, st.Size())
	cerr := convert.NewicksToNexus(sc, positions, *seqLength, *numTips, outW)
	if err := in.Close(); err != nil {
		log.Fatalf("close %s: %v", path, err)
	}
	return cerr
}

func readPositions(ctx context.Context, path string) []float64 {
	in, err := file.Open(ctx, path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	var r io.Reader = in.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			log.Fatalf("gzip %s: %v", path, err)
		}
		r = gz
	}
	positions, err := convert.ReadPositions(r)
	if err != nil {
		log.Fatalf("read positions %s: %v", path, err)
	}
	if err := in.Close(ctx); err != nil {
		log.Fatalf("close %s: %v", path, err)
	}
	return positions
}
