// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fwtools/hexmerge/internal/ihex"
	"github.com/fwtools/hexmerge/internal/util"
	"golang.org/x/sync/errgroup"
)

func main() {
	fs := flag.NewFlagSet("hexmerge", flag.ExitOnError)
	fs.Usage = func() {
		os.Stderr.WriteString("Usage:\n  hexmerge [OPTIONS] HEX...\nOptions:\n")
		fs.PrintDefaults()
	}
	out := fs.String("o", "out.hex", "output file")
	fill := fs.Uint("fill", 0x00, "fill byte for gaps in the merged image")
	line := fs.Uint("line", ihex.DefaultChunkSize, "data bytes per output record")
	strict := fs.Bool("strict", false, "validate record checksums of the input files")
	fs.Parse(os.Args[1:])
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}
	if *fill > 0xFF {
		util.Fatal("fill byte out of range: %#x", *fill)
	}
	if *line == 0 || *line > 0xFF {
		util.Fatal("data bytes per record out of range: %d", *line)
	}

	// Each file owns its parser state, so the inputs can be parsed
	// concurrently. The merge below still folds them in argument
	// order: later files overwrite earlier ones on address conflicts.
	paths := fs.Args()
	images := make([]ihex.Image, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			p := ihex.Parser{Strict: *strict}
			im, err := p.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			images[i] = im
			return nil
		})
	}
	util.FatalErr("", g.Wait())
	for i, path := range paths {
		if len(images[i]) == 0 {
			util.Warn("%s: no data records", path)
			continue
		}
		fmt.Printf("%s: %d bytes\n", path, len(images[i]))
	}

	merged := ihex.Merge(images...)
	if len(merged) == 0 {
		util.Fatal("no data found in input files")
	}
	minAddr, maxAddr := merged.AddrRange()
	fmt.Printf("merged address range: %#x to %#x\n", minAddr, maxAddr)

	e := ihex.Emitter{FillByte: byte(*fill), ChunkSize: int(*line)}
	recs, err := e.Emit(merged)
	util.FatalErr("", err)
	f, err := os.Create(*out)
	util.FatalErr("", err)
	err = ihex.WriteRecords(f, recs)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	util.FatalErr(*out, err)
	fmt.Printf("%s: %d records written\n", *out, len(recs))
}
