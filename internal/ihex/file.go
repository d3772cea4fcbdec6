// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ParseFile reads one Intel HEX file into a memory image. Record
// checksum values are not validated, use Parser.Strict for that.
func ParseFile(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var p Parser
	im, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return im, nil
}

// WriteRecords writes recs to w, one encoded record per line.
func WriteRecords(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for i := range recs {
		bw.WriteString(recs[i].Encode())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile serializes im to path as a canonical Intel HEX file. An
// empty image is an error and no file is created for it.
func (e *Emitter) WriteFile(im Image, path string) error {
	recs, err := e.Emit(im)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRecords(f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
