// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Image is a sparse byte-addressed memory image. An absent address is
// unspecified, not zero; gaps are filled only at emission time.
type Image map[uint32]byte

// AddrRange returns the lowest and highest address present in the
// image. It must not be called on an empty image.
func (im Image) AddrRange() (minAddr, maxAddr uint32) {
	first := true
	for a := range im {
		if first {
			minAddr, maxAddr = a, a
			first = false
			continue
		}
		if a < minAddr {
			minAddr = a
		}
		if a > maxAddr {
			maxAddr = a
		}
	}
	return minAddr, maxAddr
}

// Parser builds memory images from Intel HEX input.
type Parser struct {
	// Strict enables verification of record checksum values. The
	// default reproduces the lenient behavior of common flashing
	// tools: the checksum field must be present but is not checked.
	Strict bool
}

// Parse reads Intel HEX records from r and returns the memory image
// they describe. Lines without the ':' marker are skipped. The extended
// linear address starts at zero and applies to all data records until
// the next extended linear address record. Processing stops at the
// first end of file record, anything after it is never read. Record
// types other than data, end of file and extended linear address are
// skipped without touching the parser state.
func (p *Parser) Parse(r io.Reader) (Image, error) {
	im := make(Image)
	var extended uint16
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		rec, ok, err := Decode(strings.TrimSpace(sc.Text()))
		if err != nil {
			if re, isRec := err.(*RecordError); isRec {
				re.Line = n
			}
			return nil, err
		}
		if !ok {
			continue
		}
		if p.Strict && rec.Checksum != rec.checksum() {
			return nil, &RecordError{Line: n, Msg: fmt.Sprintf(
				"checksum mismatch (%02X != %02X)", rec.checksum(), rec.Checksum,
			)}
		}
		switch rec.Type {
		case TypeExtLinAddr:
			if len(rec.Data) != 2 {
				return nil, &RecordError{
					Line: n,
					Msg:  "invalid extended linear address record length",
				}
			}
			extended = binary.BigEndian.Uint16(rec.Data)
		case TypeData:
			base := uint32(extended)<<16 + uint32(rec.Offset)
			for i, b := range rec.Data {
				im[base+uint32(i)] = b
			}
		case TypeEOF:
			return im, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return im, nil
}
