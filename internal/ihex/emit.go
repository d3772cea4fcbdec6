// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

// DefaultChunkSize is the number of data bytes per emitted record.
const DefaultChunkSize = 16

// Emitter serializes a memory image back into Intel HEX records.
type Emitter struct {
	FillByte  byte // value for addresses absent from the image
	ChunkSize int  // data bytes per record, DefaultChunkSize if <= 0
}

// Emit converts im into an ordered sequence of records covering the
// image's full address range, from its lowest to its highest address.
// Addresses absent from the image read as FillByte. Data records never
// cross a ChunkSize alignment boundary and an extended linear address
// record precedes the first data record of every 64KB segment. The
// sequence ends with a single end of file record. An empty image yields
// ErrEmptyImage.
func (e *Emitter) Emit(im Image) ([]Record, error) {
	if len(im) == 0 {
		return nil, ErrEmptyImage
	}
	chunk := uint64(DefaultChunkSize)
	if e.ChunkSize > 0 {
		chunk = uint64(e.ChunkSize)
	}
	minAddr, maxAddr := im.AddrRange()
	// The cursor is 64-bit so that a range ending at 0xFFFFFFFF
	// terminates without wrapping.
	cur, end := uint64(minAddr), uint64(maxAddr)
	var recs []Record
	var seg uint32
	haveSeg := false
	for cur <= end {
		if s := uint32(cur >> 16); !haveSeg || s != seg {
			seg, haveSeg = s, true
			recs = append(recs, Record{
				Type: TypeExtLinAddr,
				Data: []byte{byte(s >> 8), byte(s)},
			})
		}
		off := uint16(cur)
		n := chunk - uint64(off)%chunk
		if rem := end - cur + 1; rem < n {
			n = rem
		}
		data := make([]byte, n)
		for i := range data {
			b, ok := im[uint32(cur)+uint32(i)]
			if !ok {
				b = e.FillByte
			}
			data[i] = b
		}
		recs = append(recs, Record{Offset: off, Type: TypeData, Data: data})
		cur += n
	}
	return append(recs, Record{Type: TypeEOF}), nil
}
