// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Intel HEX record types. The segmented (8086-style) and start address
// types are listed so the parser can skip them by name, their semantics
// are not implemented.
const (
	TypeData       byte = 0x00
	TypeEOF        byte = 0x01
	TypeExtSegAddr byte = 0x02
	TypeStartSeg   byte = 0x03
	TypeExtLinAddr byte = 0x04
	TypeStartLin   byte = 0x05
)

// Record is one decoded Intel HEX line. The byte count field is implied
// by len(Data).
type Record struct {
	Offset   uint16 // 16-bit load offset
	Type     byte
	Data     []byte
	Checksum byte // as read from the input, recomputed on encode
}

// Decode parses one line of text as an Intel HEX record. Lines that are
// empty or do not start with the ':' marker are not records; for those
// Decode returns ok == false and no error, the caller should skip them.
// For marker lines a *RecordError is returned if the line is shorter
// than its fields demand or any field contains non-hex characters. The
// checksum field is decoded but its value is not verified here.
func Decode(line string) (rec Record, ok bool, err error) {
	if line == "" || line[0] != ':' {
		return Record{}, false, nil
	}
	count, err := hexField(line, 1, 2, "byte count")
	if err != nil {
		return Record{}, false, err
	}
	offset, err := hexField(line, 3, 4, "offset")
	if err != nil {
		return Record{}, false, err
	}
	typ, err := hexField(line, 7, 2, "record type")
	if err != nil {
		return Record{}, false, err
	}
	end := 9 + 2*int(count)
	if len(line) < end {
		return Record{}, false, &RecordError{Msg: fmt.Sprintf(
			"byte count %d but only %d data digits", count, len(line)-9,
		)}
	}
	data, err := hex.DecodeString(line[9:end])
	if err != nil {
		return Record{}, false, &RecordError{Msg: "invalid hex in data field"}
	}
	sum, err := hexField(line, end, 2, "checksum")
	if err != nil {
		return Record{}, false, err
	}
	rec = Record{
		Offset:   uint16(offset),
		Type:     byte(typ),
		Data:     data,
		Checksum: byte(sum),
	}
	return rec, true, nil
}

// hexField extracts a fixed-width hex field starting at pos.
func hexField(line string, pos, width int, name string) (uint64, error) {
	if pos+width > len(line) {
		return 0, &RecordError{Msg: "line too short for " + name + " field"}
	}
	v, err := strconv.ParseUint(line[pos:pos+width], 16, 64)
	if err != nil {
		return 0, &RecordError{Msg: "invalid hex in " + name + " field"}
	}
	return v, nil
}

// Encode serializes the record as one Intel HEX line (without the
// trailing newline), uppercase, with a freshly computed checksum.
func (r *Record) Encode() string {
	return fmt.Sprintf(
		":%02X%04X%02X%X%02X",
		len(r.Data), r.Offset, r.Type, r.Data, r.checksum(),
	)
}

// checksum computes the two's complement of the byte sum of all record
// fields, so that the sum of the whole encoded record is 0 mod 256.
func (r *Record) checksum() byte {
	sum := byte(len(r.Data)) + byte(r.Offset>>8) + byte(r.Offset) + r.Type
	for _, b := range r.Data {
		sum += b
	}
	return ^sum + 1
}
