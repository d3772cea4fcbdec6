// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ihex merges sparse Intel HEX firmware images into one
// contiguous, gap-filled image and serializes it back to the Intel HEX
// format.
//
// # Record format
//
// An Intel HEX file is line oriented. Every record starts with a colon
// followed by fixed-width uppercase hex fields:
//
//	:BBOOOOTTDD...DDCC
//	  BB = byte count (number of data bytes)
//	  OOOO = 16-bit load offset
//	  TT = record type
//	  DD = data bytes, BB pairs
//	  CC = checksum, two's complement of the byte sum of all fields
//
// The package interprets Data (0x00), End Of File (0x01) and Extended
// Linear Address (0x04) records. An extended linear address record sets
// the high 16 bits of the load address for all data records that follow
// it, so the effective address of data byte i is
//
//	(extended << 16) + offset + i
//
// Segmented (8086-style) and start address records are skipped without
// touching the parser state.
//
// # Usage
//
// Load each input, merge and write the result:
//
//	a, err := ihex.ParseFile("boot.hex")
//	...
//	b, err := ihex.ParseFile("app.hex")
//	...
//	e := ihex.Emitter{FillByte: 0x00}
//	err = e.WriteFile(ihex.Merge(a, b), "out.hex")
//
// Later arguments to Merge win address conflicts, so the merge order is
// the override order.
package ihex
