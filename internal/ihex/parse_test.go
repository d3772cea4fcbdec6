// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Image
		wantErr bool
	}{
		{
			name:  "single data record",
			input: ":0100000010EF\n:00000001FF\n",
			want:  Image{0x0000: 0x10},
		},
		{
			name: "extended linear address applies to following data",
			input: ":020000040001F9\n" +
				":020000000304F7\n" +
				":00000001FF\n",
			want: Image{0x10000: 0x03, 0x10001: 0x04},
		},
		{
			name: "extended address persists across data records",
			input: ":020000040001F9\n" +
				":0100000010EF\n" +
				":0100050020DA\n" +
				":00000001FF\n",
			want: Image{0x10000: 0x10, 0x10005: 0x20},
		},
		{
			name: "records after end of file are not read",
			input: ":0100000010EF\n" +
				":00000001FF\n" +
				":01000500FFFB\n",
			want: Image{0x0000: 0x10},
		},
		{
			name: "unknown record types are skipped",
			input: ":0400000300003F00BA\n" +
				":0400000501000000F6\n" +
				":0100000010EF\n" +
				":00000001FF\n",
			want: Image{0x0000: 0x10},
		},
		{
			name: "blank and stray lines are skipped",
			input: "\n" +
				"stray text\n" +
				":0100000010EF\n" +
				":00000001FF\n",
			want: Image{0x0000: 0x10},
		},
		{
			name:  "later record overwrites within one file",
			input: ":0100000010EF\n:0100000011EE\n:00000001FF\n",
			want:  Image{0x0000: 0x11},
		},
		{
			name:  "missing end of file record",
			input: ":0100000010EF\n",
			want:  Image{0x0000: 0x10},
		},
		{
			name:  "empty input",
			input: "",
			want:  Image{},
		},
		{
			name:    "bad extended linear address length",
			input:   ":0100000401FA\n:00000001FF\n",
			wantErr: true,
		},
		{
			name:    "malformed record aborts parse",
			input:   ":0100000010EF\n:01000000XYEF\n:00000001FF\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Parser
			im, err := p.Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got image %v", im)
				}
				if !IsRecordError(err) {
					t.Fatalf("want *RecordError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(im, tt.want) {
				t.Errorf("got %v, want %v", im, tt.want)
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	p := Parser{Strict: true}
	if _, err := p.Parse(strings.NewReader(":0100000010EF\n:00000001FF\n")); err != nil {
		t.Fatalf("valid checksums rejected: %v", err)
	}
	_, err := p.Parse(strings.NewReader(":010000001000\n:00000001FF\n"))
	if err == nil {
		t.Fatal("bad checksum accepted in strict mode")
	}
	re, ok := err.(*RecordError)
	if !ok {
		t.Fatalf("want *RecordError, got %v", err)
	}
	if re.Line != 1 {
		t.Errorf("error at line %d, want line 1", re.Line)
	}

	// The default parser reproduces the lenient behavior.
	var lenient Parser
	im, err := lenient.Parse(strings.NewReader(":010000001000\n:00000001FF\n"))
	if err != nil {
		t.Fatalf("lenient parser rejected bad checksum: %v", err)
	}
	if im[0] != 0x10 {
		t.Errorf("got %v", im)
	}
}

func TestParseErrorLineNumber(t *testing.T) {
	var p Parser
	_, err := p.Parse(strings.NewReader(":0100000010EF\n\n:01000000XYEF\n"))
	re, ok := err.(*RecordError)
	if !ok {
		t.Fatalf("want *RecordError, got %v", err)
	}
	if re.Line != 3 {
		t.Errorf("error at line %d, want line 3", re.Line)
	}
}

func TestAddrRange(t *testing.T) {
	im := Image{0x10005: 0x20, 0x0003: 0x10, 0x0FFF: 0x30}
	minAddr, maxAddr := im.AddrRange()
	if minAddr != 0x0003 || maxAddr != 0x10005 {
		t.Errorf("AddrRange() = %#x, %#x", minAddr, maxAddr)
	}
}
