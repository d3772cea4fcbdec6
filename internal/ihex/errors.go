// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

import (
	"errors"
	"fmt"
)

// ErrEmptyImage is returned when an image with no data bytes is passed
// to the emitter. No output is produced in that case.
var ErrEmptyImage = errors.New("empty image: no data to write")

// RecordError describes a structurally invalid Intel HEX record: fields
// missing, wrong length or non-hex characters. It aborts the parse of
// the containing file, there is no partial recovery.
type RecordError struct {
	Line int    // 1-based input line number, 0 if unknown
	Msg  string
}

func (e *RecordError) Error() string {
	if e.Line == 0 {
		return "malformed record: " + e.Msg
	}
	return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Msg)
}

// IsRecordError reports whether err is a *RecordError.
func IsRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
