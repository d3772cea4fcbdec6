// Copyright 2026 The Fwtools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ihex

// Merge folds images left to right into a single image. When several
// images define the same address the value from the last one wins, so
// the argument order is the override order. Merging no images, or only
// empty ones, yields an empty image.
func Merge(images ...Image) Image {
	merged := make(Image)
	for _, im := range images {
		for a, b := range im {
			merged[a] = b
		}
	}
	return merged
}
