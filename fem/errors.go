// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "errors"

// sentinel errors returned (wrapped) by Model operations and queries
var (
	ErrUnknownNode        = errors.New("unknown node")
	ErrUnknownElement     = errors.New("unknown element")
	ErrUnknownCombination = errors.New("unknown load combination")
	ErrSingularSystem     = errors.New("singular system")
	ErrNoResults          = errors.New("no results available")
)
