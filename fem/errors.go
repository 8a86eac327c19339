// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/tdegeus/FrictionQPotGooseFEM/msolid"
)

var (
	// ErrConfig is returned on invalid or inconsistent input data; e.g. size mismatches
	ErrConfig = errors.New("fem: invalid configuration")

	// ErrNotReady is returned when time integration is requested before the system is fully set
	ErrNotReady = errors.New("fem: system is not ready")

	// ErrYieldExceeded is returned when a plastic point moves beyond its last yield strain
	ErrYieldExceeded = msolid.ErrYieldExceeded
)
