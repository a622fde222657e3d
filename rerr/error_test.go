// Copyright 2026 The rtron Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rerr

import "testing"

func Test_error01(tst *testing.T) {
	err := New(OutOfDomain, "x=%g not in domain", 3.5)
	if !Is(err, OutOfDomain) {
		tst.Errorf("expected OutOfDomain kind")
	}
	if Is(err, NotFound) {
		tst.Errorf("did not expect NotFound kind")
	}
	if err.Error() == "" {
		tst.Errorf("expected non-empty message")
	}
}
