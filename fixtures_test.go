// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xldt_test

import (
	"path/filepath"
	"testing"

	"cloudeng.io/xldt/fixtures"
)

func TestFixtures(t *testing.T) {
	for _, name := range []string{"date.csv", "week.csv", "isoweek.csv", "delta.csv"} {
		n, err := fixtures.VerifyFile(filepath.Join("testdata", name))
		if err != nil {
			t.Errorf("%v", err)
		}
		if n == 0 {
			t.Errorf("%v: no rows", name)
		}
	}
}
