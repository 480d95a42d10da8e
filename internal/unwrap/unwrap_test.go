// © 2026 The samecheck authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import (
	"errors"
	"testing"
)

func TestValue(t *testing.T) {
	if got := Value(42, nil); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
}

func TestValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Value didn't panic on error")
		}
	}()
	Value(0, errors.New("boom"))
}

func TestNoError(t *testing.T) {
	NoError(nil)
}

func TestNoErrorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NoError didn't panic on error")
		}
	}()
	NoError(errors.New("boom"))
}
