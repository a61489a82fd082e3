// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm_test

import (
	"testing"

	"github.com/db47h/bfvm/vm"
)

func TestNewTape(t *testing.T) {
	tp := vm.NewTape(0)
	if tp.Len() != 1 || tp.Pos() != 0 || tp.Cell() != 0 {
		t.Errorf("bad fresh tape: len %d, pos %d, cell %d", tp.Len(), tp.Pos(), tp.Cell())
	}
	if tp = vm.NewTape(16); tp.Len() != 16 {
		t.Errorf("expected 16 cells, got %d", tp.Len())
	}
}

func TestTape_Move(t *testing.T) {
	tp := vm.NewTape(1)
	if err := tp.Move(4); err != nil {
		t.Fatal(err)
	}
	if tp.Pos() != 4 || tp.Len() != 5 {
		t.Errorf("expected pos 4, len 5, got pos %d, len %d", tp.Pos(), tp.Len())
	}
	for _, c := range tp.Cells() {
		if c != 0 {
			t.Errorf("tape grew with non-zero cell %d", c)
		}
	}
	if err := tp.Move(-4); err != nil {
		t.Fatal(err)
	}
	if tp.Pos() != 0 {
		t.Errorf("expected pos 0, got %d", tp.Pos())
	}

	err := tp.Move(-1)
	e, ok := err.(*vm.Error)
	if !ok || e.Kind != vm.ErrPointerBounds {
		t.Fatalf("expected ErrPointerBounds, got %v", err)
	}
	if e.Index != -1 {
		t.Errorf("expected index -1, got %d", e.Index)
	}
	// the pointer must not have moved
	if tp.Pos() != 0 {
		t.Errorf("failed move changed the pointer to %d", tp.Pos())
	}
}

func TestTape_Add(t *testing.T) {
	tp := vm.NewTape(1)
	tp.Add(255)
	if tp.Cell() != 255 {
		t.Errorf("expected 255, got %d", tp.Cell())
	}
	tp.Add(1)
	if tp.Cell() != 0 {
		t.Errorf("increment of 255 should wrap to 0, got %d", tp.Cell())
	}
	tp.Add(-1)
	if tp.Cell() != 255 {
		t.Errorf("decrement of 0 should wrap to 255, got %d", tp.Cell())
	}
	tp.SetCell(10)
	tp.Add(-522) // -522 mod 256 == -10
	if tp.Cell() != 0 {
		t.Errorf("expected 0, got %d", tp.Cell())
	}
}
