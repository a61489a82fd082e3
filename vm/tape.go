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

package vm

// Cell is the value stored in a single tape cell. All cell arithmetic wraps
// modulo 256.
type Cell uint8

// Tape is the VM memory: an array of cells addressed by a single pointer. The
// tape grows on demand when the pointer moves right past the last cell; moving
// left of cell 0 is an error. After any completed operation the pointer is a
// valid index into the cells.
type Tape struct {
	cells []Cell
	ptr   int
}

// NewTape returns a Tape of size zero-valued cells with the pointer on cell 0.
// Sizes below 1 are raised to 1.
func NewTape(size int) *Tape {
	if size < 1 {
		size = 1
	}
	return &Tape{cells: make([]Cell, size)}
}

// Move moves the pointer by delta cells, appending zero cells as needed when
// moving right past the end of the tape. Moving left of cell 0 fails with an
// ErrPointerBounds error and leaves the pointer where it was.
func (t *Tape) Move(delta int) error {
	p := t.ptr + delta
	if p < 0 {
		return &Error{Kind: ErrPointerBounds, Index: p}
	}
	if n := p + 1 - len(t.cells); n > 0 {
		t.cells = append(t.cells, make([]Cell, n)...)
	}
	t.ptr = p
	return nil
}

// Add adds delta to the current cell, wrapping modulo 256 in both directions.
func (t *Tape) Add(delta int) {
	t.cells[t.ptr] += Cell(delta)
}

// Cell returns the value of the current cell.
func (t *Tape) Cell() Cell {
	return t.cells[t.ptr]
}

// SetCell sets the value of the current cell.
func (t *Tape) SetCell(v Cell) {
	t.cells[t.ptr] = v
}

// Pos returns the pointer position.
func (t *Tape) Pos() int {
	return t.ptr
}

// Len returns the current number of cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells returns the cell array. Value changes will be reflected in the tape,
// but re-slicing will not affect it.
func (t *Tape) Cells() []Cell {
	return t.cells
}
