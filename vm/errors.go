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

import "strconv"

// ErrKind classifies runtime errors.
type ErrKind int

// Runtime error kinds.
const (
	// ErrPointerBounds reports an attempt to move the tape pointer left of
	// cell 0.
	ErrPointerBounds ErrKind = iota
	// ErrCodeBounds reports a Step call on an Instance whose instruction
	// cursor already ran past the end of the sequence.
	ErrCodeBounds
)

// Error is a runtime error. Execution halts at the failing instruction with no
// rollback of tape state. PC is the instruction cursor at that instruction.
type Error struct {
	Kind  ErrKind
	PC    int
	Index int // attempted tape index, ErrPointerBounds only
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrPointerBounds:
		return "pointer underflow: cell " + strconv.Itoa(e.Index) +
			" at instruction " + strconv.Itoa(e.PC)
	case ErrCodeBounds:
		return "instruction cursor " + strconv.Itoa(e.PC) + " out of bounds"
	}
	return "runtime error " + strconv.Itoa(int(e.Kind))
}
