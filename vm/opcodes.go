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

// Op identifies a VM instruction.
type Op uint8

// VM Opcodes.
const (
	OpMove Op = iota // move the tape pointer by Arg cells (> <)
	OpAdd            // add Arg to the current cell, wrapping (+ -)
	OpOut            // send the current cell to the output callback (.)
	OpIn             // read one byte from the input callback into the current cell (,)
	OpJz             // if the current cell is 0, jump past the instruction at index Arg ([)
	OpJnz            // if the current cell is not 0, jump past the instruction at index Arg (])
)

var opcodes = [...]string{
	"move",
	"add",
	"out",
	"in",
	"jz",
	"jnz",
}

func (op Op) String() string {
	if int(op) < len(opcodes) {
		return opcodes[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// HasArg reports whether the opcode carries an argument. For OpMove and OpAdd,
// Arg is a signed delta. For OpJz and OpJnz, Arg is the index of the matching
// bracket instruction in the owning sequence.
func (op Op) HasArg() bool {
	switch op {
	case OpMove, OpAdd, OpJz, OpJnz:
		return true
	}
	return false
}

// Instruction is a single VM instruction. Instructions are immutable once the
// owning sequence is finalized; jump arguments are indices into that same
// sequence, never pointers.
type Instruction struct {
	Op  Op
	Arg int
}

func (i Instruction) String() string {
	if i.Op.HasArg() {
		return i.Op.String() + " " + strconv.Itoa(i.Arg)
	}
	return i.Op.String()
}
