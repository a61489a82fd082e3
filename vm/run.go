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

import (
	"io"

	"github.com/pkg/errors"
)

// Instance is the state of a single execution: an instruction cursor and a
// tape. Instances are created by Program.NewInstance and are not safe for
// concurrent use; distinct Instances share nothing but the read-only
// instruction sequence.
type Instance struct {
	PC       int // Instruction cursor
	code     []Instruction
	tape     *Tape
	in       In
	out      Out
	insCount int64
}

// Tape returns the instance's tape.
func (i *Instance) Tape() *Tape {
	return i.tape
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Done reports whether the instruction cursor ran past the end of the
// sequence.
func (i *Instance) Done() bool {
	return i.PC >= len(i.code)
}

// Run steps the instance to completion. If an error occurs, the PC will point
// to the instruction that triggered it.
func (i *Instance) Run() error {
	for i.PC < len(i.code) {
		if err := i.step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction. Calling Step on a finished instance
// fails with an ErrCodeBounds error.
func (i *Instance) Step() error {
	if i.Done() {
		return &Error{Kind: ErrCodeBounds, PC: i.PC}
	}
	return i.step()
}

func (i *Instance) step() error {
	t := i.tape
	op := i.code[i.PC]
	switch op.Op {
	case OpMove:
		if err := t.Move(op.Arg); err != nil {
			if e, ok := err.(*Error); ok {
				e.PC = i.PC
			}
			return err
		}
		i.PC++
	case OpAdd:
		t.Add(op.Arg)
		i.PC++
	case OpOut:
		if i.out != nil {
			if err := i.out(byte(t.Cell())); err != nil {
				return errors.Wrapf(err, "output at instruction %d", i.PC)
			}
		}
		i.PC++
	case OpIn:
		c, err := i.read()
		switch err {
		case nil:
			t.SetCell(Cell(c))
		case io.EOF:
			// end of input stores 0
			t.SetCell(0)
		default:
			return errors.Wrapf(err, "input at instruction %d", i.PC)
		}
		i.PC++
	case OpJz:
		if t.Cell() == 0 {
			i.PC = op.Arg + 1
		} else {
			i.PC++
		}
	case OpJnz:
		if t.Cell() != 0 {
			i.PC = op.Arg + 1
		} else {
			i.PC++
		}
	}
	i.insCount++
	return nil
}

func (i *Instance) read() (byte, error) {
	if i.in == nil {
		return 0, io.EOF
	}
	return i.in()
}
