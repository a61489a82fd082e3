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

package parse

import (
	"bufio"
	"io"
	"text/scanner"

	"github.com/pkg/errors"

	"github.com/db47h/bfvm/vm"
)

// ErrKind classifies parse errors.
type ErrKind int

// Parse error kinds.
const (
	// ErrUnmatchedOpen reports a '[' with no matching ']'.
	ErrUnmatchedOpen ErrKind = iota
	// ErrUnmatchedClose reports a ']' with no matching '['.
	ErrUnmatchedClose
)

// Error is a structural parse error. Pos locates the offending bracket in the
// source. Parsing is all or nothing: no instruction sequence is returned
// alongside an Error.
type Error struct {
	Kind ErrKind
	Pos  scanner.Position
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnmatchedOpen:
		return e.Pos.String() + ": unmatched '['"
	case ErrUnmatchedClose:
		return e.Pos.String() + ": unmatched ']'"
	}
	return e.Pos.String() + ": parse error"
}

type parser struct {
	code []vm.Instruction
	open []int              // output indices of pending '['
	pos  []scanner.Position // source positions of pending '[', for error reporting
}

func (p *parser) write(op vm.Op, arg int) {
	p.code = append(p.code, vm.Instruction{Op: op, Arg: arg})
}

func (p *parser) instruction(c byte, pos scanner.Position) error {
	switch c {
	case '>':
		p.write(vm.OpMove, 1)
	case '<':
		p.write(vm.OpMove, -1)
	case '+':
		p.write(vm.OpAdd, 1)
	case '-':
		p.write(vm.OpAdd, -1)
	case '.':
		p.write(vm.OpOut, 0)
	case ',':
		p.write(vm.OpIn, 0)
	case '[':
		p.open = append(p.open, len(p.code))
		p.pos = append(p.pos, pos)
		p.write(vm.OpJz, -1) // target patched when the ']' shows up
	case ']':
		n := len(p.open) - 1
		if n < 0 {
			return &Error{Kind: ErrUnmatchedClose, Pos: pos}
		}
		o := p.open[n]
		p.open, p.pos = p.open[:n], p.pos[:n]
		p.code[o].Arg = len(p.code)
		p.write(vm.OpJnz, o)
	default:
		// anything else is a comment
	}
	return nil
}

// Parse compiles Brainfuck source read from r into an instruction sequence
// with each bracket's jump target resolved to the index of its counterpart.
// Characters other than the eight commands are ignored.
//
// The name parameter is used only in error positions to name the source of
// the error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil and not a read failure, can be unwrapped to
// an *Error carrying the bracket kind and source position. When several
// brackets are left open at end of input, the innermost one is reported.
func Parse(name string, r io.Reader) ([]vm.Instruction, error) {
	var p parser
	br := bufio.NewReader(r)
	pos := scanner.Position{Filename: name, Line: 1, Column: 1}
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read failed")
		}
		if err = p.instruction(c, pos); err != nil {
			return nil, err
		}
		pos.Offset++
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	if n := len(p.open); n > 0 {
		return nil, &Error{Kind: ErrUnmatchedOpen, Pos: p.pos[n-1]}
	}
	return p.code, nil
}
