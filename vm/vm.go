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

import "github.com/pkg/errors"

// Program owns a finalized instruction sequence, usually compiled by the
// parse package. The sequence is read-only once the options passed to New
// have been applied, so a single Program may be executed multiple times,
// concurrently if needed: each execution gets its own Tape and instruction
// cursor.
type Program struct {
	code      []Instruction
	in        In
	out       Out
	tapeSize  int
	optimized bool
}

// Option interface
type Option func(*Program) error

// Input sets the default input callback used by Run. A nil input behaves as
// an immediately exhausted one.
func Input(in In) Option {
	return func(p *Program) error { p.in = in; return nil }
}

// Output sets the default output callback used by Run. A nil output discards
// everything written to it.
func Output(out Out) Option {
	return func(p *Program) error { p.out = out; return nil }
}

// TapeSize sets the initial tape length for each execution. The tape still
// grows on demand; the default is a single cell.
func TapeSize(size int) Option {
	return func(p *Program) error {
		if size < 1 {
			return errors.Errorf("invalid tape size %d", size)
		}
		p.tapeSize = size
		return nil
	}
}

// Optimize collapses runs of identical move or add instructions into single
// instructions carrying the net delta. The rewrite preserves runtime behavior
// exactly, including which operations fail and when I/O happens. It is applied
// at most once per Program and must not run concurrently with executions.
func Optimize() Option {
	return func(p *Program) error { p.optimize(); return nil }
}

// SetOptions sets the provided options.
func (p *Program) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return err
		}
	}
	return nil
}

// New creates a Program from the given instruction sequence. The sequence is
// taken over by the Program; jump arguments must be valid indices into it,
// which is guaranteed for sequences built by the parse package.
//
// Options will be set by calling SetOptions.
func New(code []Instruction, opts ...Option) (*Program, error) {
	p := &Program{code: code, tapeSize: 1}
	if err := p.SetOptions(opts...); err != nil {
		return nil, err
	}
	return p, nil
}

// Code returns the program's instruction sequence, after optimization if the
// Optimize option was set. The returned slice is the live sequence and must
// not be mutated.
func (p *Program) Code() []Instruction {
	return p.code
}

// Execute runs the program once against a fresh zeroed tape, reading input
// from in and writing output to out. It returns nil when the instruction
// cursor runs past the end of the sequence, or the error that halted
// execution.
func (p *Program) Execute(in In, out Out) error {
	return p.NewInstance(in, out).Run()
}

// Run executes the program with the callbacks bound by the Input and Output
// options.
func (p *Program) Run() error {
	return p.Execute(p.in, p.out)
}

// NewInstance returns a fresh execution instance over the program's
// instruction sequence, for callers that want stepwise execution. Most
// callers should use Execute instead.
func (p *Program) NewInstance(in In, out Out) *Instance {
	return &Instance{
		code: p.code,
		tape: NewTape(p.tapeSize),
		in:   in,
		out:  out,
	}
}
