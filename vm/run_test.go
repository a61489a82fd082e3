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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/db47h/bfvm/parse"
	"github.com/db47h/bfvm/vm"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]" +
	">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func compile(t *testing.T, src string) []vm.Instruction {
	t.Helper()
	code, err := parse.Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	return code
}

func run(t *testing.T, src, input string, opts ...vm.Option) (string, error) {
	t.Helper()
	p, err := vm.New(compile(t, src), opts...)
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	var out bytes.Buffer
	err = p.Execute(vm.ReaderIn(strings.NewReader(input)), vm.WriterOut(&out))
	return out.String(), err
}

func TestProgram_Execute(t *testing.T) {
	tests := [...]struct {
		name   string
		src    string
		input  string
		output string
	}{
		{"copy two bytes", ",>,<.>.", "AB", "AB"},
		{"echo loop", ",[.,]", "abc", "abc"},
		{"eight by eight plus one", "++++++++[>++++++++<-]>+.", "", "A"},
		{"hello world", helloWorld, "", "Hello World!\n"},
		{"wrap down", "-.", "", "\xff"},
		{"wrap up", "--++++.", "", "\x02"},
		{"tape growth", ">>>+.", "", "\x01"},
		{"come back", ">>><<<+.", "", "\x01"},
		{"skip dead loop", "[+++.]", "", ""},
		{"input exhausted stores 0", "+,.", "", "\x00"},
	}
	for _, test := range tests {
		output, err := run(t, test.src, test.input)
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if output != test.output {
			t.Errorf("%s: expected output %q, got %q", test.name, test.output, output)
		}
	}
}

func TestProgram_Execute_wrapAround(t *testing.T) {
	// 255 + 1 wraps to 0, 0 - 1 wraps to 255
	output, err := run(t, ",+.", "\xff")
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00" {
		t.Errorf("expected 0, got %d", output[0])
	}
	output, err = run(t, "-.", "")
	if err != nil {
		t.Fatal(err)
	}
	if output != "\xff" {
		t.Errorf("expected 255, got %d", output[0])
	}
}

func TestProgram_Execute_pointerUnderflow(t *testing.T) {
	tests := [...]struct {
		src string
		pc  int
	}{
		{"<", 0},
		{">+<<<", 3},
	}
	for _, test := range tests {
		_, err := run(t, test.src, "")
		var e *vm.Error
		if !errors.As(err, &e) {
			t.Errorf("%q: expected *vm.Error, got %v", test.src, err)
			continue
		}
		if e.Kind != vm.ErrPointerBounds {
			t.Errorf("%q: expected ErrPointerBounds, got %v", test.src, e.Kind)
		}
		if e.PC != test.pc {
			t.Errorf("%q: expected PC %d, got %d", test.src, test.pc, e.PC)
		}
	}
}

func TestProgram_Execute_failFast(t *testing.T) {
	// output before the failing move must have happened, and the failure must
	// happen before the trailing output.
	p, err := vm.New(compile(t, "+.<."))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err = p.Execute(nil, vm.WriterOut(&out))
	if err == nil {
		t.Fatal("expected pointer underflow")
	}
	if out.String() != "\x01" {
		t.Errorf("expected output \\x01, got %q", out.String())
	}
}

func TestProgram_Execute_callbackErrors(t *testing.T) {
	p, err := vm.New(compile(t, ",."))
	if err != nil {
		t.Fatal(err)
	}
	errBoom := errors.New("boom")
	err = p.Execute(func() (byte, error) { return 0, errBoom }, nil)
	if !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped input error, got %v", err)
	}
	err = p.Execute(vm.ReaderIn(strings.NewReader("a")),
		func(byte) error { return errBoom })
	if !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped output error, got %v", err)
	}
}

func TestProgram_Execute_reuse(t *testing.T) {
	// each execution gets a fresh tape
	p, err := vm.New(compile(t, ",+."))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		var out bytes.Buffer
		err = p.Execute(vm.ReaderIn(strings.NewReader("0")), vm.WriterOut(&out))
		if err != nil {
			t.Fatal(err)
		}
		if out.String() != "1" {
			t.Errorf("run %d: expected %q, got %q", i, "1", out.String())
		}
	}
}

func TestProgram_Run_options(t *testing.T) {
	var out bytes.Buffer
	p, err := vm.New(compile(t, ",+."),
		vm.Input(vm.ReaderIn(strings.NewReader("A"))),
		vm.Output(vm.WriterOut(&out)),
		vm.TapeSize(64),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err = p.Run(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "B" {
		t.Errorf("expected %q, got %q", "B", out.String())
	}
}

func TestProgram_New_badOptions(t *testing.T) {
	_, err := vm.New(nil, vm.TapeSize(0))
	if err == nil {
		t.Error("expected error for tape size 0")
	}
}

func TestInstance_Step(t *testing.T) {
	p, err := vm.New(compile(t, "++>"))
	if err != nil {
		t.Fatal(err)
	}
	i := p.NewInstance(nil, nil)
	for n := 0; !i.Done(); n++ {
		if n > 3 {
			t.Fatal("instance never finished")
		}
		if err = i.Step(); err != nil {
			t.Fatalf("step %d: %v", n, err)
		}
	}
	if i.InstructionCount() != 3 {
		t.Errorf("expected 3 instructions executed, got %d", i.InstructionCount())
	}
	if i.Tape().Pos() != 1 || i.Tape().Len() != 2 {
		t.Errorf("bad tape state: pos %d, len %d", i.Tape().Pos(), i.Tape().Len())
	}

	// stepping past the end fails
	err = i.Step()
	var e *vm.Error
	if !errors.As(err, &e) || e.Kind != vm.ErrCodeBounds {
		t.Errorf("expected ErrCodeBounds, got %v", err)
	}
	if e != nil && e.PC != 3 {
		t.Errorf("expected PC 3, got %d", e.PC)
	}
}

func TestProgram_optimizedEquivalence(t *testing.T) {
	tests := [...]struct {
		src   string
		input string
	}{
		{helloWorld, ""},
		{"++++++++[>++++++++<-]>+.", ""},
		{",>,<.>.", "AB"},
		{",[.,]", "equivalence"},
		{"+->+<.", ""},
		{">>+++---<<->.", ""},
	}
	for _, test := range tests {
		plain, err := run(t, test.src, test.input)
		if err != nil {
			t.Errorf("%q: %+v", test.src, err)
			continue
		}
		opt, err := run(t, test.src, test.input, vm.Optimize())
		if err != nil {
			t.Errorf("%q (optimized): %+v", test.src, err)
			continue
		}
		if plain != opt {
			t.Errorf("%q: optimized output %q differs from %q", test.src, opt, plain)
		}
	}
}
