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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/bfvm/parse"
	"github.com/db47h/bfvm/vm"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	inline    string
	optimize  bool
	dump      bool
	noRawIO   bool
	debug     bool
	withFiles fileList
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		t := i.Tape()
		fmt.Fprintf(os.Stderr, "PC: %v, pointer: %v, tape: %v cells, executed: %v\n",
			i.PC, t.Pos(), t.Len(), i.InstructionCount())
	}
	os.Exit(1)
}

// source returns the program source as named by the command line: inline code
// from -e, or the contents of the source file argument.
func source() (name string, r io.Reader, closeFn func(), err error) {
	if inline != "" {
		return "-e", strings.NewReader(inline), nil, nil
	}
	if flag.NArg() != 1 {
		return "", nil, nil, errors.New("need a source file argument or -e code")
	}
	name = flag.Arg(0)
	f, err := os.Open(name)
	if err != nil {
		return "", nil, nil, errors.Wrap(err, "open failed")
	}
	return name, bufio.NewReader(f), func() { f.Close() }, nil
}

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

// rawIn translates CTRL-D into io.EOF: with the terminal in raw mode it is
// delivered as a plain byte.
func rawIn(in vm.In) vm.In {
	return func() (byte, error) {
		c, err := in()
		if err == nil && c == 4 {
			return 0, io.EOF
		}
		return c, err
	}
}

func main() {
	var err error
	var inst *vm.Instance

	flag.StringVar(&inline, "e", "", "interpret `code` instead of reading a source file")
	flag.BoolVar(&optimize, "O", false, "collapse instruction runs before execution")
	flag.BoolVar(&dump, "dump", false, "print the compiled instruction listing and exit")
	flag.Var(&withFiles, "with", "read program input from `filename` before stdin (can be specified multiple times)")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	name, r, closeFn, err := source()
	if err != nil {
		atExit(nil, err)
	}
	code, err := parse.Parse(name, r)
	if closeFn != nil {
		closeFn()
	}
	if err != nil {
		atExit(nil, err)
	}

	p, err := vm.New(code)
	if err == nil && optimize {
		err = p.SetOptions(vm.Optimize())
	}
	if err != nil {
		atExit(nil, err)
	}

	if dump {
		atExit(nil, parse.DumpAll(p.Code(), os.Stdout))
		return
	}

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(inst, err)
	}()

	// try to switch the terminal to raw mode so that ',' reads single
	// keypresses without waiting for a newline.
	rawtty, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}

	var stdin vm.In
	var out vm.Out
	if rawtty {
		// with the terminal in raw mode, we need to handle CTRL-D ourselves,
		// and output must not sit in the buffer while the program waits for a
		// keypress.
		stdin = rawIn(vm.ReaderIn(os.Stdin))
		out = func(c byte) error {
			if err := stdout.WriteByte(c); err != nil {
				return err
			}
			return stdout.Flush()
		}
	} else {
		stdin = vm.ReaderIn(bufio.NewReader(os.Stdin))
		out = vm.WriterOut(stdout)
	}

	// queue -with files ahead of stdin so that they are consumed in order of
	// appearance on the command line.
	ins := make([]vm.In, 0, len(withFiles)+1)
	for _, n := range withFiles {
		f, ferr := os.Open(n)
		if ferr != nil {
			err = errors.Wrap(ferr, "open failed")
			return
		}
		defer f.Close()
		ins = append(ins, vm.ReaderIn(bufio.NewReader(f)))
	}
	ins = append(ins, stdin)

	inst = p.NewInstance(vm.MultiIn(ins...), out)
	err = inst.Run()
}
